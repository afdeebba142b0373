package services

import "testing"

func TestRoundRating(t *testing.T) {
	cases := []struct {
		avg  float64
		want float64
	}{
		{0, 0},
		{4, 4},
		{3.333333, 3.3},
		{3.35, 3.4},
		{4.666666, 4.7},
		{5, 5},
	}

	for _, tc := range cases {
		if got := RoundRating(tc.avg); got != tc.want {
			t.Errorf("RoundRating(%v) = %v, want %v", tc.avg, got, tc.want)
		}
	}
}
