package repositories

import (
	"strings"
	"testing"

	"github.com/edunotes/edunotes/internal/pkg/helpers"
)

// A score-only re-rate sends a NULL comment; the conflict clause must
// keep the feedback text already stored instead of blanking it.
func TestUpsertRatingKeepsStoredComment(t *testing.T) {
	if !strings.Contains(upsertRatingSQL, "COALESCE(EXCLUDED.comment, ratings.comment)") {
		t.Fatalf("upsert must fall back to the stored comment, got:\n%s", upsertRatingSQL)
	}

	if ns := helpers.GetNullString(nil); ns.Valid {
		t.Error("an omitted comment should bind as NULL")
	}
	comment := "very thorough"
	if ns := helpers.GetNullString(&comment); !ns.Valid || ns.String != comment {
		t.Errorf("a provided comment should bind as-is, got %+v", ns)
	}
}
