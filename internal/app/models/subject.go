package models

// Subject is a fixed taxonomy entry classifying notes. Rows are seeded at
// first startup and never deleted.
type Subject struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}
