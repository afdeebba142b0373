package repositories

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
)

func TestSearchCondition(t *testing.T) {
	sql, args, err := squirrel.Select("id").
		From("notes n").
		Where(SearchCondition("algebra", "n.title", "n.description")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		t.Fatalf("building query: %v", err)
	}

	if strings.Contains(sql, "ILIKE") {
		t.Errorf("search must follow the column collation, got: %s", sql)
	}
	if !strings.Contains(sql, "n.title LIKE") || !strings.Contains(sql, "n.description LIKE") {
		t.Errorf("expected LIKE over both columns, got: %s", sql)
	}
	for _, arg := range args {
		if arg != "%algebra%" {
			t.Errorf("got pattern %v, want %%algebra%%", arg)
		}
	}
	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
}
