package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

// ApplySort appends an ORDER BY clause for a validated sort spec.
// columns maps public field names to column expressions; the service layer
// validates field names against the entity's field set before calling the
// repo, so an unknown field here is simply ignored rather than injected.
func ApplySort(b sq.SelectBuilder, sort domain.SortSpec, columns map[string]string) sq.SelectBuilder {
	if sort.IsZero() {
		return b
	}
	col, ok := columns[sort.Field]
	if !ok {
		return b
	}
	dir := " ASC"
	if sort.Desc {
		dir = " DESC"
	}
	return b.OrderBy(col + dir)
}
