package domain

import "fmt"

// SortSpec describes an optional sort request on a list endpoint.
// A zero Field means "no sorting requested".
type SortSpec struct {
	Field string
	Desc  bool
}

// IsZero reports whether no sorting was requested.
func (s SortSpec) IsZero() bool { return s.Field == "" }

// Sortable field sets per entity. Keys are the public API field names; the
// repositories map them to columns.
var (
	UserSortFields = fieldSet("user_name", "first_name", "last_name", "last_beer_added_at", "created_at")

	GlassSortFields = fieldSet("name", "description", "capacity", "created_at")

	BeerSortFields = fieldSet("name", "description", "ibu", "calories", "abv",
		"style", "brewery_location", "created_at")

	ReviewSortFields = fieldSet("created_at", "aroma", "appearance", "taste",
		"palate", "bottle_style", "overall")

	SummarySortFields = fieldSet("count", "aroma", "appearance", "taste",
		"palate", "bottle_style", "overall")

	FavoriteSortFields = fieldSet("created_at")
)

// Validate checks the sort field against an entity's known field set.
// An unknown field yields a ValidationError naming that field.
func (s SortSpec) Validate(allowed map[string]bool) error {
	if s.IsZero() {
		return nil
	}
	if !allowed[s.Field] {
		return NewValidationError("sort",
			fmt.Sprintf("cannot sort on %q, invalid field name", s.Field))
	}
	return nil
}

func fieldSet(fields ...string) map[string]bool {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return m
}
