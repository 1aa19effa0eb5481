package model

// Listing defaults and bounds shared by every entity collection.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ListParams describe one page of a filtered listing. Search, when
// non-empty, is matched case-insensitively as a substring against the
// entity's searchable text fields.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}

// Offset converts page/per-page into a row offset.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Pages reports the number of UI pages covering total rows. An empty
// result set still counts as one page so pagination controls stay
// well-defined.
func Pages(total int64, perPage int) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
