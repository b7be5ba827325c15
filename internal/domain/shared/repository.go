package shared

// ListQuery carries the read options a repository needs to produce one page
// of a listing: the window, the ordering, and the relation names to eager
// load. Relation names are resolved against a per-repository whitelist, never
// interpolated into SQL.
type ListQuery struct {
	Offset   int
	Limit    int
	OrderBy  string
	OrderDir string
	Includes []string
}

// NewListQuery builds a ListQuery from a page window with the entity's
// default ordering.
func NewListQuery(w Window, orderBy string, includes ...string) ListQuery {
	return ListQuery{
		Offset:   w.Offset,
		Limit:    w.Limit,
		OrderBy:  orderBy,
		OrderDir: "ASC",
		Includes: includes,
	}
}

// Paginated represents a paginated listing result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated assembles a paginated result using the legacy page count
// formula (see Paginate).
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(total)/pageSize + 1,
	}
}

// SelectOption is one entry of a form's selectable-option list, the explicit
// replacement for the legacy view-data dictionaries: value to submit, text to
// display.
type SelectOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}
