package shared

// DefaultPageSize is the fixed page size used by every listing.
const DefaultPageSize = 50

// Window describes one page of a listing: the rows to fetch and the
// navigation metadata derived from the total row count.
type Window struct {
	Offset     int
	Limit      int
	TotalPages int
}

// ClampPage normalizes a requested page number; pages below 1 become 1.
// Out-of-range pages are never an error, they just produce an empty window.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Paginate computes the page window for a listing.
//
// TotalPages deliberately reproduces the deployed system's formula
// total/pageSize + 1, which reports a phantom trailing page when the total is
// an exact multiple of the page size (100 rows at 50 per page -> 3 pages).
// Kept for behavioural parity; see DESIGN.md before "fixing" it.
func Paginate(totalItems int64, pageSize, page int) Window {
	page = ClampPage(page)
	return Window{
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
		TotalPages: int(totalItems)/pageSize + 1,
	}
}
