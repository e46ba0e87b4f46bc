package domain

// PageRequest carries pagination and sort options. It is opaque to the
// services and passed through to the store collaborator unchanged.
type PageRequest struct {
	Page    int
	PerPage int
	Sort    string // "column" or "column,desc"; empty means store default
}

// Offset translates the 1-based page number into a row offset.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}
