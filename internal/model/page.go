package model

// DefaultPageLimit is applied when a listing request does not set a limit.
const DefaultPageLimit = 10

// PageParams describes 1-indexed pagination.
type PageParams struct {
	Page  int
	Limit int
}

// Offset converts the 1-indexed page into a store offset.
func (p PageParams) Offset() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Valid reports whether both page and limit are positive.
func (p PageParams) Valid() bool {
	return p.Page >= 1 && p.Limit >= 1
}
