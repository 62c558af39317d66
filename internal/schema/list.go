package schema

// ListResponse is the envelope for paginated list endpoints.
//
// TotalCount is the count across all matching records, independent of
// pagination; Items is the current page only. Both are supplied by the
// query layer: the envelope performs no computation and deliberately does
// not check the two against each other.
type ListResponse[T any] struct {
	TotalCount int64 `json:"total_count"`
	Items      []T   `json:"items"`
}

// NewListResponse builds a ListResponse from a page of items and the total
// match count reported by the query layer.
func NewListResponse[T any](totalCount int64, items []T) ListResponse[T] {
	return ListResponse[T]{TotalCount: totalCount, Items: items}
}
