package dto

// MessageResponse is the body for operations that only confirm success.
type MessageResponse struct {
	Message string `json:"message"`
}

// PaginationInfo describes one page of a paginated listing.
type PaginationInfo struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}
