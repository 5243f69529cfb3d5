package kernel

// PaginationOptions carries the caller's page request. Page is 1-based.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Page describes the position of a result page within the full result set.
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// HasNext reports whether another page of results follows this one.
func (p Page) HasNext() bool { return p.Number*p.Size < p.Total }

// HasPrev reports whether this page is preceded by another.
func (p Page) HasPrev() bool { return p.Number > 1 }

// Paginated wraps one page of items together with its page metadata.
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}
