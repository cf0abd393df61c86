package model

// Page is one page of a filtered listing. Total counts the whole filtered
// result set, not the page.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}
