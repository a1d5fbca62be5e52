package product

import "go-sportstore/internal/pkg/paging"

// ListRequest is the business input for a listing. A nil Category means
// "all categories"; an empty string is normalised to nil by the handler.
type ListRequest struct {
	Category *string
	Page     int
}

type ListQuery struct {
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
}

type ProductListResponse struct {
	Products        []Product     `json:"products"`
	PagingInfo      paging.Info   `json:"pagingInfo"`
	CurrentCategory *string       `json:"currentCategory"`
	PageLinks       []paging.Link `json:"pageLinks"`
}
