package models

import "strconv"

// Pagination is the envelope accompanying every list payload.
type Pagination struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// ListResult is the paginated list shape inside a value envelope.
type ListResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Envelope is the `{ value: T }` response shape used by most reads. Some
// endpoints return bare T instead; those are decoded directly.
type Envelope[T any] struct {
	Value T `json:"value"`
}

// DataEnvelope is the `{ value: { data: T } }` shape used by the profile
// endpoint.
type DataEnvelope[T any] struct {
	Value struct {
		Data T `json:"data"`
	} `json:"value"`
}

// ListQuery carries the common list parameters forwarded to admin list
// endpoints.
type ListQuery struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Search   string `json:"search"`
	Sort     string `json:"sort"`
}

// Params renders the query as backend query-string parameters. Zero values
// are omitted so that equal queries produce equal cache keys.
func (q ListQuery) Params() map[string]string {
	params := make(map[string]string)
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.PageSize > 0 {
		params["pageSize"] = strconv.Itoa(q.PageSize)
	}
	if q.Search != "" {
		params["search"] = q.Search
	}
	if q.Sort != "" {
		params["sort"] = q.Sort
	}
	return params
}
