package dto

import (
	"net/http"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"strconv"
	"strings"
)

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

type QueryParams struct {
	Page      int    `json:"page"      validate:"omitempty,gte=1"`
	Limit     int    `json:"limit"     validate:"omitempty,gte=1"`
	SortBy    string `json:"sortBy"    validate:"omitempty"`
	SortOrder string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// FromRequest populates QueryParams from the HTTP request.
// Page and limit only take effect together; a lone page or limit is validated
// and then dropped so the caller sees an unpaginated result.
//
//	q := dto.QueryParams{}
//	if err := q.FromRequest(req); err != nil { ... }
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt < 1 {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt < 1 {
			return failure.InvalidLimitParam
		}

		q.Limit = limitInt
	}

	if q.Page == 0 || q.Limit == 0 {
		q.Page, q.Limit = 0, 0
	}

	q.SortBy = queryParams.Get(constant.RequestParamSortBy)
	q.SortOrder = strings.ToLower(queryParams.Get(constant.RequestParamSortOrder))

	return nil
}

// Paginated reports whether both page and limit were supplied.
func (q QueryParams) Paginated() bool {
	return q.Page > 0 && q.Limit > 0
}
