package dto

import (
	"net/http"
	"strconv"
	"strings"

	"shareit/shared/constant"
	"shareit/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams is the page descriptor handed to the generic repository.
// Page is 1-based; the repository derives OFFSET as (Page-1)*Limit.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// PageRequest is the raw paging contract exposed to callers: From selects the
// page whose index is From/Size (integer division), not a literal row offset.
type PageRequest struct {
	From int `json:"from"`
	Size int `json:"size"`
}

// FromRequest populates PageRequest from the HTTP request, applying the
// service defaults when parameters are absent.
func (p *PageRequest) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	p.From = constant.DefaultValueFrom
	p.Size = constant.DefaultValueSize

	if from := queryParams.Get(constant.RequestParamFrom); from != "" {
		if fromInt, err := strconv.Atoi(from); err == nil {
			p.From = fromInt
		}
	}

	if size := queryParams.Get(constant.RequestParamSize); size != "" {
		if sizeInt, err := strconv.Atoi(size); err == nil {
			p.Size = sizeInt
		}
	}
}

// Validate enforces from >= 0 and size > 0 before any store call is made.
func (p *PageRequest) Validate() error {
	if p.From < 0 {
		return failure.InvalidFromParam
	}

	if p.Size <= 0 {
		return failure.InvalidSizeParam
	}

	return nil
}

// ToQueryParams converts the from/size contract into the 1-based page
// descriptor used by the repository: page index = from / size.
func (p *PageRequest) ToQueryParams(sortBy, sortDir string) QueryParams {
	return QueryParams{
		Page:    p.From/p.Size + 1,
		Limit:   p.Size,
		SortBy:  sortBy,
		SortDir: strings.ToUpper(sortDir),
	}
}
