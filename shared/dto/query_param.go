package dto

import (
	"kmc/shared/constant"
	"net/http"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	MaxLimit = 100
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// Paginate reads page and limit from the query string. Missing or non-positive values fall back
// to the first page of DefaultValueLimit rows; limit is capped at MaxLimit.
func (q *QueryParams) Paginate(r *http.Request) {
	query := r.URL.Query()

	q.Page = positiveOr(query.Get(constant.RequestParamPage), constant.DefaultValuePage)
	q.Limit = min(positiveOr(query.Get(constant.RequestParamLimit), constant.DefaultValueLimit), MaxLimit)
}

func positiveOr(raw string, fallback int) int {
	if value, err := strconv.Atoi(raw); err == nil && value > 0 {
		return value
	}

	return fallback
}
