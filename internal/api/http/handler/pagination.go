package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/validate"
)

// pageResponse is the envelope every collection endpoint returns.
type pageResponse[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Pages   int   `json:"pages"`
}

func newPageResponse[T any](items []T, total int64, params model.ListParams) pageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return pageResponse[T]{
		Items:   items,
		Total:   total,
		Page:    params.Page,
		PerPage: params.PerPage,
		Pages:   model.Pages(total, params.PerPage),
	}
}

// parseListParams reads page, per_page and search query parameters,
// enforcing page >= 1 and per_page in [1, 100].
func parseListParams(r *http.Request) (model.ListParams, error) {
	q := r.URL.Query()
	params := model.ListParams{
		Page:    1,
		PerPage: model.DefaultPerPage,
		Search:  q.Get("search"),
	}
	errs := validate.Errors{}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs.Add("page", "must be an integer greater than or equal to 1")
		} else {
			params.Page = n
		}
	}
	if v := q.Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > model.MaxPerPage {
			errs.Add("per_page", "must be an integer between 1 and 100")
		} else {
			params.PerPage = n
		}
	}

	return params, errs.OrNil()
}

// parseID reads the {id} path variable.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, validate.Errors{"id": "must be an integer"}
	}
	return id, nil
}
