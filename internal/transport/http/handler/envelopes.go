package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-api-notifications/internal/domain"
	"github.com/go-chi/chi/v5"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PageEnvelope wraps paginated list responses.
type PageEnvelope[T any] struct {
	MaxPage    int   `json:"max_page"`
	ActualPage int   `json:"actual_page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	Data       []T   `json:"data"`
}

func newPageEnvelope[T any](items []T, total int64, page domain.PageRequest) PageEnvelope[T] {
	maxPage := 1
	if page.PerPage > 0 && total > 0 {
		maxPage = int((total + int64(page.PerPage) - 1) / int64(page.PerPage))
	}
	return PageEnvelope[T]{
		MaxPage:    maxPage,
		ActualPage: page.Page,
		PerPage:    page.PerPage,
		TotalItems: total,
		Data:       items,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps service errors onto HTTP status codes. Missing records
// become 404, rejected input 400, and anything else surfaces as a store
// failure.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusServiceUnavailable, err.Error())
	}
}

// parseID reads the {id} path parameter as a positive integer.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id: %w", domain.ErrBadRequest)
	}
	return id, nil
}

// parsePagination reads page/per_page/sort query parameters; the sort
// value is passed through opaquely to the store.
func parsePagination(r *http.Request) domain.PageRequest {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = 50
	}
	return domain.PageRequest{
		Page:    page,
		PerPage: perPage,
		Sort:    r.URL.Query().Get("sort"),
	}
}
