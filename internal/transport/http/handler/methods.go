package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-api-notifications/internal/application/method"
	"github.com/go-api-notifications/internal/domain"
	"github.com/go-api-notifications/internal/pkg/validate"
)

// MethodHandler handles notification-method CRUD endpoints. A 404 from
// create or update can mean either reference id has no backing record.
type MethodHandler struct {
	svc method.Service
}

func NewMethodHandler(svc method.Service) *MethodHandler {
	return &MethodHandler{svc: svc}
}

func (h *MethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.Create(r.Context(), req.ToModel())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *MethodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpError(w, err)
		return
	}
	m, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MethodHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)
	items, total, err := h.svc.GetAll(r.Context(), page)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPageEnvelope(items, total, page))
}

func (h *MethodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpError(w, err)
		return
	}
	var req domain.NotificationMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.UpdateByID(r.Context(), id, req.ToModel())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *MethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpError(w, err)
		return
	}
	if _, err := h.svc.DeleteByID(r.Context(), id); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "notification method deleted"})
}
