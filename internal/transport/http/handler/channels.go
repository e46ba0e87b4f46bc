package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-api-notifications/internal/application/channel"
	"github.com/go-api-notifications/internal/domain"
	"github.com/go-api-notifications/internal/pkg/validate"
)

// ChannelHandler handles notification-channel CRUD endpoints.
type ChannelHandler struct {
	svc channel.Service
}

func NewChannelHandler(svc channel.Service) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

func (h *ChannelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationChannelRequest
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

func (h *ChannelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpError(w, err)
		return
	}
	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ChannelHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)
	items, total, err := h.svc.GetAll(r.Context(), page)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPageEnvelope(items, total, page))
}

func (h *ChannelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpError(w, err)
		return
	}
	var req domain.NotificationChannelRequest
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

func (h *ChannelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpError(w, err)
		return
	}
	if _, err := h.svc.DeleteByID(r.Context(), id); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "notification channel deleted"})
}
