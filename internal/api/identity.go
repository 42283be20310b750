package api

import (
	"net/http"

	"github.com/debemdeboas/dallama/internal/config"
	"github.com/debemdeboas/dallama/internal/model"
)

type filterRequest struct {
	Author *model.UserID `json:"author"`
}

type identityRequest struct {
	UserID model.UserID `json:"user_id"`
}

func (h *Handler) serveGetFilter(w http.ResponseWriter, r *http.Request) {
	f, err := h.board.Filter(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, filterRequest{Author: f.Author})
}

// serveSetFilter sets or, with a null author, clears the feed filter.
func (h *Handler) serveSetFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, config.ErrInvalidBody)
		return
	}

	if err := h.board.SetFilter(r.Context(), req.Author); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) serveUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.board.Users())
}

func (h *Handler) serveGetIdentity(w http.ResponseWriter, r *http.Request) {
	u, err := h.board.CurrentUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) serveSwitchIdentity(w http.ResponseWriter, r *http.Request) {
	var req identityRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, config.ErrInvalidBody)
		return
	}

	u, err := h.board.SwitchUser(r.Context(), req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) serveNotification(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.board.Notification())
}
