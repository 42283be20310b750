package api

import (
	"context"
	"net/http"

	"github.com/debemdeboas/dallama/internal/config"
	"github.com/debemdeboas/dallama/internal/model"
)

type editRequest struct {
	PostID  model.PostID `json:"post_id"`
	Content *string      `json:"content,omitempty"`
}

type editStep func(ctx context.Context, id model.PostID) (model.EditSession, error)

func (h *Handler) serveBeginEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromPath(r)
	if !ok {
		badRequest(w, config.ErrInvalidPostID)
		return
	}

	st, err := h.board.BeginEdit(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) serveEditState(w http.ResponseWriter, r *http.Request) {
	st, err := h.board.EditState(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) serveUpdateEdit(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if err := decodeBody(r, &req); err != nil || req.PostID <= 0 || req.Content == nil {
		badRequest(w, config.ErrInvalidBody)
		return
	}

	st, err := h.board.UpdateEdit(r.Context(), req.PostID, *req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// serveEditStep handles the confirmation and cancel transitions, which all
// take the target post id in the body.
func (h *Handler) serveEditStep(step editStep) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req editRequest
		if err := decodeBody(r, &req); err != nil || req.PostID <= 0 {
			badRequest(w, config.ErrInvalidBody)
			return
		}

		st, err := step(r.Context(), req.PostID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}
