package api

import (
	"net/http"
	"strconv"

	"github.com/debemdeboas/dallama/internal/config"
	"github.com/debemdeboas/dallama/internal/model"
)

type feedResponse struct {
	Author *model.UserID `json:"author"`
	Posts  []feedPost    `json:"posts"`
}

type feedPost struct {
	model.Entry
	Score  int  `json:"score"`
	Edited bool `json:"edited"`
}

func newFeedPosts(entries []model.Entry) []feedPost {
	posts := make([]feedPost, 0, len(entries))
	for _, e := range entries {
		posts = append(posts, feedPost{Entry: e, Score: e.Tally.Score(), Edited: e.Post.Edited()})
	}
	return posts
}

type submitRequest struct {
	Content string `json:"content"`
}

// serveFeed returns the visible feed. An author query parameter overrides
// the stored filter for this request only.
func (h *Handler) serveFeed(w http.ResponseWriter, r *http.Request) {
	var (
		entries []model.Entry
		filter  model.Filter
		err     error
	)

	if author := r.URL.Query().Get("author"); author != "" {
		id, perr := strconv.Atoi(author)
		if perr != nil {
			badRequest(w, config.ErrInvalidUserID)
			return
		}
		filter = model.FilterBy(model.UserID(id))
		entries, err = h.board.FeedFor(r.Context(), filter)
	} else {
		if filter, err = h.board.Filter(r.Context()); err == nil {
			entries, err = h.board.Feed(r.Context())
		}
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feedResponse{Author: filter.Author, Posts: newFeedPosts(entries)})
}

func (h *Handler) serveSubmitPost(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, config.ErrInvalidBody)
		return
	}

	post, err := h.board.SubmitPost(r.Context(), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) serveVote(up bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postIDFromPath(r)
		if !ok {
			badRequest(w, config.ErrInvalidPostID)
			return
		}

		vote := h.board.Downvote
		if up {
			vote = h.board.Upvote
		}

		tally, err := vote(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tally)
	}
}

func (h *Handler) serveDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromPath(r)
	if !ok {
		badRequest(w, config.ErrInvalidPostID)
		return
	}

	if err := h.board.DeletePost(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
