package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/config"
	"github.com/debemdeboas/dallama/internal/model"
	"github.com/debemdeboas/dallama/internal/sse"
)

const (
	EventConnected = "connected"
	EventChanged   = "changed"

	clientBuffer = 16
)

// serveEvents streams a changed event after every board mutation. The
// optional post query parameter narrows the stream to one post.
func (h *Handler) serveEvents(w http.ResponseWriter, r *http.Request) {
	l := zerolog.Ctx(r.Context())

	var postID model.PostID
	if p := r.URL.Query().Get("post"); p != "" {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			badRequest(w, config.ErrInvalidPostID)
			return
		}
		postID = model.PostID(id)
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, config.ErrStreamUnsupported, http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HCType, config.CTypeEventStream)
	w.Header().Set(config.HCacheControl, "no-cache")
	w.Header().Set(config.HConnection, "keep-alive")
	w.Header().Del("X-Content-Type-Options")

	fmt.Fprintf(w, "event: %s\ndata: {}\n\n", EventConnected)
	flusher.Flush()

	client := sse.NewClient(postID, clientBuffer)
	h.clients.Add(client)
	l.Debug().Int64("post_id", int64(postID)).Msg("SSE client connected")

	defer func() {
		h.clients.Delete(client)
		l.Debug().Msg("SSE client disconnected")
	}()

	done := r.Context().Done()
	for {
		select {
		case msg := <-client.Msg:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", EventChanged, msg)
			flusher.Flush()
		case <-done:
			return
		}
	}
}
