// Package api exposes the board over a local JSON HTTP interface, plus the
// help pages and a Server-Sent Events change stream.
package api

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/board"
	"github.com/debemdeboas/dallama/internal/routes"
	"github.com/debemdeboas/dallama/internal/sse"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

var apiLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	apiLogger = l
}

type Options struct {
	SiteName       string
	Tagline        string
	DocsEnabled    bool
	HighlightStyle string
}

type Handler struct {
	board   *board.Board
	clients *sse.SSEClients
	opts    Options
}

func NewHandler(b *board.Board, clients *sse.SSEClients, opts Options) *Handler {
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = "github"
	}
	return &Handler{board: b, clients: clients, opts: opts}
}

// BroadcastChange forwards a board change to SSE subscribers. It is meant to
// be installed with board.SetChangeNotifier.
func (h *Handler) BroadcastChange(c board.Change) {
	data, err := json.Marshal(c)
	if err != nil {
		apiLogger.Error().Err(err).Msg("Failed to encode change")
		return
	}
	h.clients.Broadcast(c.PostID, string(data))
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+routes.APIFeed, h.serveFeed)
	mux.HandleFunc("POST "+routes.APIPosts, h.serveSubmitPost)
	mux.HandleFunc("DELETE "+routes.APIPost, h.serveDeletePost)
	mux.HandleFunc("POST "+routes.APIPostUpvote, h.serveVote(true))
	mux.HandleFunc("POST "+routes.APIPostDownvote, h.serveVote(false))

	mux.HandleFunc("POST "+routes.APIPostEdit, h.serveBeginEdit)
	mux.HandleFunc("GET "+routes.APIEdit, h.serveEditState)
	mux.HandleFunc("PUT "+routes.APIEdit, h.serveUpdateEdit)
	mux.HandleFunc("POST "+routes.APIEditSave, h.serveEditStep(h.board.RequestSave))
	mux.HandleFunc("POST "+routes.APIEditConfirmSave, h.serveEditStep(h.board.ConfirmSave))
	mux.HandleFunc("POST "+routes.APIEditCancelConfirm, h.serveEditStep(h.board.CancelConfirm))
	mux.HandleFunc("POST "+routes.APIEditDiscard, h.serveEditStep(h.board.RequestDiscard))
	mux.HandleFunc("POST "+routes.APIEditConfirmDiscard, h.serveEditStep(h.board.ConfirmDiscard))
	mux.HandleFunc("POST "+routes.APIEditCancel, h.serveEditStep(h.board.CancelEdit))

	mux.HandleFunc("GET "+routes.APIFilter, h.serveGetFilter)
	mux.HandleFunc("PUT "+routes.APIFilter, h.serveSetFilter)
	mux.HandleFunc("GET "+routes.APIUsers, h.serveUsers)
	mux.HandleFunc("GET "+routes.APIIdentity, h.serveGetIdentity)
	mux.HandleFunc("PUT "+routes.APIIdentity, h.serveSwitchIdentity)
	mux.HandleFunc("GET "+routes.APINotification, h.serveNotification)

	mux.HandleFunc("GET "+routes.SSEPath, h.serveEvents)

	if h.opts.DocsEnabled {
		mux.HandleFunc("GET "+routes.APIPages, h.servePageList)
		mux.HandleFunc("GET "+routes.HelpPath, h.servePage("help"))
		mux.HandleFunc("GET "+routes.DocumentationPath, h.servePage("documentation"))
		mux.HandleFunc("GET "+routes.PageStylePath, h.serveStyle)
		mux.HandleFunc("GET "+routes.APIStyles, h.serveStyles)
	}
}

// Routes returns every route wrapped in the standard middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.Register(mux)
	return withRequestLogger(apiLogger, secureHeaders(mux))
}
