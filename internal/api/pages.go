package api

import (
	"html/template"
	"net/http"
	"slices"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/debemdeboas/dallama/internal/cache"
	"github.com/debemdeboas/dallama/internal/config"
	"github.com/debemdeboas/dallama/internal/docs"
	"github.com/debemdeboas/dallama/internal/render"
	"github.com/debemdeboas/dallama/internal/util"
)

type pageData struct {
	SiteName string
	Tagline  string
	Page     *cache.RenderedPage
	Style    template.CSS
	Nav      []docs.Page
}

func (h *Handler) servePage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		style := h.styleFromRequest(r)

		src, err := docs.Source(slug)
		if err != nil {
			writeError(w, r, err)
			return
		}
		page, err := render.RenderPage(src, style)
		if err != nil {
			writeError(w, r, err)
			return
		}
		css, err := render.StyleCSS(style)
		if err != nil {
			writeError(w, r, err)
			return
		}
		nav, err := docs.List()
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set(config.HCType, config.CTypeHTML)
		w.Header().Set(config.HETag, util.ContentHashString(util.ContentHash(src)+style))
		if err := pageTemplate.Execute(w, pageData{SiteName: h.opts.SiteName, Tagline: h.opts.Tagline, Page: page, Style: css, Nav: nav}); err != nil {
			apiLogger.Error().Err(err).Str("page", slug).Msg("Failed to execute page template")
		}
	}
}

func (h *Handler) servePageList(w http.ResponseWriter, r *http.Request) {
	pages, err := docs.List()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

func (h *Handler) serveStyle(w http.ResponseWriter, r *http.Request) {
	css, err := render.StyleCSS(r.PathValue("style"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set(config.HCType, config.CTypeCSS)
	w.Header().Set(config.HETag, util.ContentHashString(string(css)))
	w.Write([]byte(css))
}

// styleFromRequest picks the highlight style from the style query parameter,
// then the style cookie, then the configured default. Unknown names are
// ignored.
func (h *Handler) styleFromRequest(r *http.Request) string {
	if s := r.URL.Query().Get("style"); knownStyle(s) {
		return s
	}
	if c, err := r.Cookie(config.CookieStyle); err == nil && knownStyle(c.Value) {
		return c.Value
	}
	return h.opts.HighlightStyle
}

func knownStyle(name string) bool {
	if name == "" {
		return false
	}
	_, ok := styles.Registry[name]
	return ok
}

// serveStyles lists the available highlight styles.
func (h *Handler) serveStyles(w http.ResponseWriter, r *http.Request) {
	names := styles.Names()
	slices.Sort(names)
	writeJSON(w, http.StatusOK, names)
}
