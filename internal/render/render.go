// Package render turns help and documentation markdown into HTML with
// highlighted code blocks.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	md_html "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/mmarkdown/mmark/v2/lang"
	"github.com/mmarkdown/mmark/v2/mparser"
	"github.com/mmarkdown/mmark/v2/render/mhtml"
	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/cache"
	"github.com/debemdeboas/dallama/internal/util"
)

var renderLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	renderLogger = l
}

const untitled = "Untitled"

func formatter() *chromahtml.Formatter {
	return chromahtml.New(chromahtml.WithClasses(true), chromahtml.TabWidth(4))
}

// HighlightCode returns code as chroma HTML. Styling comes from StyleCSS.
func HighlightCode(code, language, style string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return template.HTMLEscapeString(code)
	}

	var buf strings.Builder
	if err := formatter().Format(&buf, styles.Get(style), iterator); err != nil {
		renderLogger.Warn().Err(err).Str("language", language).Msg("Failed to highlight code block")
		return template.HTMLEscapeString(code)
	}
	return buf.String()
}

// StyleCSS returns the stylesheet for a chroma style. Unknown styles fall
// back to chroma's default.
func StyleCSS(style string) (template.CSS, error) {
	if css, ok := cache.GetStyleCSS(style); ok {
		return css, nil
	}

	var buf bytes.Buffer
	if err := formatter().WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("failed to write css for style %s: %w", style, err)
	}

	css := template.CSS(buf.String())
	cache.SetStyleCSS(style, css)
	return css, nil
}

// RenderMarkdown renders a page body. language selects mmark's localized
// strings and defaults to English.
func RenderMarkdown(md []byte, language, style string) []byte {
	md = markdown.NormalizeNewlines(md)

	p := parser.NewWithExtensions(mparser.Extensions | parser.NoIntraEmphasis)
	init := mparser.NewInitial("")
	p.Opts = parser.Options{
		ParserHook:    mparser.Hook,
		ReadIncludeFn: init.ReadInclude,
		Flags:         parser.FlagsNone,
	}

	doc := markdown.Parse(md, p)
	mparser.AddIndex(doc)

	if language == "" {
		language = "en"
	}
	mhtmlOpts := mhtml.RendererOptions{
		Language: lang.New(language),
	}

	opts := md_html.RendererOptions{
		Flags: md_html.CommonFlags | md_html.HrefTargetBlank | md_html.FootnoteReturnLinks,
		RenderNodeHook: func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
			if code, ok := node.(*ast.CodeBlock); ok && entering {
				fmt.Fprintf(w, "<div class=\"highlight\">%s</div>", HighlightCode(string(code.Literal), string(code.Info), style))
				return ast.GoToNext, true
			}
			return mhtmlOpts.RenderHook(w, node, entering)
		},
	}

	return markdown.Render(doc, md_html.NewRenderer(opts))
}

// Guards the check-render-set sequence in RenderPage.
var pageMutex sync.Mutex

// RenderPage renders a markdown page with optional %%% TOML front matter.
// Results are cached by content hash and style.
func RenderPage(md []byte, style string) (*cache.RenderedPage, error) {
	hash := util.ContentHash(md)
	if page, ok := cache.GetRenderedPage(hash, style); ok {
		renderLogger.Debug().Str("contentHash", hash).Str("style", style).Msg("Cache hit for rendered page")
		return page, nil
	}

	pageMutex.Lock()
	defer pageMutex.Unlock()

	if page, ok := cache.GetRenderedPage(hash, style); ok {
		return page, nil
	}

	title, language := untitled, "en"
	info, body, err := util.GetFrontMatter(md)
	switch {
	case err == nil:
		body = body[info.Consumed:]
		if info.Title != "" {
			title = info.Title
		}
		language = info.Language
	case errors.Is(err, util.ErrNoFrontMatter):
	default:
		return nil, err
	}

	page := &cache.RenderedPage{
		Title: title,
		HTML:  template.HTML(RenderMarkdown(body, language, style)),
	}
	cache.SetRenderedPage(hash, style, page)
	renderLogger.Debug().Str("contentHash", hash).Str("style", style).Str("title", title).Msg("Rendered page")
	return page, nil
}
