// Package docs holds the built-in help and documentation pages.
package docs

import (
	"embed"
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/debemdeboas/dallama/internal/util"
)

//go:embed pages/*.md
var pagesFS embed.FS

var ErrPageNotFound = errors.New("page not found")

const (
	SlugHelp          = "help"
	SlugDocumentation = "documentation"
)

type Page struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	NavLabel string `json:"nav"`
}

func Source(slug string) ([]byte, error) {
	data, err := pagesFS.ReadFile(path.Join("pages", slug+".md"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrPageNotFound
	}
	return data, err
}

// List returns every page sorted by slug.
func List() ([]Page, error) {
	entries, err := pagesFS.ReadDir("pages")
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(entries))
	for _, e := range entries {
		slug := strings.TrimSuffix(e.Name(), ".md")
		data, err := Source(slug)
		if err != nil {
			return nil, err
		}

		p := Page{Slug: slug, Title: slug, NavLabel: slug}
		if info, _, err := util.GetFrontMatter(data); err == nil {
			p.Title, p.NavLabel = info.Title, info.NavLabel
		}
		pages = append(pages, p)
	}

	slices.SortFunc(pages, func(a, b Page) int { return strings.Compare(a.Slug, b.Slug) })
	return pages, nil
}
