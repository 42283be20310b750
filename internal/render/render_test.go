package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/debemdeboas/dallama/internal/cache"
)

const pageWithFrontMatter = `%%%
title = "Getting around"
nav = "Help"
%%%

# Posting

Type in the box and press **Post**.

` + "```go\nfunc main() {}\n```\n"

func TestHighlightCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		language string
		contains string
	}{
		{"Known language", "package main", "go", `class="chroma"`},
		{"Unknown language", "just text", "no-such-lang", "just text"},
		{"Escapes markup", "<b>bold</b>", "", "&lt;b&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HighlightCode(tt.code, tt.language, "github")
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Expected %q in output, got %q", tt.contains, got)
			}
		})
	}
}

func TestRenderPage(t *testing.T) {
	cache.ClearRenderedPageCache()

	t.Run("Front matter title", func(t *testing.T) {
		page, err := RenderPage([]byte(pageWithFrontMatter), "github")
		if err != nil {
			t.Fatalf("Failed to render page: %v", err)
		}
		if page.Title != "Getting around" {
			t.Errorf("Expected title from front matter, got %q", page.Title)
		}
		html := string(page.HTML)
		if strings.Contains(html, "%%%") {
			t.Error("Expected front matter to be stripped from the body")
		}
		if !strings.Contains(html, "<strong>Post</strong>") {
			t.Errorf("Expected rendered emphasis, got %q", html)
		}
		if !strings.Contains(html, `<div class="highlight">`) {
			t.Errorf("Expected highlighted code block, got %q", html)
		}
	})

	t.Run("No front matter", func(t *testing.T) {
		page, err := RenderPage([]byte("plain *text*"), "github")
		if err != nil {
			t.Fatalf("Failed to render page: %v", err)
		}
		if page.Title != untitled {
			t.Errorf("Expected %q, got %q", untitled, page.Title)
		}
		if !strings.Contains(string(page.HTML), "<em>text</em>") {
			t.Errorf("Unexpected HTML %q", page.HTML)
		}
	})

	t.Run("Broken front matter", func(t *testing.T) {
		if _, err := RenderPage([]byte("%%%\ntitle = \n%%%\nbody"), "github"); err == nil {
			t.Error("Expected front matter decode error")
		}
	})
}

func TestRenderPageCached(t *testing.T) {
	cache.ClearRenderedPageCache()
	md := []byte(pageWithFrontMatter)

	var wg sync.WaitGroup
	pages := make([]*cache.RenderedPage, 8)
	for i := range pages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pages[i], _ = RenderPage(md, "monokai")
		}(i)
	}
	wg.Wait()

	for i, p := range pages {
		if p != pages[0] {
			t.Errorf("Expected page %d to come from the cache", i)
		}
	}

	other, _ := RenderPage(md, "github")
	if other == pages[0] {
		t.Error("Expected a separate cache entry per style")
	}
}

func TestStyleCSS(t *testing.T) {
	css, err := StyleCSS("github")
	if err != nil {
		t.Fatalf("Failed to get css: %v", err)
	}
	if !strings.Contains(string(css), ".chroma") {
		t.Errorf("Expected chroma classes in css, got %q", css)
	}

	cached, _ := cache.GetStyleCSS("github")
	if cached != css {
		t.Error("Expected css to be cached")
	}
}
