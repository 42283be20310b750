package cache

import "html/template"

// RenderedPage is a documentation page rendered to HTML.
type RenderedPage struct {
	Title string
	HTML  template.HTML
}

var renderedPageCache = NewCache[string, *RenderedPage]()

func GetRenderedPage(contentHash, style string) (*RenderedPage, bool) {
	return renderedPageCache.Get(contentHash + ":" + style)
}

func SetRenderedPage(contentHash, style string, page *RenderedPage) {
	renderedPageCache.Set(contentHash+":"+style, page)
}

func ClearRenderedPageCache() {
	renderedPageCache.Clear()
}

var styleCSSCache = NewCache[string, template.CSS]()

func GetStyleCSS(style string) (template.CSS, bool) {
	return styleCSSCache.Get(style)
}

func SetStyleCSS(style string, css template.CSS) {
	styleCSSCache.Set(style, css)
}
