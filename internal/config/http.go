package config

const (
	HCType        = "Content-Type"
	HETag         = "ETag"
	HCacheControl = "Cache-Control"
	HConnection   = "Connection"

	CTypeCSS         = "text/css"
	CTypeHTML        = "text/html"
	CTypeJSON        = "application/json"
	CTypeEventStream = "text/event-stream"
)

const (
	HTTPErrMethodNotAllowed = "Method not allowed"
)

const (
	CookieStyle = "style"
)
