// Package routes defines HTTP route patterns for the application.
package routes

// Pages
const (
	SSEPath           = "/sse"
	HelpPath          = "/help"
	DocumentationPath = "/documentation"
	PageStylePath     = "/style/{style}"
	RootPath          = "/"
)

// API
const (
	APIFeed         = "/api/feed"
	APIPosts        = "/api/posts"
	APIPost         = "/api/posts/{id}"
	APIPostUpvote   = "/api/posts/{id}/upvote"
	APIPostDownvote = "/api/posts/{id}/downvote"
	APIPostEdit     = "/api/posts/{id}/edit"

	APIEdit               = "/api/edit"
	APIEditSave           = "/api/edit/save"
	APIEditConfirmSave    = "/api/edit/confirm-save"
	APIEditCancelConfirm  = "/api/edit/cancel-confirm"
	APIEditDiscard        = "/api/edit/discard"
	APIEditConfirmDiscard = "/api/edit/confirm-discard"
	APIEditCancel         = "/api/edit/cancel"

	APIFilter       = "/api/filter"
	APIUsers        = "/api/users"
	APIIdentity     = "/api/identity"
	APINotification = "/api/notification"
	APIPages        = "/api/pages"
	APIStyles       = "/api/styles"
)
