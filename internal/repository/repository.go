// Package repository holds the post store: the ordered, newest-first sequence of posts.
package repository

import (
	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/model"
)

type PostRepository interface {
	// Seed replaces the contents with the startup dataset, kept in the given order.
	Seed(posts []model.Post) error

	Create(author model.UserID, content string) (*model.Post, error)
	Edit(id model.PostID, content string) (*model.Post, error)
	Remove(id model.PostID)

	Get(id model.PostID) (*model.Post, error)
	List() []model.Post
}

var repoLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	repoLogger = l
}
