// Package model defines the core data structures shared by the board stores.
package model

import (
	"strings"
	"time"
)

type PostID int64

type Post struct {
	ID PostID `json:"id"`

	Author  UserID `json:"author"`
	Content string `json:"content"`

	CreatedDate time.Time `json:"created"`
	// Refreshed on every successful edit.
	ModifiedDate time.Time `json:"modified"`
}

// IsBlank reports whether content would be rejected as an empty submission.
func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}

// Edited reports whether the post content was replaced after creation.
func (p *Post) Edited() bool {
	return p.ModifiedDate.After(p.CreatedDate)
}
