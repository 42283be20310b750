package model

import "errors"

var (
	// ErrEmptyContent is returned when a post or edit has only whitespace.
	ErrEmptyContent = errors.New("content is empty")

	// ErrInvalidTransition is returned when the edit session is driven out of order
	// or with a post id different from the one being edited.
	ErrInvalidTransition = errors.New("invalid edit session transition")

	// ErrUnauthorized is returned when the acting identity is not the post author.
	ErrUnauthorized = errors.New("acting user is not the post author")

	ErrPostNotFound = errors.New("post not found")
	ErrUserNotFound = errors.New("user not found")
)
