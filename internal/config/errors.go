package config

const (
	// Startup errors
	ErrLoadConfigFmt = "Failed to load config: %v"
	ErrLoadSeedFmt   = "Failed to load seed data: %v"
	ErrBuildBoardFmt = "Failed to build board: %v"

	// Request errors
	ErrInvalidPostID     = "Invalid post id"
	ErrInvalidUserID     = "Invalid user id"
	ErrInvalidBody       = "Invalid request body"
	ErrInternalServerErr = "Internal server error"
	ErrStreamUnsupported = "Streaming unsupported"

	// Config errors
	ErrWriteConfigContentFmt = "Failed to write config content: %v"
)
