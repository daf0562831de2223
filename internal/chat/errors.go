package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	// ErrEmptyText rejects a request with nothing to resolve. Every other
	// failure degrades to a fallback or apology reply instead of an error.
	ErrEmptyText = errors.New("message text is empty")
)
