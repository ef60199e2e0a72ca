// internal/core/errors.go
package core

import "errors"

// Define custom errors for better error handling and classification
var (
	ErrInvalidURL     = errors.New("invalid URL: absolute URL with scheme and host required")
	ErrNetworkTimeout = errors.New("network request timed out")
	ErrNetworkError   = errors.New("network error occurred")
	ErrOutputFormat   = errors.New("unsupported output format")
	ErrFileWrite      = errors.New("failed to write to file")
)
