package mdswagger

import "errors"

// Sentinel errors for token processing. These never abort a page: the
// rewriter turns them into inline error fragments.
var (
	ErrUsage        = errors.New("token has no path or URL")
	ErrInvalidPath  = errors.New("invalid path")
	ErrFileNotFound = errors.New("file not found")
)

// Sentinel errors for plugin configuration. These are returned before any
// page is processed.
var (
	ErrAssetNotFound = errors.New("viewer asset file not found")
	ErrNilRegistry   = errors.New("file registry cannot be nil")
)
