package assets

import "errors"

// Sentinel errors for theme operations.
var (
	ErrLayoutNotFound     = errors.New("layout not found")
	ErrStylesheetNotFound = errors.New("stylesheet not found")
	ErrInvalidAssetName   = errors.New("invalid asset name")
	ErrInvalidThemeDir    = errors.New("invalid theme directory")
	ErrAssetRead          = errors.New("failed to read theme asset")
	ErrPathTraversal      = errors.New("theme asset escapes theme directory")
)
