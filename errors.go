package mdfw

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrEmptyBatch indicates a batch-import request carried no files.
	ErrEmptyBatch = errors.New("empty batch: no source files")

	// ErrFontUnavailable indicates the host has no matching family/variant.
	ErrFontUnavailable = errors.New("font unavailable")

	// ErrElementGone indicates a matched element disappeared before the
	// task wrote to it.
	ErrElementGone = errors.New("target element no longer exists")
)
