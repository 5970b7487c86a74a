package domain

import "errors"

// Sentinel errors for the site. These provide consistent, checkable
// errors for content and rendering failures.
var (
	ErrInvalidContent       = errors.New("content catalog is invalid")
	ErrDanglingAnchor       = errors.New("in-page anchor has no matching element id")
	ErrUnsupportedComponent = errors.New("unsupported component type")
)
