// Package httpx provides HTTP response utilities.
package httpx

import "errors"

// Sentinel errors for domain layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)
