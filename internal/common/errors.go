// Package common holds the error taxonomy shared across terminal modules.
package common

import "errors"

// ErrInvalidInput marks malformed arithmetic input: negative counts, negative
// tax rates or discount values, unknown discount methods.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound indicates a referenced product or order is missing. Receipt
// generation degrades to placeholder data instead of propagating it.
var ErrNotFound = errors.New("not found")

// ErrUpstream indicates the store API call failed. It is surfaced to the
// caller as-is; no retry policy exists at this layer.
var ErrUpstream = errors.New("upstream failure")

// IsInvalidInput reports whether err belongs to the invalid-input class.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err belongs to the not-found class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
