package model

import "errors"

// Request-aborting error kinds. Handlers map these to HTTP statuses with
// stable Portuguese messages; upstream diagnostic detail stays in the logs,
// never in the response body.
var (
	// ErrNotFound: the quote feed has no entry for the ticker.
	ErrNotFound = errors.New("ticker not found")
	// ErrUpstream: network failure, timeout, or malformed response from an
	// upstream source.
	ErrUpstream = errors.New("upstream source failed")
)
