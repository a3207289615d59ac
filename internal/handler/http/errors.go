// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidQuery is returned for unknown sort or status query values.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrTooManySubmissions is returned when a client exceeded the public
	// submission rate limit.
	ErrTooManySubmissions = errors.New("too many submissions, try again later")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
