package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A stop caused by Shutdown is not an error.
	RunServer() error

	// Shutdown gracefully stops the server. In-flight work is abandoned once
	// ctx is done.
	Shutdown(ctx context.Context) error
}
