package handler

import "errors"

// errNoHandlersAreCreated means the server config names neither an HTTP nor
// a gRPC address. Startup treats it as fatal.
var errNoHandlersAreCreated = errors.New("no handlers are created: configure an http or grpc address")
