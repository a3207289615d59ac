// Package http implements the REST surface of the intake portal.
//
// Routes are served by a chi router under the /api prefix. Middleware
// assigns a trace id, writes the access log, resolves the bearer token to
// an actor and rate limits public submissions before requests reach the
// service layer. Errors from the service layer are translated to status
// codes in one place, errors_mapper.go.
package http
