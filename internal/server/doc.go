// Package server runs the portal's listeners.
//
// The REST API and the gRPC health service are started side by side. A stop
// signal or a failed listener shuts both down, after which the notification
// dispatcher gets the remaining budget to finish queued sends.
package server
