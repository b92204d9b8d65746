// Package server exposes the calendar and clock arithmetic as the Chrono
// gRPC service. Server implements the RPC handlers, Node owns the
// listener lifecycle, and ClientManager caches client connections for
// callers that talk to a running service.
package server
