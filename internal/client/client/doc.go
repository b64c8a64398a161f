// Package client talks to the geoattend gRPC service on behalf of the CLI.
//
// GRPCClient owns the connection, attaches the admin access token to every
// call through a unary interceptor and maps gRPC status codes to the
// sentinel errors below. Rejected clock events surface as *RejectedError
// carrying the structured reason sent by the server.
package client
