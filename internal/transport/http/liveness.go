package http

import "context"

// Liveness answers health checks until ctx is cancelled.
type Liveness interface {
	Serve(ctx context.Context) error
}

const livenessBody = "OK"

// livenessResponse is the fixed reply of the raw responder.
var livenessResponse = []byte("HTTP/1.1 200 OK\r\n" +
	"Content-Type: text/plain\r\n" +
	"Content-Length: 2\r\n" +
	"Connection: close\r\n" +
	"\r\n" +
	livenessBody)
