package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/samber/oops"
)

const (
	// maxRequestHead bounds how much of a request is read before replying.
	maxRequestHead = 8 * 1024

	defaultReadTimeout  = 2 * time.Second
	defaultWriteTimeout = 5 * time.Second
	drainTimeout        = 100 * time.Millisecond
)

var headerTerminator = []byte("\r\n\r\n")

// Responder is a raw TCP liveness endpoint. It does not parse requests:
// every connection gets the same 200 OK, including malformed ones and
// clients that send nothing.
type Responder struct {
	port         int
	logger       *slog.Logger
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	active sync.WaitGroup
}

// NewResponder creates a responder for the given port
func NewResponder(port int) *Responder {
	return &Responder{
		port:         port,
		logger:       slog.Default(),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}
}

// SetLogger sets the logger
func (r *Responder) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// Serve listens on the configured port until ctx is cancelled
func (r *Responder) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", r.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return oops.With("addr", addr).Wrap(err)
	}
	return r.ServeListener(ctx, ln)
}

// ServeListener accepts connections on ln until ctx is cancelled, then
// waits for in-flight connections to finish.
func (r *Responder) ServeListener(ctx context.Context, ln net.Listener) error {
	defer ln.Close()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	r.logger.Info("Health server running", "addr", ln.Addr().String(), "mode", "raw")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			r.logger.Error("Liveness accept failed", "error", err)
			continue
		}

		r.active.Add(1)
		go func() {
			defer r.active.Done()
			r.handleConnection(conn)
		}()
	}

	r.active.Wait()
	return nil
}

func (r *Responder) handleConnection(conn net.Conn) {
	defer conn.Close()

	r.readRequestHead(conn)

	conn.SetWriteDeadline(time.Now().Add(r.WriteTimeout))
	if _, err := conn.Write(livenessResponse); err != nil {
		r.logger.Debug("Liveness write failed", "remote", conn.RemoteAddr().String(), "error", err)
		return
	}

	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.CloseWrite()
	}

	// Drain what the client still sends so the close does not reset the
	// connection before the response is read.
	conn.SetReadDeadline(time.Now().Add(drainTimeout))
	io.Copy(io.Discard, io.LimitReader(conn, maxRequestHead))
}

// readRequestHead consumes input until the end of the header block, the size
// cap, EOF or the read timeout, whichever comes first. What was read is
// discarded.
func (r *Responder) readRequestHead(conn net.Conn) {
	conn.SetReadDeadline(time.Now().Add(r.ReadTimeout))

	buf := make([]byte, 0, 1024)
	chunk := make([]byte, 1024)
	for len(buf) < maxRequestHead {
		n, err := conn.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if bytes.Contains(buf, headerTerminator) {
			return
		}
		if err != nil {
			var netErr net.Error
			if !errors.Is(err, io.EOF) && !(errors.As(err, &netErr) && netErr.Timeout()) {
				r.logger.Debug("Liveness read failed", "remote", conn.RemoteAddr().String(), "error", err)
			}
			return
		}
	}
}
