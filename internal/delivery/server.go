package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"cleanrecord/internal/domain/lifecycle"
	"cleanrecord/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/http2"
)

// EchoServer runs one echo instance on all interfaces. The API and the stream
// worker both embed it.
type EchoServer struct {
	name   string
	port   int
	echo   *echo.Echo
	h2     *http2.Server
	logger *slog.Logger
}

// NewEchoServer serves e on port. A non-nil h2 enables cleartext HTTP/2.
func NewEchoServer(name string, port int, e *echo.Echo, h2 *http2.Server, logger *slog.Logger) *EchoServer {
	return &EchoServer{name: name, port: port, echo: e, h2: h2, logger: logger}
}

// Serve blocks until the server is shut down.
func (s *EchoServer) Serve(context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting HTTP server", slog.String("server", s.name), slog.String("host_port", hostPort))

	var err error
	if s.h2 != nil {
		err = s.echo.StartH2CServer(hostPort, s.h2)
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

// Shutdown drains in-flight requests, bounded by lifecycle.DefaultTimeout.
func (s *EchoServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server", slog.String("server", s.name))

	return errors.WithStack(s.echo.Shutdown(ctx))
}
