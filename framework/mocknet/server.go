package mocknet

import (
	"net/http"
	"net/http/httptest"
)

// Server exposes a Registry on a local listener for the lifetime of one test case.
type Server struct {
	registry   *Registry
	httpServer *httptest.Server
}

// StartServer starts listening on a random local port.
func StartServer(registry *Registry) *Server {
	return &Server{
		registry:   registry,
		httpServer: httptest.NewServer(registry),
	}
}

// URL returns the base URL of the server, with no trailing slash.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Client returns an HTTP client configured for the server.
func (s *Server) Client() *http.Client {
	return s.httpServer.Client()
}

func (s *Server) Registry() *Registry {
	return s.registry
}

// Close shuts the listener down, blocking until outstanding requests have completed.
func (s *Server) Close() {
	s.httpServer.Close()
}
