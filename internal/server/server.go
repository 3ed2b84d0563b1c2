// Package server exposes the analysis engine over HTTP. It is a thin
// adapter: classification guard, profile parsing, error-to-status mapping,
// JSON encoding. All decisions live in the analyzer.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"B3Advisor/internal/analyzer"
)

// Server is the HTTP front of the analysis service.
type Server struct {
	Analyzer *analyzer.Analyzer
	http     *http.Server
}

// New builds the server and its routes.
func New(addr string, an *analyzer.Analyzer) *Server {
	s := &Server{Analyzer: an}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /analise/acao/{ticker}", s.handleEquity)
	mux.HandleFunc("GET /analise/fii/{ticker}", s.handleFund)
	mux.HandleFunc("OPTIONS /", handlePreflight)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks serving requests until Shutdown.
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] http server listening on %s", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
