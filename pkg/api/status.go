package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/bodymindarts/habitat/pkg/config"
	"github.com/bodymindarts/habitat/pkg/log"
	"github.com/bodymindarts/habitat/pkg/metrics"
)

// StatusServer serves the supervisor's status endpoints on the HTTP gateway address
type StatusServer struct {
	mux    *http.ServeMux
	server *http.Server
}

// NewStatusServer creates a status server. It reads the published
// configuration on every request and never holds a copy.
func NewStatusServer() *StatusServer {
	mux := http.NewServeMux()
	s := &StatusServer{
		mux: mux,
		server: &http.Server{
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	mux.Handle("/health", getOnly(metrics.HealthHandler()))
	mux.Handle("/ready", getOnly(metrics.ReadyHandler()))
	mux.Handle("/live", getOnly(metrics.LiveHandler()))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/config", s.configHandler)

	return s
}

// Start listens on addr and serves until Stop is called. It returns
// http.ErrServerClosed after a clean shutdown.
func (s *StatusServer) Start(addr config.HTTPListenAddr) error {
	lis, err := net.ListenTCP("tcp", addr.TCPAddr())
	if err != nil {
		metrics.SetComponent(metrics.ComponentHTTP, false, err.Error())
		return err
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener
func (s *StatusServer) Serve(lis net.Listener) error {
	metrics.SetComponent(metrics.ComponentHTTP, true, lis.Addr().String())
	logger := log.WithComponent("http-gateway")
	logger.Info().Str("addr", lis.Addr().String()).Msg("Status endpoints listening")
	return s.server.Serve(lis)
}

// Stop gracefully shuts the server down
func (s *StatusServer) Stop(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Handler returns the HTTP handler for embedding in other servers
func (s *StatusServer) Handler() http.Handler {
	return s.mux
}

// configHandler implements the /config endpoint
func (s *StatusServer) configHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cfg := config.Current()
	if cfg == nil {
		http.Error(w, "configuration not published", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(cfg.Summary())
}

func getOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.ServeHTTP(w, r)
	})
}
