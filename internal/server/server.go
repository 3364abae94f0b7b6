package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"homeport/internal/discovery"
	"homeport/internal/logging"
)

// Config holds the built-in server configuration
type Config struct {
	Host     string
	Port     int
	Token    string // Bearer token required on every route (empty = open)
	Name     string // Instance name announced over mDNS
	Announce bool   // Announce the server over mDNS
	CertPath string // Path to certificate file (empty = plain HTTP)
	KeyPath  string // Path to private key file
	Slots    int    // Default per-user home slot limit
}

// Server is the built-in waypoint store server. It serves the same HTTP API
// the client speaks, pushes change events over the websocket feed, and can
// announce itself on the LAN so `homeport scan` finds it.
type Server struct {
	config   *Config
	store    *Store
	hub      *Hub
	httpSrv  *http.Server
	announce *zeroconf.Server
}

// New creates a server around a fresh empty store.
func New(config *Config) *Server {
	store := NewStore()
	if config.Slots != 0 {
		store.SetDefaultSlots(config.Slots)
	}
	hub := NewHub()
	store.OnChange(hub.EntriesChanged)

	return &Server{
		config: config,
		store:  store,
		hub:    hub,
	}
}

// Store exposes the backing store for seeding before Start.
func (s *Server) Store() *Store {
	return s.store
}

// Start listens and serves until a shutdown signal arrives or the listener
// fails. It blocks.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           newHandler(s.store, s.hub, s.config.Token),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logging.Info("starting waypoint server",
		zap.String("addr", addr),
		zap.Bool("auth", s.config.Token != ""),
		zap.Bool("tls", s.config.CertPath != ""),
		zap.Bool("announce", s.config.Announce),
	)

	if s.config.Announce {
		if err := s.register(); err != nil {
			logging.Warn("mDNS announce failed", zap.Error(err))
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		var err error
		if s.config.CertPath != "" {
			s.httpSrv.TLSConfig = newTLSConfig()
			err = s.httpSrv.ListenAndServeTLS(s.config.CertPath, s.config.KeyPath)
		} else {
			err = s.httpSrv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errChan <- err
	}()

	select {
	case <-sigChan:
		logging.Info("shutdown signal received, stopping server")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// register announces the server on the LAN under the waypoint service type.
func (s *Server) register() error {
	name := s.config.Name
	if name == "" {
		name = "homeport"
	}
	txt := []string{"version=1"}
	if s.config.Token != "" {
		txt = append(txt, "auth=bearer")
	}

	announce, err := zeroconf.Register(
		name,
		discovery.ServiceType,
		discovery.ServiceDomain,
		s.config.Port,
		txt,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	s.announce = announce

	logging.Info("announced on the LAN",
		zap.String("instance", name),
		zap.String("service", discovery.ServiceType),
	)
	return nil
}

// Shutdown stops announcing, disconnects feed subscribers, and drains the
// HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.announce != nil {
		s.announce.Shutdown()
	}
	s.hub.Close()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		logging.Warn("shutdown timeout, forcing close", zap.Error(err))
		return s.httpSrv.Close()
	}

	logging.Info("server stopped")
	logging.Sync()
	return nil
}
