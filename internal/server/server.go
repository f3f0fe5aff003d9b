// Package server wires the request handler into a fasthttp server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/valyala/fasthttp"

	"rut-calc-api/internal/config"
	"rut-calc-api/internal/handler"
)

const name = "rut-calc-api"

type Server struct {
	srv *fasthttp.Server
	log *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *Server {
	h := handler.New(handler.Options{
		Greeting: cfg.Greeting,
		APIKey:   cfg.APIKey,
	}, log)

	return &Server{
		srv: &fasthttp.Server{
			Handler:      h,
			Name:         name,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		log: log,
	}
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ln)
}

func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("server listening", "addr", ln.Addr().String())
	if err := s.srv.Serve(ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown waits for open connections to finish or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("server shutting down")
	if err := s.srv.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
