// Package server exposes a database over raw TCP and websocket
// connections, with an optional gRPC health endpoint.
package server

import (
	"context"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/shyptr/gqldb/config"
	"github.com/shyptr/gqldb/database"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Executor runs one document. *database.Database implements it.
type Executor interface {
	Execute(ctx context.Context, source string) database.Response
}

type Server struct {
	executor Executor
	logger   *logrus.Logger
	handlers []HandlerFunc
	opts     options
}

func New(executor Executor, logger *logrus.Logger, opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{executor: executor, logger: logger, opts: o}
}

// Use appends middleware to the chain run for every message.
func (s *Server) Use(handlers ...HandlerFunc) {
	s.handlers = append(s.handlers, handlers...)
}

func (s *Server) execute(c *Context) {
	c.Result = s.executor.Execute(c, c.Request)
}

// Handle runs the handler chain for one message and returns its result.
func (s *Server) Handle(ctx context.Context, logger *logrus.Entry, protocol, connID, request string) database.Response {
	handlers := make([]HandlerFunc, 0, len(s.handlers)+1)
	handlers = append(handlers, s.handlers...)
	handlers = append(handlers, s.execute)

	c := newContext(ctx, handlers)
	c.ConnID = connID
	c.Protocol = protocol
	c.Request = request
	c.Logger = logger
	c.Next()
	return c.Result
}

func (s *Server) connLogger(protocol string, remote net.Addr) (string, *logrus.Entry) {
	id := uuid.New().String()
	return id, s.logger.WithFields(logrus.Fields{
		"conn_id":  id,
		"protocol": protocol,
		"remote":   remote.String(),
	})
}

// Run listens on every configured protocol and serves until ctx is done.
func (s *Server) Run(ctx context.Context, cfg *config.Config) error {
	type listener struct {
		name    string
		address string
		serve   func(context.Context, net.Listener) error
	}
	var listeners []listener
	if cfg.HasProtocol(config.ProtocolTCP) {
		listeners = append(listeners, listener{config.ProtocolTCP, cfg.TCP.Address, s.ServeTCP})
	}
	if cfg.HasProtocol(config.ProtocolWS) {
		listeners = append(listeners, listener{config.ProtocolWS, cfg.WS.Address, s.ServeWS})
	}
	if cfg.Health.Enabled {
		listeners = append(listeners, listener{"health", cfg.Health.Address, s.ServeHealth})
	}

	opened := make([]net.Listener, 0, len(listeners))
	for _, l := range listeners {
		ln, err := net.Listen("tcp", l.address)
		if err != nil {
			for _, o := range opened {
				o.Close()
			}
			return fmt.Errorf("server: listen %s on %s: %w", l.name, l.address, err)
		}
		opened = append(opened, ln)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, l := range listeners {
		ln, serve := opened[i], l.serve
		s.logger.WithFields(logrus.Fields{"protocol": l.name, "address": ln.Addr().String()}).Info("listening")
		g.Go(func() error {
			return serve(ctx, ln)
		})
	}
	return g.Wait()
}
