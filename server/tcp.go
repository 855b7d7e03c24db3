package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/shyptr/gqldb/config"
)

// ServeTCP answers each framed message with its result followed by a
// newline. It closes ln and every open connection when ctx is done.
func (s *Server) ServeTCP(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()
	context.AfterFunc(ctx, func() { ln.Close() })

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("server: accept: %w", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.serveConn(ctx, conn)
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	defer conn.Close()

	id, logger := s.connLogger(config.ProtocolTCP, conn.RemoteAddr())
	logger.Debug("connection opened")
	reader := NewReader(conn, s.opts.maxMessageBytes)
	for {
		message, err := reader.ReadMessage()
		if err != nil {
			switch {
			case err == io.EOF || ctx.Err() != nil:
				logger.Debug("connection closed")
			case stderrors.Is(err, ErrMessageTooLarge):
				logger.WithError(err).Warn("message rejected")
				s.writeLine(conn, err.Error())
			default:
				logger.WithError(err).Warn("connection failed")
			}
			return
		}
		resp := s.Handle(ctx, logger, config.ProtocolTCP, id, message)
		if err := s.writeLine(conn, resp.String()); err != nil {
			logger.WithError(err).Warn("write failed")
			return
		}
	}
}

func (s *Server) writeLine(conn net.Conn, text string) error {
	if s.opts.writeTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.opts.writeTimeout))
	}
	_, err := io.WriteString(conn, text+"\n")
	return err
}
