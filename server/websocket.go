package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shyptr/gqldb/config"
	"github.com/shyptr/gqldb/database"
	"github.com/shyptr/gqldb/errors"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type wsData struct {
	Document string `json:"document"`
}

// wsResponse is the JSON reply to one websocket message.
type wsResponse struct {
	Data   *wsData                `json:"data"`
	Errors []*errors.GraphQLError `json:"errors,omitempty"`
}

func newWSResponse(resp database.Response) wsResponse {
	if resp.Err != nil {
		return wsResponse{Errors: []*errors.GraphQLError{errors.FromError(resp.Err)}}
	}
	return wsResponse{Data: &wsData{Document: resp.String()}}
}

// ServeWS upgrades requests on the configured path and answers every text
// or binary message with a JSON document.
func (s *Server) ServeWS(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.HandleFunc(s.opts.path, func(w http.ResponseWriter, r *http.Request) {
		s.serveWSConn(ctx, w, r)
	})
	srv := &http.Server{Handler: mux}
	stop := context.AfterFunc(ctx, func() { srv.Close() })
	defer stop()

	if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: websocket: %w", err)
	}
	return nil
}

func (s *Server) serveWSConn(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	defer conn.Close()
	if s.opts.maxMessageBytes > 0 {
		conn.SetReadLimit(int64(s.opts.maxMessageBytes))
	}

	id, logger := s.connLogger(config.ProtocolWS, conn.RemoteAddr())
	logger.Debug("connection opened")
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("connection closed")
			} else {
				logger.WithError(err).Warn("connection failed")
			}
			return
		}
		message := trim(string(data))
		if message == "" {
			continue
		}
		resp := s.Handle(ctx, logger, config.ProtocolWS, id, message)
		if s.opts.writeTimeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(s.opts.writeTimeout))
		}
		if err := conn.WriteJSON(newWSResponse(resp)); err != nil {
			logger.WithError(err).Warn("write failed")
			return
		}
	}
}
