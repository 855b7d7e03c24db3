package server_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shyptr/gqldb/config"
	"github.com/shyptr/gqldb/database"
	"github.com/shyptr/gqldb/logging"
	"github.com/shyptr/gqldb/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type executorFunc func(ctx context.Context, source string) database.Response

func (f executorFunc) Execute(ctx context.Context, source string) database.Response {
	return f(ctx, source)
}

func startDatabase(t *testing.T) *database.Database {
	t.Helper()
	cfg := config.Default()
	db := database.New(cfg, logging.Discard(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- db.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
	return db
}

// serve runs fn on a fresh loopback listener until the test ends.
func serve(t *testing.T, fn func(context.Context, net.Listener) error) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fn(ctx, ln) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
	return ln.Addr().String()
}

func readN(t *testing.T, conn net.Conn, n int) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, n)
	_, err := io.ReadFull(conn, buf)
	require.NoError(t, err)
	return string(buf)
}

func TestHandle(t *testing.T) {
	t.Run("runs middleware around the executor", func(t *testing.T) {
		var calls []string
		srv := server.New(executorFunc(func(ctx context.Context, source string) database.Response {
			calls = append(calls, "execute "+source)
			return database.Response{}
		}), logging.Discard())
		srv.Use(func(c *server.Context) {
			calls = append(calls, "before")
			c.Set("seen", true)
			c.Next()
			calls = append(calls, "after")
		}, func(c *server.Context) {
			seen, _ := c.Get("seen")
			calls = append(calls, fmt.Sprintf("seen %v %s", seen, c.Protocol))
		})

		srv.Handle(context.Background(), logging.Discard().WithField("test", t.Name()), "tcp", "id", "scalar A")
		assert.Equal(t, []string{"before", "seen true tcp", "execute scalar A", "after"}, calls)
	})

	t.Run("abort skips the executor", func(t *testing.T) {
		srv := server.New(executorFunc(func(context.Context, string) database.Response {
			t.Fatal("executor called")
			return database.Response{}
		}), logging.Discard())
		srv.Use(func(c *server.Context) {
			c.Result = database.Response{Err: stderrors.New("denied")}
			c.Abort()
			assert.True(t, c.IsAborted())
		})

		resp := srv.Handle(context.Background(), logging.Discard().WithField("test", t.Name()), "tcp", "id", "scalar A")
		assert.EqualError(t, resp.Err, "denied")
	})
}

func TestServeTCP(t *testing.T) {
	srv := server.New(startDatabase(t), logging.Discard())
	addr := serve(t, srv.ServeTCP)

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	t.Run("answers definitions with the canonical document", func(t *testing.T) {
		_, err := io.WriteString(conn, "type User { id: ID! name: String }")
		require.NoError(t, err)
		want := "type User {\n  id: ID!\n  name: String\n}\n"
		assert.Equal(t, want, readN(t, conn, len(want)))
	})

	t.Run("answers errors with their message", func(t *testing.T) {
		_, err := io.WriteString(conn, "type Empty {}\n")
		require.NoError(t, err)
		want := "Parse Error: Object empty on line 1, column 6\n"
		assert.Equal(t, want, readN(t, conn, len(want)))
	})

	t.Run("answers pipelined messages in order", func(t *testing.T) {
		_, err := io.WriteString(conn, "{ user { id } }\nscalar Date\n")
		require.NoError(t, err)
		want := "{\n  user {\n    id\n  }\n}\nscalar Date\n"
		assert.Equal(t, want, readN(t, conn, len(want)))
	})

	t.Run("a message may mix definitions and queries", func(t *testing.T) {
		_, err := io.WriteString(conn, "extend type User @cached\n{ user { id } }")
		require.NoError(t, err)
		want := "extend type User @cached\n\n{\n  user {\n    id\n  }\n}\n"
		assert.Equal(t, want, readN(t, conn, len(want)))
	})

	t.Run("rejects oversized messages", func(t *testing.T) {
		small := server.New(startDatabase(t), logging.Discard(), server.MaxMessageBytes(16))
		conn, err := net.Dial("tcp", serve(t, small.ServeTCP))
		require.NoError(t, err)
		defer conn.Close()

		_, err = io.WriteString(conn, "type Big { "+strings.Repeat("a: Int ", 10))
		require.NoError(t, err)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		line, _ := io.ReadAll(conn)
		assert.Contains(t, string(line), "message too large")
	})
}

func TestServeTCPShutdown(t *testing.T) {
	srv := server.New(startDatabase(t), logging.Discard())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ServeTCP(ctx, ln) }()

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	_, err = io.WriteString(conn, "scalar Date\n")
	require.NoError(t, err)
	assert.Equal(t, "scalar Date\n", readN(t, conn, len("scalar Date\n")))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ServeTCP did not return")
	}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, err = conn.Read(make([]byte, 1))
	assert.Error(t, err)
}

func TestServeWS(t *testing.T) {
	srv := server.New(startDatabase(t), logging.Discard(), server.Path("/query"))
	addr := serve(t, srv.ServeWS)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/query", nil)
	require.NoError(t, err)
	defer conn.Close()

	t.Run("replies with the document", func(t *testing.T) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("scalar Date")))
		var reply map[string]interface{}
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, map[string]interface{}{"document": "scalar Date"}, reply["data"])
		assert.NotContains(t, reply, "errors")
	})

	t.Run("replies with located errors", func(t *testing.T) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("type Empty {}")))
		var reply struct {
			Data   interface{} `json:"data"`
			Errors []struct {
				Message   string `json:"message"`
				Locations []struct {
					Line   int `json:"line"`
					Column int `json:"column"`
				} `json:"locations"`
				Extensions map[string]interface{} `json:"extensions"`
			} `json:"errors"`
		}
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Nil(t, reply.Data)
		require.Len(t, reply.Errors, 1)
		assert.Equal(t, "Parse Error: Object empty on line 1, column 6", reply.Errors[0].Message)
		require.Len(t, reply.Errors[0].Locations, 1)
		assert.Equal(t, 6, reply.Errors[0].Locations[0].Column)
		assert.Equal(t, "PARSE_OBJECT_EMPTY", reply.Errors[0].Extensions["code"])
	})

	t.Run("only the configured path upgrades", func(t *testing.T) {
		_, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/graphql", nil)
		assert.Error(t, err)
	})
}

func TestServeHealth(t *testing.T) {
	srv := server.New(executorFunc(func(context.Context, string) database.Response {
		return database.Response{}
	}), logging.Discard(), server.HealthService("gqldb-test"))
	addr := serve(t, srv.ServeHealth)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(ctx, addr, grpc.WithInsecure(), grpc.WithBlock())
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	for _, service := range []string{"", "gqldb-test"} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err, service)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status, service)
	}

	_, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRun(t *testing.T) {
	t.Run("fails when an address is taken", func(t *testing.T) {
		taken, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer taken.Close()

		cfg := config.Default()
		cfg.TCP.Address = taken.Addr().String()
		srv := server.New(startDatabase(t), logging.Discard())
		err = srv.Run(context.Background(), cfg)
		assert.ErrorContains(t, err, "listen tcp")
	})

	t.Run("serves every protocol until cancelled", func(t *testing.T) {
		cfg := config.Default()
		cfg.Protocols = []string{config.ProtocolTCP, config.ProtocolWS}
		cfg.TCP.Address = "127.0.0.1:0"
		cfg.WS.Address = "127.0.0.1:0"
		cfg.Health = config.HealthConfig{Enabled: true, Address: "127.0.0.1:0"}

		srv := server.New(startDatabase(t), logging.Discard())
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx, cfg) }()
		time.Sleep(50 * time.Millisecond)
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return")
		}
	})
}
