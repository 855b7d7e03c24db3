package middleware

import (
	"fmt"
	"net"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shyptr/gqldb/database"
	"github.com/shyptr/gqldb/server"
	"github.com/sirupsen/logrus"
)

// Recovery turns a panic in the rest of the chain into an error response.
func Recovery() server.HandlerFunc {
	return func(ctx *server.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := ctx.Logger
				var brokenPipe bool
				if ne, ok := err.(*net.OpError); ok {
					if se, ok := ne.Err.(*os.SyscallError); ok {
						if strings.Contains(strings.ToLower(se.Error()), "broken pipe") || strings.Contains(strings.ToLower(se.Error()), "connection reset by peer") {
							brokenPipe = true
						}
					}
				}
				if brokenPipe {
					logger.WithField("error", err).Warn("connection lost")
				} else {
					const size = 64 << 10
					buf := make([]byte, size)
					buf = buf[:runtime.Stack(buf, false)]
					logger.WithField("error", err).WithField("request", ctx.Request).Errorf("[Recovery] panic recovered\n%s", buf)
				}
				ctx.Result = database.Response{Err: fmt.Errorf("internal error: %v", err)}
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}

func Logger() server.HandlerFunc {
	return func(ctx *server.Context) {
		startTime := time.Now()
		ctx.Next()
		entry := ctx.Logger.WithFields(logrus.Fields{
			"latency": time.Since(startTime),
			"bytes":   len(ctx.Request),
		})
		if ctx.Result.Err != nil {
			entry.WithError(ctx.Result.Err).Info("request failed")
			return
		}
		operation := "definitions"
		if ctx.Result.Document != nil && len(ctx.Result.Document.Operations()) > 0 {
			operation = "query"
		}
		entry.WithField("operation", operation).Info("request")
	}
}
