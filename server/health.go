package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServeHealth runs the standard gRPC health service. Both the empty service
// name and the configured one report SERVING until ctx is done.
func (s *Server) ServeHealth(ctx context.Context, ln net.Listener) error {
	srv := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(s.opts.healthService, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	stop := context.AfterFunc(ctx, func() {
		hs.Shutdown()
		srv.GracefulStop()
	})
	defer stop()

	if err := srv.Serve(ln); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("server: health: %w", err)
	}
	return nil
}
