package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ben-haim/Nxt2Monitor/internal/transport"
)

type servers struct {
	wg sync.WaitGroup
}

func (s *servers) wait() {
	s.wg.Wait()
}

// startServers serves gRPC health on grpcAddr and the REST gateway plus
// /metrics on restAddr until ctx is done.
func startServers(ctx context.Context, grpcAddr, restAddr string, reporter transport.StateReporter, logger *zap.Logger) (*servers, error) {
	grpcZap.ReplaceGrpcLoggerV2(logger)

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewHealthHandler(reporter))

	socket, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", grpcAddr, err)
	}

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, grpcAddr, opts); err != nil {
		_ = socket.Close()
		return nil, fmt.Errorf("register health gateway: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:              restAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	s := &servers{}
	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		logger.Info("Starting gRPC server", zap.String("addr", grpcAddr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		defer s.wg.Done()
		logger.Info("Starting HTTP server", zap.String("addr", restAddr))
		if serveErr := httpServer.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(serveErr))
		}
	}()
	go func() {
		defer s.wg.Done()
		<-ctx.Done()
		logger.Info("Shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
		grpcServer.GracefulStop()
	}()
	return s, nil
}
