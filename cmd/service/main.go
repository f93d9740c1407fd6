package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messaging-service/internal/client/centrifugo"
	"github.com/s21platform/messaging-service/internal/config"
	api "github.com/s21platform/messaging-service/internal/generated"
	"github.com/s21platform/messaging-service/internal/infra"
	"github.com/s21platform/messaging-service/internal/pkg/jwt"
	"github.com/s21platform/messaging-service/internal/pkg/tx"
	"github.com/s21platform/messaging-service/internal/pkg/validator"
	db "github.com/s21platform/messaging-service/internal/repository/postgres"
	"github.com/s21platform/messaging-service/internal/rest"
	"github.com/s21platform/messaging-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	vldtr := validator.New()
	accessVerifier := jwt.New(cfg.Auth.AccessSecret)
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)

	messagingService := service.New(dbRepo)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(cfg.Service.Name, grpc_health_v1.HealthCheckResponse_SERVING)

	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	handler := rest.New(messagingService, centrifugeClient, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbRepo.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	router.Group(func(r chi.Router) {
		r.Use(infra.MetricsHTTP)
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})
		r.Use(func(next http.Handler) http.Handler {
			return infra.AuthInterceptorHTTP(next, accessVerifier)
		})
		r.Use(func(next http.Handler) http.Handler {
			return tx.TxMiddlewareHTTP(dbRepo)(next)
		})

		api.HandlerWithOptions(handler, api.ChiServerOptions{
			BaseURL:          "/api/v1",
			BaseRouter:       r,
			ErrorHandlerFunc: rest.WriteBindError,
		})
	})

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	logger.Info(fmt.Sprintf("messaging service listening on :%s", cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
