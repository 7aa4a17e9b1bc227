package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/project/library/config"
	"github.com/project/library/internal/controller"
	"github.com/project/library/internal/usecase/library"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const shutDownSeconds = 10

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := setupTracing(cfg.Observability.JaegerURL, logger)
	if err != nil {
		logger.Error("can not set up tracing", zap.Error(err))
		return
	}

	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("can not open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return
	}
	defer st.close()

	stopOutbox, err := runOutbox(ctx, cfg, logger, st)
	if err != nil {
		logger.Error("can not start outbox", zap.Error(err))
		return
	}

	useCases := library.New(
		layerLogger(cfg.Log.LogUseCase, logger),
		st.categories,
		st.books,
		st.rentals,
		st.outbox,
		st.transactor,
		library.WithPastDueDatePolicy(cfg.Rental.RejectPastDueDate),
	)

	logController := layerLogger(cfg.Log.LogController, logger)
	ctrl := controller.New(logController, useCases, useCases, useCases, st.pinger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	ctrl.Register(e)

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	grpc_health_v1.RegisterHealthServer(grpcServer, controller.NewHealthServer(logController, st.pinger))
	reflection.Register(grpcServer)

	metricsServer := newMetricsServer(cfg.Observability.MetricsPort)

	go runRest(e, cfg, logger)
	go runGrpc(grpcServer, cfg, logger)
	go runMetrics(metricsServer, logger)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
	defer shutdownCancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}
	grpcServer.GracefulStop()
	if err = metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", zap.Error(err))
	}

	stopOutbox()

	if err = shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracer provider shutdown error", zap.Error(err))
	}
}

func runRest(e *echo.Echo, cfg *config.Config, logger *zap.Logger) {
	port := ":" + cfg.HTTP.Port
	logger.Info("http server listening at port", zap.String("port", port))

	if err := e.Start(port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server listen error", zap.Error(err))
	}
}

func runGrpc(s *grpc.Server, cfg *config.Config, logger *zap.Logger) {
	port := ":" + cfg.GRPC.Port
	lis, err := net.Listen("tcp", port)

	if err != nil {
		logger.Error("can not open tcp socket", zap.Error(err))
		return
	}

	logger.Info("grpc server listening at port", zap.String("port", port))

	if err = s.Serve(lis); err != nil {
		logger.Error("grpc server listen error", zap.Error(err))
	}
}
