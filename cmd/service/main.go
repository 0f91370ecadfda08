package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "lavka/internal/app"
	"lavka/internal/handlers/rest/courier_get"
	"lavka/internal/handlers/rest/courier_meta_info_get"
	"lavka/internal/handlers/rest/couriers_assignments_get"
	"lavka/internal/handlers/rest/couriers_get"
	"lavka/internal/handlers/rest/couriers_post"
	"lavka/internal/handlers/rest/healthcheck_head"
	"lavka/internal/handlers/rest/order_get"
	"lavka/internal/handlers/rest/orders_complete_post"
	"lavka/internal/handlers/rest/orders_get"
	"lavka/internal/handlers/rest/orders_post"
	"lavka/internal/handlers/rest/ping_get"
	"lavka/internal/pkg/config"
	"lavka/internal/pkg/dotenv"
	"lavka/internal/pkg/middlewares/graceful_shutdown"
	"lavka/internal/pkg/middlewares/metrics"
	"lavka/internal/pkg/middlewares/rate_limiter"
	"lavka/internal/pkg/middlewares/request_id"
	"lavka/internal/pkg/middlewares/timeout"
	"lavka/internal/pkg/postgres"
	"lavka/pkg/logger"
	"lavka/pkg/logger/zap_adapter"
	"lavka/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting lavka application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	// фоновые задачи живут на ctx, пул закрывается только после их остановки
	defer func() {
		stop()
		businessApp.BackgroundWorkers.Wait()
	}()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	baseContext := func(_ net.Listener) context.Context {
		return ongoingCtx
	}

	servers := []*http.Server{{
		Addr:        fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:     initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: baseContext,

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}}
	if cfg.Server.PprofEnabled {
		servers = append(servers, &http.Server{
			Addr:        fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler:     initPprofRouter(&isShuttingDown, pool),
			BaseContext: baseContext,

			// профили CPU пишутся дольше обычного запроса
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		})
	}

	serverErr := make(chan error, len(servers))
	for _, server := range servers {
		go listen(runLog, server, serverErr)
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return err
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	forced := false
	for _, server := range servers {
		if err := server.Shutdown(shutdownCtx); err != nil {
			forced = true
			runLog.Error("server shutdown error",
				logger.NewField("addr", server.Addr),
				logger.NewField("error", err),
			)
		}
	}

	stopOngoingGracefully()
	if forced {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func listen(log logger.Logger, server *http.Server, errs chan<- error) {
	log.Info("server starting",
		logger.NewField("addr", server.Addr),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errs <- fmt.Errorf("server %s: %w", server.Addr, err)
	}
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	limiter := token_bucket.NewKeyedLimiter(nil, token_bucket.Config{
		Capacity:   cfg.RateLimiterBurst,
		RefillRate: float64(cfg.RateLimiterQPS),
		TTL:        cfg.RateLimiterClientTTL,
	})
	rate_limiter.RegisterTrackedClients(limiter.Len)

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// статические пути регистрируются раньше шаблонов с id
	router.Handle("/couriers", couriers_post.New(log, app.ServiceCourier)).Methods("POST")
	router.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers/assignments", couriers_assignments_get.New(log, app.ServiceAssignment)).Methods("GET")
	router.Handle("/couriers/meta-info/{courier_id}", courier_meta_info_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers/{courier_id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")

	router.Handle("/orders", orders_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/complete", orders_complete_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/orders/{order_id}", order_get.New(log, app.ServiceOrder)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
