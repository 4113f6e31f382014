package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fishburger-backend/internal/config"
	httpctrl "fishburger-backend/internal/controllers/http"
	"fishburger-backend/internal/infra/rabbitmq"
	"fishburger-backend/internal/repository"
	"fishburger-backend/internal/repository/jsonfile"
	mysqlrepo "fishburger-backend/internal/repository/mysql"
	"fishburger-backend/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	var (
		orderRepo     repository.OrderRepository
		analyticsRepo repository.AnalyticsRepository
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMySQL:
		db, err := mysqlrepo.Open(cfg.MySQLDSN())
		if err != nil {
			return err
		}
		orderRepo = mysqlrepo.NewOrderRepository(db)
		analyticsRepo = mysqlrepo.NewAnalyticsRepository(db)
	default:
		store, err := jsonfile.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		orderRepo = store.Orders
		analyticsRepo = store.Analytics
	}

	var publisher rabbitmq.PublisherInterface
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			return err
		}
		defer p.Close()
		publisher = p
	}

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.RedisHost + ":6379",
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	}

	analyticsSvc := services.NewAnalyticsService(orderRepo, analyticsRepo, logger)
	orderSvc := services.NewOrderService(orderRepo, analyticsSvc, publisher, logger)
	chefSvc := services.NewChefService()

	handler := httpctrl.NewHandler(orderSvc, analyticsSvc, chefSvc, rdb, logger)

	gin.SetMode(gin.ReleaseMode)
	r := httpctrl.NewRouter(handler, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
