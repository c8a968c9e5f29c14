package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/hotel_menu/internal/config"
	"github.com/Skotchmaster/hotel_menu/internal/db"
	"github.com/Skotchmaster/hotel_menu/internal/events"
	"github.com/Skotchmaster/hotel_menu/internal/httpserver"
	"github.com/Skotchmaster/hotel_menu/internal/logging"
	adminmw "github.com/Skotchmaster/hotel_menu/internal/middleware/admin"
	loggingmw "github.com/Skotchmaster/hotel_menu/internal/middleware/logging"
	"github.com/Skotchmaster/hotel_menu/internal/repo"
	"github.com/Skotchmaster/hotel_menu/internal/search"
	"github.com/Skotchmaster/hotel_menu/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustSecretWhen(cfg.Admin.RequireToken, cfg.Admin.JWTSecret, "ADMIN_JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err == nil {
		err = db.Migrate(ctx, gdb)
	}
	cancel()
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	producer := events.New(cfg.KafkaBrokers)
	defer producer.Close()

	r := repo.New(gdb)

	var index search.Index = search.DBIndex{Repo: r}
	if cfg.ESURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		es, err := search.NewES(ctx, search.ESConfig{
			URL:      cfg.ESURL,
			User:     cfg.ESUser,
			Password: cfg.ESPassword,
			Index:    cfg.ESIndex,
		})
		cancel()
		if err != nil {
			logger.Warn("elasticsearch_unavailable", "url", cfg.ESURL, "error", err)
		} else {
			index = es
		}
	}

	menu := &service.MenuService{Repo: r, Index: index}
	if cfg.ESURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if n, err := menu.Reindex(ctx); err != nil {
			logger.Warn("menu_reindex_error", "indexed", n, "error", err)
		} else {
			logger.Info("menu_reindexed", "indexed", n)
		}
		cancel()
	}

	history := &service.HistoryService{Repo: r}
	admin := &service.AdminService{Repo: r, JWTSecret: cfg.Admin.JWTSecret, TokenTTL: cfg.Admin.TokenTTL}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if seeded, err := admin.Seed(seedCtx, cfg.Admin.SeedUsername, cfg.Admin.SeedPassword); err != nil {
		logger.Error("admin_seed_error", "error", err)
	} else if seeded {
		logger.Info("admin_seeded", "username", cfg.Admin.SeedUsername)
	}
	seedCancel()

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSOrigins, AllowCredentials: true}))
	} else {
		e.Use(echomw.CORS())
	}

	deps := &httpserver.Deps{
		Menu:    &httpserver.MenuHTTP{Svc: menu, Events: producer},
		Cart:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}, Events: producer},
		Orders:  &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Archive: history}, Events: producer},
		History: &httpserver.HistoryHTTP{Svc: history, Events: producer},
		Admin:   &httpserver.AdminHTTP{Svc: admin},
		Ready: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if cfg.Admin.RequireToken {
		deps.AdminGuard = adminmw.RequireToken(cfg.Admin.JWTSecret)
	}
	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_error", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db_close_error", "error", err)
	}

	logger.Info("stopped")
}
