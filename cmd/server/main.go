package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/config"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/api/handler"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/api/middleware"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/api/router"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/cache"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/database"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/jwt"
	applogger "github.com/Yojipoji28/control-escolar-desit-api/pkg/logger"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "ruta del archivo de configuración")
	flag.Parse()

	// 1. config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al iniciar el logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("iniciando servidor",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database + migrations
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("no se pudo obtener sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("error en las migraciones", zap.Error(err))
	}

	// 4. Redis is optional; revocation and throttling fall back to process memory
	var (
		blacklist service.TokenBlacklist
		limiter   middleware.RateLimiter
	)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis no disponible, se usa memoria local para sesiones revocadas y límites", zap.Error(err))
		blacklist = cache.NewBlacklist(5 * time.Minute)
		limiter = cache.NewRateLimiter(time.Minute)
	} else {
		blacklist = rdb
		limiter = rdb
	}

	// 5. wiring: repository -> service -> handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, blacklist, logger)
	h := handler.NewHandler(svc, logger)

	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 30*time.Second)
	if err := svc.Administrador.EnsureBootstrap(bootstrapCtx, cfg.Bootstrap); err != nil {
		logger.Fatal("no se pudo crear el administrador inicial", zap.Error(err))
	}
	cancelBootstrap()

	engine := router.Setup(cfg, h, jwtMgr, blacklist, limiter, logger)

	// 6. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP escuchando", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error del servidor HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("apagando servidor", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error al apagar el servidor", zap.Error(err))
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("error al cerrar la base de datos", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info("servidor detenido")
}
