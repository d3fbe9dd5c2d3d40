// Package main is the entry point of the validation gateway service. It loads
// configuration (env + optional YAML endpoints file), dials the auth and department
// backends (adapters/grpcclient), picks the result cache (adapters/memcache by
// default, adapters/myredis when REDIS_ADDR is set), builds the gateway
// (service.NewGateway) and serves the HTTP surface (handlers) on SERVICE_PORT_HTTP.
// On SIGINT/SIGTERM it shuts the HTTP server down gracefully with a 10s timeout.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrvalidation/adapters/grpcclient"
	"hrvalidation/adapters/memcache"
	"hrvalidation/adapters/myredis"
	"hrvalidation/domain"
	"hrvalidation/handlers"
	"hrvalidation/interfaces"
	"hrvalidation/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting hrvalidation service")

	cfg, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", cfg.HTTPPort,
		"auth_addr", cfg.Auth.Address(),
		"department_addr", cfg.Department.Address(),
		"validation_enabled", cfg.EnableValidation,
		"cache_ttl", cfg.CacheTTL,
	)

	authClient, err := grpcclient.NewAuthClient(cfg.Auth, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create auth client", "err", err)
		os.Exit(1)
	}
	defer authClient.Close()

	departmentClient, err := grpcclient.NewDepartmentClient(cfg.Department, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create department client", "err", err)
		os.Exit(1)
	}
	defer departmentClient.Close()

	var cache interfaces.ResultCache
	if cfg.RedisAddr != "" {
		redisClient, err := myredis.NewRedisUniversalClient(cfg.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis, using shared result cache")
		cache = myredis.NewCache(redisClient, "validation")
	} else {
		cache = memcache.New(func() time.Time { return time.Now().UTC() })
	}

	gateway := service.NewGateway(
		map[domain.ServiceName]interfaces.Transport{
			domain.ServiceAuth:       authClient,
			domain.ServiceDepartment: departmentClient,
		},
		cache,
		service.GatewayConfig{
			Enabled:     cfg.EnableValidation,
			MaxAttempts: cfg.MaxRetries,
			RetryDelay:  cfg.RetryDelay,
			CacheTTL:    cfg.CacheTTL,
		},
		logger,
	)

	kindToService := map[domain.EntityKind]domain.ServiceName{
		domain.KindEmployee:      domain.ServiceAuth,
		domain.KindUser:          domain.ServiceAuth,
		domain.KindBranch:        domain.ServiceAuth,
		domain.KindDepartment:    domain.ServiceDepartment,
		domain.KindSubDepartment: domain.ServiceDepartment,
	}
	httpServer := handlers.NewHTTPServer(gateway, authClient, kindToService, logger)

	e := echo.New()
	e.HideBanner = true
	service.RegisterErrorHandler(e, logger)
	handlers.RegisterRoutes(e, httpServer)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
