package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-api-notifications/internal/config"
	jwtinfra "github.com/go-api-notifications/internal/infrastructure/jwt"
	"github.com/go-api-notifications/internal/infrastructure/logger"
	"github.com/go-api-notifications/internal/infrastructure/postgres"
	transporthttp "github.com/go-api-notifications/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found, reading from environment")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	// Token verification is optional; writes are open when no key is configured.
	var jwtProvider *jwtinfra.Provider
	if cfg.JWTPublicKeyPath != "" {
		p, err := jwtinfra.NewProvider(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("jwt provider init failed")
		}
		jwtProvider = p
	} else {
		log.Warn().Msg("JWT_PUBLIC_KEY_PATH not set, write endpoints are unauthenticated")
	}

	deps := &transporthttp.Deps{
		NotificationStore: postgres.NewNotificationRepo(db),
		ChannelStore:      postgres.NewChannelRepo(db),
		MethodStore:       postgres.NewMethodRepo(db),
		JWTProvider:       jwtProvider,
		Logger:            log,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.AppPort).Str("env", cfg.AppEnv).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
