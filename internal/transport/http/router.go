package http

import (
	"net/http"

	"github.com/go-api-notifications/internal/application/channel"
	"github.com/go-api-notifications/internal/application/method"
	"github.com/go-api-notifications/internal/application/notification"
	"github.com/go-api-notifications/internal/config"
	jwtinfra "github.com/go-api-notifications/internal/infrastructure/jwt"
	"github.com/go-api-notifications/internal/transport/http/handler"
	appmiddleware "github.com/go-api-notifications/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	NotificationStore NotificationStore
	ChannelStore      ChannelStore
	MethodStore       MethodStore
	JWTProvider       *jwtinfra.Provider
	Logger            zerolog.Logger
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(appmiddleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Write endpoints require a bearer token only when a verifier key is
	// configured; reads are always open.
	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second with a burst of 10 on write endpoints.
	writeRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	notifSvc := notification.NewService(deps.NotificationStore,
		deps.Logger.With().Str("component", "notification").Logger())
	chanSvc := channel.NewService(deps.ChannelStore,
		deps.Logger.With().Str("component", "channel").Logger())
	methodSvc := method.NewService(deps.MethodStore, chanSvc, notifSvc,
		deps.Logger.With().Str("component", "method").Logger())

	healthH := handler.NewHealthHandler()
	notifH := handler.NewNotificationHandler(notifSvc)
	chanH := handler.NewChannelHandler(chanSvc)
	methodH := handler.NewMethodHandler(methodSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.Get("/notifications", notifH.List)
		r.Get("/notifications/{id}", notifH.Get)
		r.Get("/notification-channels", chanH.List)
		r.Get("/notification-channels/{id}", chanH.Get)
		r.Get("/notification-methods", methodH.List)
		r.Get("/notification-methods/{id}", methodH.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Use(writeRL.Limit)

			r.Post("/notifications", notifH.Create)
			r.Put("/notifications/{id}", notifH.Update)
			r.Delete("/notifications/{id}", notifH.Delete)

			r.Post("/notification-channels", chanH.Create)
			r.Put("/notification-channels/{id}", chanH.Update)
			r.Delete("/notification-channels/{id}", chanH.Delete)

			r.Post("/notification-methods", methodH.Create)
			r.Put("/notification-methods/{id}", methodH.Update)
			r.Delete("/notification-methods/{id}", methodH.Delete)
		})
	})

	return r
}
