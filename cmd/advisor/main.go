package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/AlibekovAA/course-advisor/backend/internal/auth/http"
	"github.com/AlibekovAA/course-advisor/backend/internal/auth/service"
	cataloghttp "github.com/AlibekovAA/course-advisor/backend/internal/catalog/http"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/bootstrap"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/course-advisor/backend/internal/common/crypto"
	commonhttp "github.com/AlibekovAA/course-advisor/backend/internal/common/http"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/jwtverify"
	srv "github.com/AlibekovAA/course-advisor/backend/internal/common/server"
	rechttp "github.com/AlibekovAA/course-advisor/backend/internal/recommendation/http"
	recservice "github.com/AlibekovAA/course-advisor/backend/internal/recommendation/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.NewAdvisorApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start advisor: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	log := app.Log
	cfg := app.Config

	issuer := service.NewTokenIssuer(cfg.JWTSecret, commoncrypto.NewUUIDGenerator(), clock.NewRealClock())
	authService := service.NewAuthService(app.Store, commoncrypto.NewBcryptHasher(), issuer, cfg.AccessTokenTTL, log)
	resolver := service.NewSessionResolver(issuer, app.Store, log)
	requireSession := jwtverify.Middleware(resolver, commonhttp.NewErrorHandler(log))

	authHandler := authhttp.NewHandler(authService, requireSession, cfg, log)
	catalogHandler := cataloghttp.NewHandler(app.Store, cfg, log)
	recHandler := rechttp.NewHandler(recservice.NewService(app.Store, log), requireSession, cfg, log)

	mux := http.NewServeMux()
	mux.Handle("/token", authHandler)
	mux.Handle("/token/", authHandler)
	mux.Handle("/users/me", authHandler)
	mux.Handle("/users/me/", authHandler)
	mux.Handle("/courses", catalogHandler)
	mux.Handle("/courses/", catalogHandler)
	mux.Handle("/recommendations", recHandler)
	mux.Handle("/recommendations/", recHandler)
	mux.HandleFunc("/health", commonhttp.HealthHandler())
	mux.Handle("/metrics", promhttp.Handler())

	rateLimiter := commonhttp.NewPathRateLimiter("/token", "/token/")
	rateLimiter.StartCleanup(ctx)

	handler := commonhttp.BuildBaseHandler(log, mux, rateLimiter.Middleware)

	server := srv.NewAdvisorServer(cfg, handler)

	srv.Run(server, log, "advisor", func(context.Context) error {
		log.Info("advisor: stopping background workers")
		cancel()
		return nil
	})
}
