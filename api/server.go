package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/cache"
	"github.com/francislub/busines-consultant-sub001/config"
	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(
	db database.Database,
	cfg map[string]string,
	notifier *services.Notifier,
	imageStore *services.ImageStore,
	viewCache *cache.ViewCache,
) (Server, error) {
	port := config.GetString(cfg, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router, err := newRouter(db, cfg, notifier, imageStore, viewCache, startupTime)
	if err != nil {
		return Server{}, err
	}

	readTimeout := time.Duration(config.GetInt(cfg, "READ_TIMEOUT_SECONDS", 60)) * time.Second
	writeTimeout := time.Duration(config.GetInt(cfg, "WRITE_TIMEOUT_SECONDS", 60)) * time.Second
	idleTimeout := time.Duration(config.GetInt(cfg, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

func newRouter(
	db database.Database,
	cfg map[string]string,
	notifier *services.Notifier,
	imageStore *services.ImageStore,
	viewCache *cache.ViewCache,
	startupTime time.Time,
) (*chi.Mux, error) {
	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(config.GetString(cfg, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	verifier, err := newSessionVerifier(cfg)
	if err != nil {
		return nil, err
	}

	sessionSecret := config.GetString(cfg, "SESSION_SECRET", "")
	sessionTTL := time.Duration(config.GetInt(cfg, "SESSION_TTL_HOURS", 24)) * time.Hour
	_, localAuth := verifier.(jwtVerifier)

	handlers := initializeHandlers(db, notifier, imageStore, viewCache, sessionSecret, sessionTTL, localAuth, startupTime)
	authMiddleware := newAuthMiddleware(verifier)

	setupRoutes(chiRouter, handlers, authMiddleware, viewCache)

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
