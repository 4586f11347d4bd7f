// Package server wires repositories, services and handlers into an HTTP
// server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"toolbox-api/config"
	httpLayer "toolbox-api/http"
	"toolbox-api/repository"
	"toolbox-api/service"
)

// Server owns the HTTP server and the resources behind it.
type Server struct {
	httpServer *http.Server
	limiter    *httpLayer.RateLimiter
	closers    []func() error
}

// New builds the server. With a Redis address it checks connectivity and
// keeps history and memoized results in Redis; otherwise in memory.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	s := &Server{}

	var (
		cache   repository.CacheRepository
		history repository.HistoryRepository
	)
	if cfg.Redis.Addr != "" {
		redisCache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
			TTL:      cfg.Redis.TTL,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisCache.Ping(pingCtx); err != nil {
			redisCache.Close()
			return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Redis.Addr, err)
		}
		s.closers = append(s.closers, redisCache.Close)
		cache = redisCache
		history = repository.NewHistoryRepositoryRedis(redisCache.Client(), cfg.Redis.Prefix)
		log.Printf("Using redis at %s", cfg.Redis.Addr)
	} else {
		cache = repository.NewMemoryCache()
		history = repository.NewHistoryRepositoryMemory()
		log.Println("Redis not configured, keeping history in memory")
	}

	s.limiter = httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)

	handlers := httpLayer.Handlers{
		APR:      httpLayer.NewAPRHandler(service.NewAPRService(cache, cfg.PeriodsPerYear)),
		Loan:     httpLayer.NewLoanHandler(service.NewLoanService(cache), cfg.Currency),
		FixedFee: httpLayer.NewFixedFeeHandler(service.NewFixedFeeService(history), cfg.Currency),
		Tools:    httpLayer.NewToolsHandler(),
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.NewRouter(handlers, s.limiter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.close()

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-ctx.Done():
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	log.Println("Server exited")
	return nil
}

func (s *Server) close() {
	s.limiter.Stop()
	for _, c := range s.closers {
		if err := c(); err != nil {
			log.Printf("Warning: failed to release resource: %v", err)
		}
	}
}
