package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "github.com/rs/cors"

    "github.com/Aayush-pixel29/mgnrega-dashboard/cache"
    "github.com/Aayush-pixel29/mgnrega-dashboard/config"
    "github.com/Aayush-pixel29/mgnrega-dashboard/handlers"
    "github.com/Aayush-pixel29/mgnrega-dashboard/jobs"
    "github.com/Aayush-pixel29/mgnrega-dashboard/metrics"
    "github.com/Aayush-pixel29/mgnrega-dashboard/middleware"
    "github.com/Aayush-pixel29/mgnrega-dashboard/store"
)

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }
    cfg := config.Load()

    // Bootstrap is the one failure path that stops the process: a
    // broken schema cannot be papered over with fallbacks.
    log.Println("Initializing PostgreSQL database...")
    db, err := config.InitDBWithRetry(cfg)
    if err != nil {
        log.Fatalf("Failed to initialize PostgreSQL: %v", err)
    }
    defer db.Close()

    pg := store.NewPostgres(db)
    bootCtx, bootCancel := context.WithTimeout(context.Background(), 2*time.Minute)
    if err := pg.Bootstrap(bootCtx); err != nil {
        log.Fatalf("Bootstrap failed: %v", err)
    }
    bootCancel()

    m := metrics.New()

    refresher := jobs.NewRefresher(pg, m)
    refresher.RunOnce(context.Background())
    refresher.Start()
    defer refresher.Stop()

    limiter := middleware.NewRateLimiter()
    limiter.OnDeny = m.IncRateLimited
    limiter.StartSweeper()
    defer limiter.Stop()

    h := handlers.New(pg, cache.New(), m)

    r := mux.NewRouter()

    corsHandler := cors.New(cors.Options{
        AllowedOrigins: []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "https://mgnrega-dashboard.vercel.app",
        },
        AllowedMethods: []string{"GET", "POST", "OPTIONS"},
        AllowedHeaders: []string{
            "Accept",
            "Content-Type",
            "X-Requested-With",
            "X-Request-ID",
            "Origin",
        },
        ExposedHeaders: []string{
            "Content-Length",
            "Content-Type",
            "X-Request-ID",
        },
        MaxAge: 86400,
    })

    r.Use(middleware.RequestIDMiddleware)
    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(middleware.MetricsMiddleware(m))

    // Only API routes are rate limited; static assets and /metrics
    // bypass the limiter.
    api := r.PathPrefix("/api").Subrouter()
    api.Use(limiter.Middleware)
    registerRoutes(api, h)
    log.Println("Routes registered successfully")

    r.Handle("/metrics", promhttp.Handler()).Methods("GET")
    r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + cfg.Port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)
    go func() {
        log.Printf("Starting server on port %s...", cfg.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            serverErrors <- err
        }
    }()

    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(api *mux.Router, h *handlers.Handler) {
    api.HandleFunc("/health", h.GetHealth).Methods("GET")
    api.HandleFunc("/districts", h.GetDistricts).Methods("GET")
    api.HandleFunc("/location-to-district", h.LocationToDistrict).Methods("POST")
    api.HandleFunc("/performance/{districtCode}", h.GetPerformance).Methods("GET")
    api.HandleFunc("/trends/{districtCode}", h.GetTrends).Methods("GET")
}
