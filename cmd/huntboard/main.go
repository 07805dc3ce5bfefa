// huntboard — job-application tracker API
//
// REST backend for the HuntBoard kanban client:
//   - /api/auth/*         — register, login, me
//   - /api/applications/* — ownership-scoped CRUD over the board records
//
// Card changes are published to Redis (when configured) for SSE fan-out.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ADITYA-lab-star/HuntBoard/internal/auth"
	"github.com/ADITYA-lab-star/HuntBoard/internal/config"
	"github.com/ADITYA-lab-star/HuntBoard/internal/db"
	"github.com/ADITYA-lab-star/HuntBoard/internal/events"
	"github.com/ADITYA-lab-star/HuntBoard/internal/tracker"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[huntboard] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── MongoDB ──────────────────────────────────────────────────────────────
	log.Println("[huntboard] Connecting to MongoDB…")
	client, err := db.NewMongoClient(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("[huntboard] MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	log.Println("[huntboard] MongoDB connected ✓")

	database := client.Database("huntboard")

	appStore := tracker.NewMongoStore(database)
	if err := appStore.Migrate(ctx); err != nil {
		log.Fatalf("[huntboard] Migrate applications: %v", err)
	}
	userStore := auth.NewMongoUserStore(database)
	if err := userStore.Migrate(ctx); err != nil {
		log.Fatalf("[huntboard] Migrate users: %v", err)
	}

	// ── Redis (optional) ─────────────────────────────────────────────────────
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		log.Println("[huntboard] Connecting to Redis…")
		rdb, err = db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("[huntboard] Redis: %v", err)
		}
		defer rdb.Close()
		log.Println("[huntboard] Redis connected ✓")
	} else {
		log.Println("[huntboard] REDIS_URL not set — card events disabled")
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	gate := auth.NewGate(tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", rootHandler)
	mux.HandleFunc("GET /health", healthHandler)

	auth.NewHandler(userStore, tokens).RegisterRoutes(mux, gate)

	svc := tracker.NewService(appStore, events.NewPublisher(rdb))
	tracker.NewHandler(svc).RegisterRoutes(mux, gate)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      withCORS(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[huntboard] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[huntboard] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[huntboard] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[huntboard] Shutdown error: %v", err)
	}
	log.Println("[huntboard] Stopped.")
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "Job Application Tracker API is running")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "huntboard",
		"version": version,
	})
}

// withCORS allows the browser client to call the API from any origin.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
