// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/floriography/tussie/internal/auth"
	"github.com/floriography/tussie/internal/cache"
	"github.com/floriography/tussie/internal/database"
	"github.com/floriography/tussie/internal/handlers"
	"github.com/floriography/tussie/internal/middleware"
)

func main() {
	auth.Init()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	// Postgres and Redis are both optional: games run fully in memory, and
	// persistence layers guard against nil clients.
	if os.Getenv("PG_HOST") != "" {
		database.ConnectDB()
	} else {
		logger.Warn("PG_HOST not set; running without result persistence or accounts")
	}
	if err := cache.ConnectRedis(); err != nil {
		logger.Warnf("Redis unavailable, action history disabled: %v", err)
	}

	srv := handlers.NewGameServer()

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.LogMiddleware(logger))

	// user endpoints
	r.Post("/user/create", handlers.CreateUserHandler)
	r.Post("/user/login", handlers.LoginHandler)
	r.Post("/user/claim", handlers.ClaimEphemeralHandler)

	// game endpoints
	r.Post("/game/create", srv.CreateGameHandler)
	r.Get("/game/ws/{game_id}", handlers.GameWSHandler(logger, srv))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
