package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/repository"
	"fintrack/internal/repository/db"
	"fintrack/internal/server"
	"fintrack/internal/service"
	"fintrack/internal/session"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultSessionTTL = 12 * time.Hour

func main() {
	// optional .env, then config.yml; env vars win
	_ = godotenv.Load()

	log := logger.Get(logger.InfoLevel)

	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos)
	sessions := session.NewStore(sessionTTL())
	codec := session.NewCodec(signingKey(log), sessionTTL())
	apiHandler := handlers.NewHandler(services, sessions, codec, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvPrefix("fintrack")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "fintrack.db")
		dbPath = "fintrack.db"
	}
	return db.InitDB(dbPath)
}

func sessionTTL() time.Duration {
	if ttl := viper.GetDuration("session.ttl"); ttl > 0 {
		return ttl
	}
	return defaultSessionTTL
}

func signingKey(log *logger.Logger) string {
	key := viper.GetString("session.signing_key")
	if key == "" {
		log.Fatalw("session.signing_key not set in config")
	}
	return key
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
