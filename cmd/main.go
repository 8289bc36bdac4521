package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hvac_assistant/internal/handlers"
	"hvac_assistant/internal/logger"
	"hvac_assistant/internal/repository"
	"hvac_assistant/internal/repository/db"
	"hvac_assistant/internal/server"
	"hvac_assistant/internal/service"

	"github.com/spf13/viper"
)

// @title        HVAC AI Assistant API
// @version      1.0
// @description  Natural-language HVAC commands rendered as visual components.
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load config.yml; env vars (HVAC_*) override it
	cfgErr := loadConfig()

	log := logger.Get(viper.GetString("log.level"))
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Config{
		SigningKey:      viper.GetString("auth.signing_key"),
		TokenTTL:        viper.GetDuration("auth.token_ttl"),
		ProcessingDelay: viper.GetDuration("assistant.processing_delay"),
		MaxSessions:     viper.GetInt("assistant.max_sessions"),
		SessionTTL:      viper.GetDuration("assistant.session_ttl"),
	}, log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Janitor.Run(ctx, viper.GetDuration("assistant.janitor_interval"))

	srv := server.New(server.Options{
		WriteTimeout: viper.GetDuration("http.write_timeout"),
		IdleTimeout:  viper.GetDuration("http.idle_timeout"),
	})
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("db.path", "hvac.db")
	viper.SetDefault("auth.token_ttl", time.Hour)
	viper.SetDefault("assistant.processing_delay", 1500*time.Millisecond)
	viper.SetDefault("assistant.max_sessions", 1000)
	viper.SetDefault("assistant.session_ttl", 30*time.Minute)
	viper.SetDefault("assistant.janitor_interval", time.Minute)

	viper.SetEnvPrefix("HVAC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening sqlite", "path", dbPath)
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_server_starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then stops background work and drains requests.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
