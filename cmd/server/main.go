package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql"

	"github.com/maxikash/condonaciones-api/internal/config"
	"github.com/maxikash/condonaciones-api/internal/handler"
	"github.com/maxikash/condonaciones-api/internal/integrations/estadocuenta"
	"github.com/maxikash/condonaciones-api/internal/repository"
	"github.com/maxikash/condonaciones-api/internal/service"
	"github.com/maxikash/condonaciones-api/pkg/response"
)

func main() {
	// Local overrides before viper reads the environment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := initLogger(cfg)

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize repository and external client
	condonacionRepo := repository.NewCondonacionRepository(db)
	estadoCuentaClient := estadocuenta.NewHTTPClient(cfg, log)

	// Initialize service and handlers
	condonacionService := service.NewCondonacionService(condonacionRepo, estadoCuentaClient, log)
	condonacionHandler := handler.NewCondonacionHandler(condonacionService, log)
	healthHandler := handler.NewHealthHandler(db, cfg.Health.Timeout)

	// Setup routes
	router := setupRoutes(condonacionHandler, healthHandler, cfg, log)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

func initLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logging.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func setupRoutes(condonacionHandler *handler.CondonacionHandler, healthHandler *handler.HealthHandler, cfg *config.Config, log *logrus.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware(log))

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes, behind the API-key credential
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(handler.APIKeyMiddleware(cfg.Auth.APIKey))

	api.HandleFunc("/condonaciones/{idCredito}", condonacionHandler.GetCondonados).Methods("GET")
	api.HandleFunc("/condonaciones/{idCredito}/solo-condonados", condonacionHandler.GetSoloCondonados).Methods("GET")
	api.HandleFunc("/condonaciones/{idCredito}/pendientes", condonacionHandler.GetPendientes).Methods("GET")
	api.HandleFunc("/condonaciones/{idCredito}/general", condonacionHandler.GetGeneral).Methods("GET")
	api.HandleFunc("/condonaciones/{idCredito}/resumen-simple", condonacionHandler.GetResumenSimple).Methods("GET")
	api.HandleFunc("/condonaciones/{idCredito}/resumen-pago", condonacionHandler.GetResumenPago).Methods("GET")

	return router
}
