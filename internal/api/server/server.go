package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/api/handlers"
	"github.com/oracular-labs/oracular/internal/logging"
)

// Config ... Server configuration options
type Config struct {
	Host            string
	Port            int
	KeepAlive       int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// Server ... Server representation struct
type Server struct {
	Cfg        *Config
	serverHTTP *http.Server
}

// New ... Initializer; spawns the listen-and-serve routine and returns
// a stop closure for graceful shutdown
func New(ctx context.Context, cfg *Config, apiHandlers handlers.Handlers) (*Server, func(), error) {
	restServer := initializeServer(cfg, apiHandlers)

	go spawnServer(restServer)

	stop := func() {
		logging.WithContext(ctx).Info("Starting to shutdown REST API HTTP server")

		shutdownCtx, cancel := context.WithTimeout(ctx,
			time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := restServer.serverHTTP.Shutdown(shutdownCtx); err != nil {
			logging.WithContext(ctx).Error("Failed to shutdown REST API HTTP server",
				zap.Error(err))
		}
	}

	return restServer, stop, nil
}

// spawnServer ... Starts a listen and serve API routine
func spawnServer(server *Server) {
	logging.NoContext().Info("Starting REST API HTTP server",
		zap.String("address", server.serverHTTP.Addr))

	if err := server.serverHTTP.ListenAndServe(); err != http.ErrServerClosed {
		logging.NoContext().Error("Failed to run REST API HTTP server",
			zap.String("address", server.serverHTTP.Addr))
		panic(err)
	}
}

// initializeServer ... Initializes server struct object
func initializeServer(config *Config, handler http.Handler) *Server {
	return &Server{
		Cfg: config,
		serverHTTP: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler:      handler,
			ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
		},
	}
}
