package httpserver

import (
	"errors"
	"io/fs"
	"time"

	"github.com/gin-gonic/gin"

	inventoryHTTP "inventory-service/internal/inventory/delivery/http"
	"inventory-service/internal/middleware"
	"inventory-service/pkg/log"
)

const (
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	middleware middleware.Middleware
	forms      fs.FS

	// Inventory domain
	inventoryHandler inventoryHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware
	// Forms holds RegisterForm.html and SearchForm.html at its root.
	Forms fs.FS

	// Inventory domain
	InventoryHandler inventoryHTTP.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		host:             cfg.Host,
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		readTimeout:      orDefault(cfg.ReadTimeout, defaultReadTimeout),
		writeTimeout:     orDefault(cfg.WriteTimeout, defaultWriteTimeout),
		shutdownTimeout:  orDefault(cfg.ShutdownTimeout, defaultShutdownTimeout),
		middleware:       cfg.Middleware,
		forms:            cfg.Forms,
		inventoryHandler: cfg.InventoryHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.inventoryHandler == nil {
		return errors.New("inventory handler is required")
	}
	return nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
