package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/veldtdb/fileiod/internal/config"
	"github.com/veldtdb/fileiod/internal/logging"
	"github.com/veldtdb/fileiod/internal/monitoring"
	"github.com/veldtdb/fileiod/internal/providers/fileio"
	"github.com/veldtdb/fileiod/internal/service"
)

// Server wraps the HTTP server and its dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	log      *logging.Logger
	cfg      *config.Config
}

// New creates a server with all providers registered
func New(cfg *config.Config, log *logging.Logger) *Server {
	return NewWithRegisterer(cfg, log, prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates a server whose metrics register on reg.
// Tests use this to avoid collisions on the default registerer.
func NewWithRegisterer(cfg *config.Config, log *logging.Logger, reg prometheus.Registerer) *Server {
	registry := service.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	s := &Server{
		registry: registry,
		metrics:  metrics,
		log:      log,
		cfg:      cfg,
	}
	s.registerProviders()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(monitoring.Middleware(metrics))

	router.GET("/", s.root)
	router.GET("/health", s.health)
	router.GET("/services", s.listServices)
	router.POST("/services/execute", s.executeService)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router = router
	return s
}

// Run starts the server on addr
func (s *Server) Run(addr string) error {
	s.log.Info("starting fileio service", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Handler exposes the router, primarily for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerProviders() {
	provider := fileio.NewProvider(s.cfg.Limits.MaxBlobSize)
	if err := s.registry.Register(provider); err != nil {
		s.log.Error("failed to register fileio provider", zap.Error(err))
		return
	}

	stats := s.registry.Stats()
	s.log.Info("registered service providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]))
}
