package http

import (
	"context"

	http_router "github.com/lintang-b-s/transitcatalogue/pkg/http/router"
	"github.com/lintang-b-s/transitcatalogue/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/transitcatalogue/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use. serve the query api until ctx is canceled or the listener fails
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	catalogueService controllers.CatalogueService,
) error {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}
	limit := http_router.RateLimitConfig{
		RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
		Burst:             viper.GetInt("RATE_LIMIT_BURST"),
	}

	api := http_router.NewAPI(log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Run(gctx, config, log, useRateLimit, limit, catalogueService)
	})

	return g.Wait()
}
