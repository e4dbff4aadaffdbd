package http

import (
	"context"

	"github.com/lintang-b-s/routesynth/pkg/http/router"
	"github.com/lintang-b-s/routesynth/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/routesynth/pkg/http/server"
	"github.com/prometheus/client_golang/prometheus"
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

// Use. run the API until ctx is canceled or the listener fails.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,
	metrics router.HTTPMetrics,
	gatherer prometheus.Gatherer,
) error {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	api := router.NewAPI(log, metrics, gatherer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Run(gctx, config, useRateLimit, routingService)
	})

	return g.Wait()
}
