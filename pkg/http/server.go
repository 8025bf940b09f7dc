package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/Wayfindx/pkg/http/router"
	"github.com/lintang-b-s/Wayfindx/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/Wayfindx/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the api in the background. Wait returns its error once ctx is canceled or it fails.
func (s *Server) Use(
	ctx context.Context,
	routingService controllers.RoutingService,
	buildings controllers.BuildingCatalog,
	background ...func(ctx context.Context) error,
) *Server {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}
	rateLimit := http_router.RateLimit{
		Enabled: viper.GetBool("USE_RATE_LIMIT"),
		RPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
		Burst:   viper.GetInt("RATE_LIMIT_BURST"),
	}

	api := http_router.NewAPI(s.Log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Run(gctx, config, rateLimit, routingService, buildings)
	})
	for _, fn := range background {
		g.Go(func() error {
			return fn(gctx)
		})
	}
	s.g = g

	return s
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}

// ShutdownSignal receives the first SIGINT or SIGTERM.
func ShutdownSignal() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return quit
}
