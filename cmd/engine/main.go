package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/Wayfindx/pkg/engine"
	"github.com/lintang-b-s/Wayfindx/pkg/http"
	"github.com/lintang-b-s/Wayfindx/pkg/http/usecases"
	"github.com/lintang-b-s/Wayfindx/pkg/logger"
	"github.com/lintang-b-s/Wayfindx/pkg/storage"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", ".", "directory containing config.yaml")
	watch      = flag.Bool("watch", true, "reload the building file when it changes")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configPath); err != nil {
		panic(err)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // ignore

	buildingStore, err := storage.NewBuildingStore(viper.GetString("BUILDINGS_FILE"), logger)
	if err != nil {
		logger.Fatal("failed to load building data", zap.Error(err))
	}

	historyStore, err := storage.NewHistoryStore(viper.GetInt("HISTORY_SIZE"), viper.GetInt("HISTORY_PER_USER"))
	if err != nil {
		logger.Fatal("failed to create history store", zap.Error(err))
	}

	routingEngine := engine.NewEngine(buildingStore, logger)

	routingService := usecases.NewRoutingService(logger, routingEngine.GetRoutingEngine(), buildingStore, historyStore,
		viper.GetDuration("API_TIMEOUT"), viper.GetFloat64("NEAREST_SEARCH_RADIUS"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	var background []func(ctx context.Context) error
	if *watch {
		background = append(background, func(ctx context.Context) error {
			if err := buildingStore.Watch(ctx); err != nil {
				logger.Error("building file watcher stopped, serving the loaded data", zap.Error(err))
			}
			return nil
		})
	}

	api := http.NewServer(logger).Use(ctx, routingService, buildingStore, background...)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- api.Wait()
	}()

	select {
	case err := <-serverErr:
		logger.Error("Wayfindx Routing Engine Server failed", zap.Error(err))
		cleanup()
	case signal := <-http.ShutdownSignal():
		logger.Info("Wayfindx Routing Engine Server Stopping", zap.String("signal", signal.String()))
		cleanup()
		if err := <-serverErr; err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}
	logger.Info("Wayfindx Routing Engine Server Stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
