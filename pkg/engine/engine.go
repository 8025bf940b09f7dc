package engine

import (
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Engine struct {
	routingEngine *routing.RoutingEngine
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

// NewEngine builds the routing engine with FLOOR_PENALTY and WALKING_SPEED from the viper config.
func NewEngine(repository routing.BuildingRepository, logger *zap.Logger) *Engine {
	return NewEngineDirect(repository, logger, viper.GetFloat64("FLOOR_PENALTY"), viper.GetFloat64("WALKING_SPEED"))
}

func NewEngineDirect(repository routing.BuildingRepository, logger *zap.Logger, floorPenalty, walkingSpeed float64) *Engine {
	logger.Info("Starting indoor routing engine...", zap.Float64("floor_penalty", floorPenalty),
		zap.Float64("walking_speed", walkingSpeed))

	return &Engine{
		routingEngine: routing.NewRoutingEngine(repository, logger, floorPenalty, walkingSpeed),
	}
}
