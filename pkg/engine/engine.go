package engine

import (
	"github.com/lintang-b-s/routesynth/pkg/curated"
	"github.com/lintang-b-s/routesynth/pkg/engine/routing"
	"github.com/lintang-b-s/routesynth/pkg/guidance"
	"go.uber.org/zap"
)

// Engine. curated tables plus everything built on top of them.
type Engine struct {
	tables        *curated.Tables
	routingEngine *routing.RoutingEngine
	annotator     *guidance.Annotator
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

func (e *Engine) GetAnnotator() *guidance.Annotator {
	return e.annotator
}

func (e *Engine) GetTables() *curated.Tables {
	return e.tables
}

// NewEngine. tablesFilePath "" uses the built-in curated tables only.
func NewEngine(tablesFilePath string, logger *zap.Logger) (*Engine, error) {
	logger.Info("Loading curated tables...", zap.String("overlay", tablesFilePath))
	tables, err := curated.LoadTables(tablesFilePath)
	if err != nil {
		return nil, err
	}
	logger.Info("Curated tables loaded.", zap.Int("cities", len(tables.Cities())))

	return NewEngineWithTables(tables, logger), nil
}

func NewEngineWithTables(tables *curated.Tables, logger *zap.Logger) *Engine {
	routingEngine := routing.NewRoutingEngine(tables, logger)
	annotator := guidance.NewAnnotator(routingEngine, tables, guidance.NewCuratedRoadLookup(tables),
		guidance.NewCuratedTollLookup(tables), logger)

	return &Engine{
		tables:        tables,
		routingEngine: routingEngine,
		annotator:     annotator,
	}
}
