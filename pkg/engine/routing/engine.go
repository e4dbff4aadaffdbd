package routing

import (
	"go.uber.org/zap"
)

// RoutingEngine. route synthesis + graph search over per-query graphs. stateless between queries:
// tables is read-only so one engine can serve concurrent queries.
type RoutingEngine struct {
	tables CuratedTables
	logger *zap.Logger
}

func NewRoutingEngine(tables CuratedTables, logger *zap.Logger) *RoutingEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoutingEngine{
		tables: tables,
		logger: logger,
	}
}

func (re *RoutingEngine) GetTables() CuratedTables {
	return re.tables
}
