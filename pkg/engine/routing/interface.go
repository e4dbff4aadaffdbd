package routing

import (
	"github.com/lintang-b-s/routesynth/pkg/curated"
)

// CuratedTables. read-only curated data consulted by the oracle & synthesizer.
type CuratedTables interface {
	Distance(cityA, cityB string) (float64, bool)
	Intermediates(startCity, endCity string) ([]curated.IntermediatePoint, bool)
	NamedWaypoints(startCity, endCity string) ([]string, bool)
	AreaName(startCity, endCity string, index int) (string, bool)
}

type curatedPoint = curated.IntermediatePoint
