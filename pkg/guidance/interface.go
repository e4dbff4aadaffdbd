package guidance

import (
	"context"

	"github.com/lintang-b-s/routesynth/pkg"
	"github.com/lintang-b-s/routesynth/pkg/curated"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
)

// RoadLookup. ordered road-segment display names between two points. empty result = no data.
type RoadLookup interface {
	LookupRoadSegments(ctx context.Context, start, end da.Location, routeType pkg.RouteType) ([]string, error)
}

// TollLookup. toll entries, total cost and currency between two points. empty entries = no data.
type TollLookup interface {
	LookupTolls(ctx context.Context, start, end da.Location, routeType pkg.RouteType) ([]da.TollEntry, float64, string, error)
}

type DistanceOracle interface {
	PreferredDistanceKm(a, b da.Location) float64
}

type IntermediateSource interface {
	Intermediates(startCity, endCity string) ([]curated.IntermediatePoint, bool)
}
