package usecases

import (
	"context"

	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/engine/routing"
	"github.com/lintang-b-s/routesynth/pkg/guidance"
	"github.com/lintang-b-s/routesynth/pkg/spatialindex"
)

type RoutingEngine interface {
	Diversify(startLoc, endLoc da.Location, routeType pkg.RouteType) *routing.Candidates
	PreferredDistanceKm(a, b da.Location) float64
	CuratedDistanceKm(a, b da.Location) (float64, bool)
}

type Annotator interface {
	RoadSegments(ctx context.Context, start, end da.Location, routeType pkg.RouteType) guidance.RoadSegments
	Tolls(ctx context.Context, start, end da.Location, routeType pkg.RouteType) guidance.TollSummary
}

type Geocoder interface {
	GeocodeLocation(ctx context.Context, name string) (da.Location, error)
}

type SpatialIndex interface {
	NearestCity(qLat, qLon, radius float64) (spatialindex.CityPoint, bool)
}

type Metrics interface {
	ObserveQuery(routeType string, candidates int, topology string)
	ObserveAnnotation(kind, source string)
}
