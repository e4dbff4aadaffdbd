package controllers

import (
	"context"

	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/http/usecases"
)

type RoutingService interface {
	ComputeRoutes(ctx context.Context, req usecases.ComputeRoutesRequest) (*usecases.RoutePlan, error)
	Distance(ctx context.Context, origin, destination usecases.LocationQuery) (usecases.DistanceResult, error)
	Geocode(ctx context.Context, name string) (da.Location, error)
}
