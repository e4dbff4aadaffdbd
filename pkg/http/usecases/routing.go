package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lintang-b-s/routesynth/pkg"
	"github.com/lintang-b-s/routesynth/pkg/concurrent"
	"github.com/lintang-b-s/routesynth/pkg/costfunction"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/engine/routing"
	"github.com/lintang-b-s/routesynth/pkg/geo"
	"github.com/lintang-b-s/routesynth/pkg/util"
	"go.uber.org/zap"
)

var (
	ERRPATHNOTFOUND    = errors.New("no route found")
	ERRNOLOCATION      = errors.New("location needs a name or a coordinate")
	ERRGEOCODERDISABLE = errors.New("geocoder is disabled")
)

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	annotator    Annotator
	geocoder     Geocoder
	spatialIndex SpatialIndex
	metrics      Metrics
	timeFunction costfunction.CostFunction
	snapRadius   float64
	numWorkers   int
}

// NewRoutingService. geocoder, spatialIndex and metrics may be nil.
func NewRoutingService(log *zap.Logger, engine RoutingEngine, annotator Annotator, geocoder Geocoder,
	spatialIndex SpatialIndex, metrics Metrics, snapRadius float64, numWorkers int) *RoutingService {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &RoutingService{
		log:          log,
		engine:       engine,
		annotator:    annotator,
		geocoder:     geocoder,
		spatialIndex: spatialIndex,
		metrics:      metrics,
		timeFunction: costfunction.NewTimeCostFunction(),
		snapRadius:   snapRadius,
		numWorkers:   numWorkers,
	}
}

// ComputeRoutes. resolve both ends, generate up to 3 candidates and annotate each of them.
func (rs *RoutingService) ComputeRoutes(ctx context.Context, req ComputeRoutesRequest) (*RoutePlan, error) {
	origin, err := rs.resolveLocation(ctx, req.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := rs.resolveLocation(ctx, req.Destination)
	if err != nil {
		return nil, err
	}

	candidates := rs.engine.Diversify(origin, destination, req.RouteType)
	if rs.metrics != nil {
		rs.metrics.ObserveQuery(req.RouteType.String(), candidates.Len(), candidates.Synthesis.Topology.String())
	}
	if candidates.Len() == 0 {
		return nil, util.WrapErrorf(ERRPATHNOTFOUND, util.ErrNotFound, "no route found from %s to %s",
			origin.GetName(), destination.GetName())
	}

	plan := &RoutePlan{
		Id:          uuid.New().String(),
		Origin:      origin,
		Destination: destination,
		RouteType:   req.RouteType,
		Topology:    candidates.Synthesis.Topology.String(),
		Routes:      make([]AnnotatedRoute, 0, candidates.Len()),
	}
	for i, c := range candidates.Routes {
		if err := ctx.Err(); err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "compute routes canceled")
		}
		plan.Routes = append(plan.Routes, rs.annotateRoute(ctx, candidates.Graph, c, i, req.RouteType))
	}

	rs.log.Info("routes computed", zap.String("plan_id", plan.Id), zap.String("origin", origin.GetName()),
		zap.String("destination", destination.GetName()), zap.String("route_type", req.RouteType.String()),
		zap.Int("routes", len(plan.Routes)))
	return plan, nil
}

func routeLabel(i int) string {
	if i == 0 {
		return "Recommended Route"
	}
	return fmt.Sprintf("Alternative Route %d", i)
}

type hop struct {
	from, to da.Location
	distance float64
}

func (rs *RoutingService) annotateRoute(ctx context.Context, graph *da.Graph, c routing.Candidate, i int,
	routeType pkg.RouteType) AnnotatedRoute {
	locs := c.Path.Locations(graph)

	hops := make([]hop, 0, len(c.Path))
	total := 0.0
	for j := 0; j+1 < len(c.Path); j++ {
		w, _ := graph.EdgeWeight(c.Path[j], c.Path[j+1])
		hops = append(hops, hop{from: locs[j], to: locs[j+1], distance: w})
		total += w
	}

	steps := concurrent.MapOrdered(rs.numWorkers, hops, func(h hop) RouteStep {
		roads := rs.annotator.RoadSegments(ctx, h.from, h.to, routeType)
		return RouteStep{
			From:        h.from,
			To:          h.to,
			DistanceKm:  h.distance,
			Minutes:     rs.timeFunction.GetWeight(costfunction.Segment(h.distance), routeType),
			Instruction: headingInstruction(h.from, h.to),
			Roads:       roads.Names,
			RoadSource:  roads.Source.String(),
		}
	})

	first, last := locs[0], locs[len(locs)-1]
	tolls := rs.annotator.Tolls(ctx, first, last, routeType)
	if rs.metrics != nil {
		for _, s := range steps {
			rs.metrics.ObserveAnnotation("roads", s.RoadSource)
		}
		rs.metrics.ObserveAnnotation("tolls", tolls.Source.String())
	}

	minutes := rs.timeFunction.GetWeight(costfunction.Segment(total), routeType)
	route := AnnotatedRoute{
		Label:           routeLabel(i),
		Strategy:        c.Strategy.String(),
		Path:            append([]string(nil), c.Path...),
		Steps:           steps,
		DistanceKm:      total,
		DurationMinutes: minutes,
		Duration:        costfunction.FormatDuration(minutes),
		Tolls: TollInfo{
			Entries:   tolls.Entries,
			Total:     tolls.Total,
			Currency:  tolls.Currency,
			Formatted: FormatCurrency(tolls.Total, tolls.Currency),
			Source:    tolls.Source.String(),
		},
		Polyline:           geo.PolylineFromCoords(coordinatesOf(locs)),
		WaypointDeviationM: waypointDeviation(locs),
	}
	route.Description = FormatRouteDescription(route, len(c.Path) == 2)
	return route
}

// Distance. preferred distance between two resolved locations.
func (rs *RoutingService) Distance(ctx context.Context, originQ, destinationQ LocationQuery) (DistanceResult, error) {
	origin, err := rs.resolveLocation(ctx, originQ)
	if err != nil {
		return DistanceResult{}, err
	}
	destination, err := rs.resolveLocation(ctx, destinationQ)
	if err != nil {
		return DistanceResult{}, err
	}
	_, curated := rs.engine.CuratedDistanceKm(origin, destination)
	return DistanceResult{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  rs.engine.PreferredDistanceKm(origin, destination),
		Curated:     curated,
	}, nil
}

func (rs *RoutingService) Geocode(ctx context.Context, name string) (da.Location, error) {
	return rs.resolveLocation(ctx, NewNameQuery(name))
}
