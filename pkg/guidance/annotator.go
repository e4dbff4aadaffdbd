package guidance

import (
	"context"
	"fmt"
	"time"

	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	estimatedTollName        = "Estimated Toll"
	estimatedTollOperator    = "Various Operators"
	estimatedTollMinKm       = 50.0
	estimatedTollCostPerKm   = 1000.0
	defaultLookupTimeout     = 5 * time.Second
	defaultCacheCleanupRatio = 2
)

type RoadSegments struct {
	Names  []string
	Source Source
}

type TollSummary struct {
	Entries  []da.TollEntry
	Total    float64
	Currency string
	Source   Source
}

func (ts TollSummary) HasTolls() bool {
	return len(ts.Entries) > 0
}

// Annotator. road names & tolls for a city pair: curated -> external -> generated.
// lookup errors and timeouts are logged and fall through to the next step, never returned.
type Annotator struct {
	oracle        DistanceOracle
	intermediates IntermediateSource

	curatedRoads  RoadLookup
	externalRoads RoadLookup
	curatedTolls  TollLookup
	externalTolls TollLookup

	cache         *cache.Cache
	lookupTimeout time.Duration
	logger        *zap.Logger
}

func NewAnnotator(oracle DistanceOracle, intermediates IntermediateSource, curatedRoads RoadLookup,
	curatedTolls TollLookup, logger *zap.Logger) *Annotator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annotator{
		oracle:        oracle,
		intermediates: intermediates,
		curatedRoads:  curatedRoads,
		curatedTolls:  curatedTolls,
		lookupTimeout: defaultLookupTimeout,
		logger:        logger,
	}
}

func (a *Annotator) SetExternalRoadLookup(l RoadLookup) {
	a.externalRoads = l
}

func (a *Annotator) SetExternalTollLookup(l TollLookup) {
	a.externalTolls = l
}

func (a *Annotator) SetLookupTimeout(d time.Duration) {
	if d > 0 {
		a.lookupTimeout = d
	}
}

// SetCache. cache annotations for ttl. ttl <= 0 disables caching.
func (a *Annotator) SetCache(ttl time.Duration) {
	if ttl <= 0 {
		a.cache = nil
		return
	}
	a.cache = cache.New(ttl, defaultCacheCleanupRatio*ttl)
}

func cacheKey(kind string, start, end da.Location, routeType pkg.RouteType) string {
	return fmt.Sprintf("%s|%s|%.5f,%.5f|%s|%.5f,%.5f|%s", kind, start.CityKey(), start.GetLat(), start.GetLon(),
		end.CityKey(), end.GetLat(), end.GetLon(), routeType)
}

func (a *Annotator) roadsFrom(ctx context.Context, l RoadLookup, start, end da.Location,
	routeType pkg.RouteType) []string {
	if l == nil {
		return nil
	}
	cctx, cancel := context.WithTimeout(ctx, a.lookupTimeout)
	defer cancel()

	roads, err := l.LookupRoadSegments(cctx, start, end, routeType)
	if err != nil {
		a.logger.Warn("road lookup failed, falling back",
			zap.String("start", start.CityKey()), zap.String("end", end.CityKey()), zap.Error(err))
		return nil
	}
	return roads
}

// RoadSegments. ordered road names for start -> end. never empty.
func (a *Annotator) RoadSegments(ctx context.Context, start, end da.Location, routeType pkg.RouteType) RoadSegments {
	key := cacheKey("roads", start, end, routeType)
	if a.cache != nil {
		if cached, found := a.cache.Get(key); found {
			return cached.(RoadSegments)
		}
	}

	res := a.lookupRoads(ctx, start, end, routeType)
	if a.cache != nil {
		a.cache.Set(key, res, cache.DefaultExpiration)
	}
	return res
}

func (a *Annotator) lookupRoads(ctx context.Context, start, end da.Location, routeType pkg.RouteType) RoadSegments {
	if roads := a.roadsFrom(ctx, a.curatedRoads, start, end, routeType); len(roads) > 0 {
		return RoadSegments{Names: roads, Source: SourceCurated}
	}
	if roads := a.roadsFrom(ctx, a.externalRoads, start, end, routeType); len(roads) > 0 {
		return RoadSegments{Names: roads, Source: SourceExternal}
	}

	startCity, endCity := start.CityKey(), end.CityKey()
	var cities []string
	if a.intermediates != nil {
		if points, ok := a.intermediates.Intermediates(startCity, endCity); ok {
			cities = make([]string, 0, len(points))
			for _, p := range points {
				cities = append(cities, p.Name)
			}
		}
	}

	roads := GenerateRoadSegments(startCity, endCity, cities, a.oracle.PreferredDistanceKm(start, end))
	if routeType == pkg.AVOID_TOLLS {
		roads = RewriteTollSegments(roads)
	}
	return RoadSegments{Names: roads, Source: SourceGenerated}
}

func (a *Annotator) tollsFrom(ctx context.Context, l TollLookup, start, end da.Location,
	routeType pkg.RouteType) (TollSummary, bool) {
	if l == nil {
		return TollSummary{}, false
	}
	cctx, cancel := context.WithTimeout(ctx, a.lookupTimeout)
	defer cancel()

	entries, total, currency, err := l.LookupTolls(cctx, start, end, routeType)
	if err != nil {
		a.logger.Warn("toll lookup failed, falling back",
			zap.String("start", start.CityKey()), zap.String("end", end.CityKey()), zap.Error(err))
		return TollSummary{}, false
	}
	if len(entries) == 0 {
		return TollSummary{}, false
	}
	if currency == "" {
		currency = pkg.DEFAULT_CURRENCY
	}
	return TollSummary{Entries: entries, Total: total, Currency: currency}, true
}

// Tolls. AVOID_TOLLS always yields no tolls and calls no lookup.
func (a *Annotator) Tolls(ctx context.Context, start, end da.Location, routeType pkg.RouteType) TollSummary {
	if routeType == pkg.AVOID_TOLLS {
		return TollSummary{Currency: pkg.DEFAULT_CURRENCY, Source: SourceNone}
	}

	key := cacheKey("tolls", start, end, routeType)
	if a.cache != nil {
		if cached, found := a.cache.Get(key); found {
			return cached.(TollSummary)
		}
	}

	res := a.lookupTolls(ctx, start, end, routeType)
	if a.cache != nil {
		a.cache.Set(key, res, cache.DefaultExpiration)
	}
	return res
}

func (a *Annotator) lookupTolls(ctx context.Context, start, end da.Location, routeType pkg.RouteType) TollSummary {
	if ts, ok := a.tollsFrom(ctx, a.curatedTolls, start, end, routeType); ok {
		ts.Source = SourceCurated
		return ts
	}
	if ts, ok := a.tollsFrom(ctx, a.externalTolls, start, end, routeType); ok {
		ts.Source = SourceExternal
		return ts
	}

	distance := a.oracle.PreferredDistanceKm(start, end)
	if distance <= estimatedTollMinKm {
		return TollSummary{Currency: pkg.DEFAULT_CURRENCY, Source: SourceNone}
	}
	estimated := da.NewTollEntry(estimatedTollName, estimatedTollOperator, distance*estimatedTollCostPerKm,
		pkg.DEFAULT_CURRENCY)
	return TollSummary{
		Entries:  []da.TollEntry{estimated},
		Total:    estimated.Cost,
		Currency: pkg.DEFAULT_CURRENCY,
		Source:   SourceGenerated,
	}
}
