package guidance

import (
	"context"

	"github.com/lintang-b-s/routesynth/pkg"
	"github.com/lintang-b-s/routesynth/pkg/curated"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/util"
)

// CuratedRoadLookup. RoadLookup over the curated road table.
type CuratedRoadLookup struct {
	tables *curated.Tables
}

func NewCuratedRoadLookup(tables *curated.Tables) *CuratedRoadLookup {
	return &CuratedRoadLookup{tables: tables}
}

func variantOf(routeType pkg.RouteType) string {
	switch routeType {
	case pkg.AVOID_TOLLS:
		return curated.NoTollVariant
	case pkg.SCENIC:
		return curated.ScenicVariant
	default:
		return ""
	}
}

// LookupRoadSegments. route-type variant first, then the plain list. a list stored for the reversed
// pair is returned reversed. plain lists under AVOID_TOLLS get their toll segments rewritten.
func (cl *CuratedRoadLookup) LookupRoadSegments(ctx context.Context, start, end da.Location,
	routeType pkg.RouteType) ([]string, error) {
	startCity, endCity := start.CityKey(), end.CityKey()

	if variant := variantOf(routeType); variant != "" {
		if roads, ok := cl.find(startCity, endCity, variant); ok {
			return roads, nil
		}
	}
	roads, ok := cl.find(startCity, endCity, "")
	if !ok {
		return nil, nil
	}
	if routeType == pkg.AVOID_TOLLS {
		roads = RewriteTollSegments(roads)
	}
	return roads, nil
}

func (cl *CuratedRoadLookup) find(startCity, endCity, variant string) ([]string, bool) {
	if roads, ok := cl.tables.Roads(startCity, curated.RoadKey(endCity, variant)); ok && len(roads) > 0 {
		return roads, true
	}
	if roads, ok := cl.tables.Roads(endCity, curated.RoadKey(startCity, variant)); ok && len(roads) > 0 {
		return util.ReverseG(roads), true
	}
	return nil, false
}

// CuratedTollLookup. TollLookup over the curated toll table.
type CuratedTollLookup struct {
	tables *curated.Tables
}

func NewCuratedTollLookup(tables *curated.Tables) *CuratedTollLookup {
	return &CuratedTollLookup{tables: tables}
}

func (cl *CuratedTollLookup) LookupTolls(ctx context.Context, start, end da.Location,
	routeType pkg.RouteType) ([]da.TollEntry, float64, string, error) {
	if routeType == pkg.AVOID_TOLLS {
		return nil, 0, pkg.DEFAULT_CURRENCY, nil
	}
	tolls, ok := cl.tables.Tolls(start.CityKey(), end.CityKey())
	if !ok {
		return nil, 0, pkg.DEFAULT_CURRENCY, nil
	}
	return tolls, da.TotalTollCost(tolls), currencyOf(tolls), nil
}

func currencyOf(tolls []da.TollEntry) string {
	if len(tolls) == 0 || tolls[0].Currency == "" {
		return pkg.DEFAULT_CURRENCY
	}
	return tolls[0].Currency
}
