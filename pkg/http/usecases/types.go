package usecases

import (
	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
)

// LocationQuery. a place name, a coordinate, or both.
type LocationQuery struct {
	Name     string
	Lat, Lon float64
	HasCoord bool
}

func NewCoordinateQuery(name string, lat, lon float64) LocationQuery {
	return LocationQuery{Name: name, Lat: lat, Lon: lon, HasCoord: true}
}

func NewNameQuery(name string) LocationQuery {
	return LocationQuery{Name: name}
}

type ComputeRoutesRequest struct {
	Origin      LocationQuery
	Destination LocationQuery
	RouteType   pkg.RouteType
}

type RouteStep struct {
	From        da.Location
	To          da.Location
	DistanceKm  float64
	Minutes     float64
	Instruction string
	Roads       []string
	RoadSource  string
}

type TollInfo struct {
	Entries   []da.TollEntry
	Total     float64
	Currency  string
	Formatted string
	Source    string
}

type AnnotatedRoute struct {
	Label           string
	Strategy        string
	Path            []string
	Steps           []RouteStep
	DistanceKm      float64
	DurationMinutes float64
	Duration        string
	Tolls           TollInfo
	Polyline        string
	// WaypointDeviationM. distance (meter) of every inner node from the straight start-end line.
	WaypointDeviationM []float64
	Description        string
}

type RoutePlan struct {
	Id          string
	Origin      da.Location
	Destination da.Location
	RouteType   pkg.RouteType
	Topology    string
	Routes      []AnnotatedRoute
}

func (rp *RoutePlan) Recommended() (AnnotatedRoute, bool) {
	if len(rp.Routes) == 0 {
		return AnnotatedRoute{}, false
	}
	return rp.Routes[0], true
}

type DistanceResult struct {
	Origin      da.Location
	Destination da.Location
	DistanceKm  float64
	Curated     bool
}
