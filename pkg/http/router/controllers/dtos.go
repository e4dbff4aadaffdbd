package controllers

import (
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/http/usecases"
	"github.com/lintang-b-s/routesynth/pkg/util"
)

type locationRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	Name     string  `json:"name" validate:"max=200"`
	hasCoord bool
}

func (lr locationRequest) toQuery() usecases.LocationQuery {
	if lr.hasCoord {
		return usecases.NewCoordinateQuery(lr.Name, lr.Lat, lr.Lon)
	}
	return usecases.NewNameQuery(lr.Name)
}

type computeRoutesRequest struct {
	Origin      locationRequest `json:"origin"`
	Destination locationRequest `json:"destination"`
	RouteType   string          `json:"route_type" validate:"omitempty,oneof=fastest shortest avoid_tolls scenic"`
}

type distanceRequest struct {
	Origin      locationRequest `json:"origin"`
	Destination locationRequest `json:"destination"`
}

type geocodeRequest struct {
	Query string `json:"q" validate:"required,max=200"`
}

type locationResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func NewLocationResponse(l da.Location) locationResponse {
	return locationResponse{
		Name: l.GetName(),
		Lat:  l.GetLat(),
		Lon:  l.GetLon(),
	}
}

type tollEntryResponse struct {
	Name     string  `json:"name"`
	Operator string  `json:"operator"`
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

type tollResponse struct {
	Entries   []tollEntryResponse `json:"entries"`
	Total     float64             `json:"total"`
	Currency  string              `json:"currency"`
	Formatted string              `json:"formatted"`
	Source    string              `json:"source"`
}

func NewTollResponse(t usecases.TollInfo) tollResponse {
	entries := make([]tollEntryResponse, 0, len(t.Entries))
	for _, e := range t.Entries {
		entries = append(entries, tollEntryResponse{
			Name:     e.Name,
			Operator: e.OperatorName,
			Cost:     e.Cost,
			Currency: e.Currency,
		})
	}
	return tollResponse{
		Entries:   entries,
		Total:     t.Total,
		Currency:  t.Currency,
		Formatted: t.Formatted,
		Source:    t.Source,
	}
}

type stepResponse struct {
	From        locationResponse `json:"from"`
	To          locationResponse `json:"to"`
	Distance    float64          `json:"distance"`
	Minutes     float64          `json:"minutes"`
	Instruction string           `json:"instruction"`
	Roads       []string         `json:"roads"`
	RoadSource  string           `json:"road_source"`
}

type routeResponse struct {
	Label       string         `json:"label"`
	Strategy    string         `json:"strategy"`
	Path        []string       `json:"path"`
	Steps       []stepResponse `json:"steps"`
	Distance    float64        `json:"distance"`
	Eta         float64        `json:"eta"`
	Duration    string         `json:"duration"`
	Tolls       tollResponse   `json:"tolls"`
	Polyline    string         `json:"polyline"`
	Deviation   []float64      `json:"waypoint_deviation_m"`
	Description string         `json:"description"`
}

func NewRouteResponse(r usecases.AnnotatedRoute) routeResponse {
	steps := make([]stepResponse, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, stepResponse{
			From:        NewLocationResponse(s.From),
			To:          NewLocationResponse(s.To),
			Distance:    util.RoundFloat(s.DistanceKm, 2),
			Minutes:     util.RoundFloat(s.Minutes, 1),
			Instruction: s.Instruction,
			Roads:       s.Roads,
			RoadSource:  s.RoadSource,
		})
	}
	return routeResponse{
		Label:       r.Label,
		Strategy:    r.Strategy,
		Path:        r.Path,
		Steps:       steps,
		Distance:    util.RoundFloat(r.DistanceKm, 2),
		Eta:         util.RoundFloat(r.DurationMinutes, 1),
		Duration:    r.Duration,
		Tolls:       NewTollResponse(r.Tolls),
		Polyline:    r.Polyline,
		Deviation:   r.WaypointDeviationM,
		Description: r.Description,
	}
}

type computeRoutesResponse struct {
	Id          string           `json:"id"`
	Origin      locationResponse `json:"origin"`
	Destination locationResponse `json:"destination"`
	RouteType   string           `json:"route_type"`
	Topology    string           `json:"topology"`
	Routes      []routeResponse  `json:"routes"`
}

func NewComputeRoutesResponse(plan *usecases.RoutePlan) computeRoutesResponse {
	routes := make([]routeResponse, 0, len(plan.Routes))
	for _, r := range plan.Routes {
		routes = append(routes, NewRouteResponse(r))
	}
	return computeRoutesResponse{
		Id:          plan.Id,
		Origin:      NewLocationResponse(plan.Origin),
		Destination: NewLocationResponse(plan.Destination),
		RouteType:   plan.RouteType.String(),
		Topology:    plan.Topology,
		Routes:      routes,
	}
}

type distanceResponse struct {
	Origin      locationResponse `json:"origin"`
	Destination locationResponse `json:"destination"`
	Distance    float64          `json:"distance"`
	Curated     bool             `json:"curated"`
}

func NewDistanceResponse(d usecases.DistanceResult) distanceResponse {
	return distanceResponse{
		Origin:      NewLocationResponse(d.Origin),
		Destination: NewLocationResponse(d.Destination),
		Distance:    util.RoundFloat(d.DistanceKm, 2),
		Curated:     d.Curated,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
