package pkg

import (
	"fmt"
	"strings"
)

// enum of route_type
type RouteType uint8

const (
	FASTEST RouteType = iota
	SHORTEST
	AVOID_TOLLS
	SCENIC
)

const (
	INF_WEIGHT float64 = 1e15

	START_NODE_ID = "start"
	END_NODE_ID   = "end"

	DEFAULT_CURRENCY = "IDR"

	// km/h, dipakai buat estimasi waktu tempuh
	FASTEST_SPEED_KMH     = 60.0
	SHORTEST_SPEED_KMH    = 50.0
	AVOID_TOLLS_SPEED_KMH = 45.0
	SCENIC_SPEED_KMH      = 40.0

	MAX_CANDIDATE_ROUTES = 3
)

const (
	DEBUG = false
)

func (rt RouteType) String() string {
	switch rt {
	case FASTEST:
		return "fastest"
	case SHORTEST:
		return "shortest"
	case AVOID_TOLLS:
		return "avoid_tolls"
	case SCENIC:
		return "scenic"
	default:
		return "unknown"
	}
}

// ParseRouteType. empty string defaults to FASTEST, same as the interactive menu default.
func ParseRouteType(routeType string) (RouteType, error) {
	switch strings.ToLower(strings.TrimSpace(routeType)) {
	case "", "fastest":
		return FASTEST, nil
	case "shortest":
		return SHORTEST, nil
	case "avoid_tolls", "avoid-tolls", "avoidtolls":
		return AVOID_TOLLS, nil
	case "scenic":
		return SCENIC, nil
	default:
		return FASTEST, fmt.Errorf("unknown route type %q", routeType)
	}
}

// Speed. assumed travel speed in km/h for the route type
func (rt RouteType) Speed() float64 {
	switch rt {
	case SHORTEST:
		return SHORTEST_SPEED_KMH
	case AVOID_TOLLS:
		return AVOID_TOLLS_SPEED_KMH
	case SCENIC:
		return SCENIC_SPEED_KMH
	default:
		return FASTEST_SPEED_KMH
	}
}
