package routing

import (
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/geo"
)

// GreatCircleDistanceKm. haversine, earth radius 6371 km, input in degree.
func GreatCircleDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.CalculateHaversineDistance(lat1, lon1, lat2, lon2)
}

// CuratedDistanceKm. curated road distance between the CityKeys of a and b, either order.
func (re *RoutingEngine) CuratedDistanceKm(a, b da.Location) (float64, bool) {
	if re.tables == nil {
		return 0, false
	}
	return re.tables.Distance(a.CityKey(), b.CityKey())
}

// PreferredDistanceKm. curated value wins over geometry whenever a key matches in either order.
func (re *RoutingEngine) PreferredDistanceKm(a, b da.Location) float64 {
	if d, ok := re.CuratedDistanceKm(a, b); ok {
		return d
	}
	return GreatCircleDistanceKm(a.GetLat(), a.GetLon(), b.GetLat(), b.GetLon())
}
