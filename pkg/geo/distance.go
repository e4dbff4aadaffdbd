package geo

import (
	"math"

	"github.com/lintang-b-s/routesynth/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	dLat := util.DegreeToRadians(latTwo - latOne)
	dLon := util.DegreeToRadians(longTwo - longOne)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(util.DegreeToRadians(latOne))*math.Cos(util.DegreeToRadians(latTwo))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// Interpolate. linear interpolation in degree space, fraction 0 = (latOne,longOne), 1 = (latTwo,longTwo).
// bukan great-circle: waypoint sintetis cukup di garis lurus lat/lon.
func Interpolate(latOne, longOne, latTwo, longTwo, fraction float64) (float64, float64) {
	return latOne + (latTwo-latOne)*fraction, longOne + (longTwo-longOne)*fraction
}

// GetDestinationPoint. point at distance (km) from (lat, lon) along bearing (degree).
func GetDestinationPoint(lat, lon, bearing, distance float64) (float64, float64) {
	angular := distance / earthRadiusKM
	brng := util.DegreeToRadians(bearing)
	lat1 := util.DegreeToRadians(lat)
	lon1 := util.DegreeToRadians(lon)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) + math.Cos(lat1)*math.Sin(angular)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(math.Sin(brng)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2))

	return util.RadiansToDegree(lat2), util.RadiansToDegree(lon2)
}
