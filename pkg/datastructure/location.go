package datastructure

import (
	"strings"

	"github.com/lintang-b-s/routesynth/pkg/geo"
)

// Location. immutable named point (degree, WGS84 assumed, range not validated)
type Location struct {
	name string
	lat  float64
	lon  float64
}

func NewLocation(name string, lat, lon float64) Location {
	return Location{name: name, lat: lat, lon: lon}
}

func (l Location) GetName() string {
	return l.name
}

func (l Location) GetLat() float64 {
	return l.lat
}

func (l Location) GetLon() float64 {
	return l.lon
}

func (l Location) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(l.lat, l.lon)
}

// CityKey. key buat lookup ke curated tables: substring sebelum koma pertama.
// "Surabaya, East Java, Indonesia" -> "Surabaya". tidak di-trim.
func (l Location) CityKey() string {
	return ExtractCityName(l.name)
}

func ExtractCityName(fullDisplayName string) string {
	if idx := strings.IndexByte(fullDisplayName, ','); idx >= 0 {
		return fullDisplayName[:idx]
	}
	return fullDisplayName
}
