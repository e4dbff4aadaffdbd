package curated

import (
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/util"
)

const (
	NoTollVariant = "NoToll"
	ScenicVariant = "Scenic"
)

type IntermediatePoint struct {
	Name string  `mapstructure:"name"`
	Lat  float64 `mapstructure:"lat"`
	Lon  float64 `mapstructure:"lon"`
}

func (ip IntermediatePoint) ToLocation() da.Location {
	return da.NewLocation(ip.Name, ip.Lat, ip.Lon)
}

type City struct {
	Name string  `mapstructure:"name"`
	Lat  float64 `mapstructure:"lat"`
	Lon  float64 `mapstructure:"lon"`
}

// Tables. curated reference data keyed by CityKey pairs. read-only after Build, safe to share
// between concurrent queries.
type Tables struct {
	distances      map[string]map[string]float64
	intermediates  map[string]map[string][]IntermediatePoint
	namedWaypoints map[string]map[string][]string
	areaNames      map[string]map[string][]string
	roads          map[string]map[string][]string
	tolls          map[string]map[string][]da.TollEntry
	cities         []City
}

func lookup[V any](m map[string]map[string]V, a, b string) (V, bool) {
	var zero V
	inner, ok := m[a]
	if !ok {
		return zero, false
	}
	v, ok := inner[b]
	return v, ok
}

// Distance. (a,b) first then (b,a).
func (t *Tables) Distance(cityA, cityB string) (float64, bool) {
	if d, ok := lookup(t.distances, cityA, cityB); ok {
		return d, true
	}
	return lookup(t.distances, cityB, cityA)
}

// Intermediates. ordered chain start->end. reversed pair returns the reversed chain.
func (t *Tables) Intermediates(startCity, endCity string) ([]IntermediatePoint, bool) {
	if pts, ok := lookup(t.intermediates, startCity, endCity); ok && len(pts) > 0 {
		return append([]IntermediatePoint(nil), pts...), true
	}
	if pts, ok := lookup(t.intermediates, endCity, startCity); ok && len(pts) > 0 {
		return util.ReverseG(pts), true
	}
	return nil, false
}

// NamedWaypoints. only stored direction.
func (t *Tables) NamedWaypoints(startCity, endCity string) ([]string, bool) {
	names, ok := lookup(t.namedWaypoints, startCity, endCity)
	if !ok || len(names) == 0 {
		return nil, false
	}
	return append([]string(nil), names...), true
}

// AreaName. area name for the index-th synthetic waypoint; the reversed pair is read from the back.
func (t *Tables) AreaName(startCity, endCity string, index int) (string, bool) {
	if areas, ok := lookup(t.areaNames, startCity, endCity); ok && index >= 0 && index < len(areas) {
		return areas[index], true
	}
	if areas, ok := lookup(t.areaNames, endCity, startCity); ok {
		reversedIndex := len(areas) - 1 - index
		if reversedIndex >= 0 && reversedIndex < len(areas) {
			return areas[reversedIndex], true
		}
	}
	return "", false
}

// Roads. raw road list stored under startCity -> key. key is an end city, optionally suffixed "-NoToll"/"-Scenic".
func (t *Tables) Roads(startCity, key string) ([]string, bool) {
	roads, ok := lookup(t.roads, startCity, key)
	if !ok {
		return nil, false
	}
	return append([]string(nil), roads...), true
}

// Tolls. (a,b) first then (b,a).
func (t *Tables) Tolls(startCity, endCity string) ([]da.TollEntry, bool) {
	if tolls, ok := lookup(t.tolls, startCity, endCity); ok && len(tolls) > 0 {
		return append([]da.TollEntry(nil), tolls...), true
	}
	if tolls, ok := lookup(t.tolls, endCity, startCity); ok && len(tolls) > 0 {
		return append([]da.TollEntry(nil), tolls...), true
	}
	return nil, false
}

func (t *Tables) Cities() []City {
	return append([]City(nil), t.cities...)
}

func RoadKey(endCity, variant string) string {
	if variant == "" {
		return endCity
	}
	return endCity + "-" + variant
}
