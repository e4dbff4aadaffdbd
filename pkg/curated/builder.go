package curated

import (
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
)

// TablesBuilder. mutable during startup only; Build hands out an independent copy.
type TablesBuilder struct {
	t *Tables
}

func NewTablesBuilder() *TablesBuilder {
	return &TablesBuilder{t: &Tables{
		distances:      make(map[string]map[string]float64),
		intermediates:  make(map[string]map[string][]IntermediatePoint),
		namedWaypoints: make(map[string]map[string][]string),
		areaNames:      make(map[string]map[string][]string),
		roads:          make(map[string]map[string][]string),
		tolls:          make(map[string]map[string][]da.TollEntry),
		cities:         make([]City, 0),
	}}
}

func put[V any](m map[string]map[string]V, a, b string, v V) {
	inner, ok := m[a]
	if !ok {
		inner = make(map[string]V)
		m[a] = inner
	}
	inner[b] = v
}

// AddDistance. directional; use AddSymmetricDistance for both directions.
func (b *TablesBuilder) AddDistance(cityA, cityB string, km float64) *TablesBuilder {
	put(b.t.distances, cityA, cityB, km)
	return b
}

func (b *TablesBuilder) AddSymmetricDistance(cityA, cityB string, km float64) *TablesBuilder {
	put(b.t.distances, cityA, cityB, km)
	put(b.t.distances, cityB, cityA, km)
	return b
}

func (b *TablesBuilder) AddIntermediates(startCity, endCity string, points ...IntermediatePoint) *TablesBuilder {
	put(b.t.intermediates, startCity, endCity, append([]IntermediatePoint(nil), points...))
	return b
}

func (b *TablesBuilder) AddNamedWaypoints(startCity, endCity string, names ...string) *TablesBuilder {
	put(b.t.namedWaypoints, startCity, endCity, append([]string(nil), names...))
	return b
}

func (b *TablesBuilder) AddAreaNames(startCity, endCity string, names ...string) *TablesBuilder {
	put(b.t.areaNames, startCity, endCity, append([]string(nil), names...))
	return b
}

// AddRoads. variant "" / NoTollVariant / ScenicVariant
func (b *TablesBuilder) AddRoads(startCity, endCity, variant string, roads ...string) *TablesBuilder {
	put(b.t.roads, startCity, RoadKey(endCity, variant), append([]string(nil), roads...))
	return b
}

func (b *TablesBuilder) AddTolls(startCity, endCity string, tolls ...da.TollEntry) *TablesBuilder {
	entries := make([]da.TollEntry, 0, len(tolls))
	for _, t := range tolls {
		entries = append(entries, da.NewTollEntry(t.Name, t.OperatorName, t.Cost, t.Currency))
	}
	put(b.t.tolls, startCity, endCity, entries)
	return b
}

// AddCity. replaces a city with the same name
func (b *TablesBuilder) AddCity(name string, lat, lon float64) *TablesBuilder {
	for i, c := range b.t.cities {
		if c.Name == name {
			b.t.cities[i] = City{Name: name, Lat: lat, Lon: lon}
			return b
		}
	}
	b.t.cities = append(b.t.cities, City{Name: name, Lat: lat, Lon: lon})
	return b
}

func copyNested[V any](src map[string]map[string]V, clone func(V) V) map[string]map[string]V {
	dst := make(map[string]map[string]V, len(src))
	for a, inner := range src {
		cp := make(map[string]V, len(inner))
		for k, v := range inner {
			cp[k] = clone(v)
		}
		dst[a] = cp
	}
	return dst
}

func cloneSlice[T any](s []T) []T {
	return append([]T(nil), s...)
}

func (b *TablesBuilder) Build() *Tables {
	return &Tables{
		distances:      copyNested(b.t.distances, func(v float64) float64 { return v }),
		intermediates:  copyNested(b.t.intermediates, cloneSlice[IntermediatePoint]),
		namedWaypoints: copyNested(b.t.namedWaypoints, cloneSlice[string]),
		areaNames:      copyNested(b.t.areaNames, cloneSlice[string]),
		roads:          copyNested(b.t.roads, cloneSlice[string]),
		tolls:          copyNested(b.t.tolls, cloneSlice[da.TollEntry]),
		cities:         cloneSlice(b.t.cities),
	}
}
