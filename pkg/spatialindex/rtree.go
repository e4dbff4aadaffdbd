package spatialindex

import (
	"math"

	"github.com/lintang-b-s/routesynth/pkg/curated"
	"github.com/lintang-b-s/routesynth/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. r-tree over curated city centroids, used to name coordinates that come without a place name.
type Rtree struct {
	tr *rtree.RTreeG[CityPoint]
}

type CityPoint struct {
	name string
	lat  float64
	lon  float64
}

func (cp CityPoint) GetName() string {
	return cp.name
}

func (cp CityPoint) GetLat() float64 {
	return cp.lat
}

func (cp CityPoint) GetLon() float64 {
	return cp.lon
}

func newCityPoint(name string, lat, lon float64) CityPoint {
	return CityPoint{
		name: name,
		lat:  lat,
		lon:  lon,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[CityPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. one point entry per city.
func (rt *Rtree) Build(cities []curated.City, log *zap.Logger) {
	log.Info("Building R-tree spatial index of curated cities...", zap.Int("cities", len(cities)))
	for _, c := range cities {
		p := [2]float64{c.Lon, c.Lat}
		rt.tr.Insert(p, p, newCityPoint(c.Name, c.Lat, c.Lon))
	}
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius search for all cities within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []CityPoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius*math.Sqrt2)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius*math.Sqrt2)

	results := make([]CityPoint, 0, 4)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data CityPoint) bool {
			if geo.CalculateHaversineDistance(qLat, qLon, data.lat, data.lon) <= radius {
				results = append(results, data)
			}
			return true
		})
	return results
}

// NearestCity. closest city within radius km, false if none.
func (rt *Rtree) NearestCity(qLat, qLon, radius float64) (CityPoint, bool) {
	var (
		best     CityPoint
		bestDist = math.Inf(1)
		found    bool
	)
	for _, c := range rt.SearchWithinRadius(qLat, qLon, radius) {
		d := geo.CalculateHaversineDistance(qLat, qLon, c.lat, c.lon)
		if d < bestDist || (d == bestDist && c.name < best.name) {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}
