package guidance

import (
	"fmt"
	"math"
	"strings"

	"github.com/lintang-b-s/routesynth/pkg/util"
)

const (
	tollMarker      = "Tol"
	kmPerSegment    = 30.0
	minSegments     = 1
	maxSegments     = 10
	alternativeRoad = "Jalan Alternatif"
)

// GenerateRoadSegments. deterministic road names when no lookup has data.
// "Jalan Raya <start>", one segment per intermediate city (or numbered generic segments), "Jalan Masuk <end>".
func GenerateRoadSegments(startCity, endCity string, intermediateCities []string, distanceKm float64) []string {
	roads := make([]string, 0, len(intermediateCities)+maxSegments+2)
	roads = append(roads, "Jalan Raya "+startCity)

	if len(intermediateCities) > 0 {
		prev := startCity
		for i, city := range intermediateCities {
			if i%3 == 2 {
				roads = append(roads, fmt.Sprintf("%s %s-%s", tollMarker, prev, city))
			} else {
				roads = append(roads, fmt.Sprintf("Jalan Raya %s-%s", prev, city))
			}
			prev = city
		}
	} else {
		n := NumGenericSegments(distanceKm)
		for i := 1; i <= n; i++ {
			switch {
			case i%3 == 0:
				roads = append(roads, fmt.Sprintf("Jalan Lintas %s-%s (Segmen %d)", startCity, endCity, i))
			case i%2 == 0:
				roads = append(roads, fmt.Sprintf("Jalan Kabupaten %d", i))
			default:
				roads = append(roads, fmt.Sprintf("Jalan Provinsi %s-%s", startCity, endCity))
			}
		}
	}

	roads = append(roads, "Jalan Masuk "+endCity)
	return roads
}

// NumGenericSegments. clamp(round(distanceKm/30), 1, 10)
func NumGenericSegments(distanceKm float64) int {
	if math.IsNaN(distanceKm) || distanceKm < 0 {
		return minSegments
	}
	return util.ClampInt(int(math.Round(distanceKm/kmPerSegment)), minSegments, maxSegments)
}

// RewriteTollSegments. toll segments become "Jalan Alternatif <rest>", segment count is kept.
func RewriteTollSegments(roads []string) []string {
	rewritten := make([]string, 0, len(roads))
	for _, road := range roads {
		idx := strings.Index(road, tollMarker)
		if idx < 0 {
			rewritten = append(rewritten, road)
			continue
		}
		rest := strings.Fields(road[:idx] + road[idx+len(tollMarker):])
		rewritten = append(rewritten, strings.Join(append([]string{alternativeRoad}, rest...), " "))
	}
	return rewritten
}
