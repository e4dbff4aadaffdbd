package costfunction

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/routesynth/pkg"
)

// TimeFunction. travel time (minutes) at the assumed speed of a route type.
type TimeFunction struct {
}

func NewTimeCostFunction() *TimeFunction {
	return &TimeFunction{}
}

// GetWeight. minutes
func (tf *TimeFunction) GetWeight(e EdgeAttributes, routeType pkg.RouteType) float64 {
	return tf.TravelMinutes(e.GetLength(), routeType)
}

func (tf *TimeFunction) TravelMinutes(distanceKm float64, routeType pkg.RouteType) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return distanceKm / routeType.Speed() * 60
}

// FormatDuration. "<h> hr <m> min", or "<m> min" under one hour. minutes are truncated.
func FormatDuration(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) {
		minutes = 0
	}
	total := int(minutes)
	hours, mins := total/60, total%60
	if hours > 0 {
		return fmt.Sprintf("%d hr %d min", hours, mins)
	}
	return fmt.Sprintf("%d min", mins)
}
