package costfunction

import (
	"math"
	"testing"

	"github.com/lintang-b-s/routesynth/pkg"
	"github.com/stretchr/testify/assert"
)

func TestTravelMinutes(t *testing.T) {
	tf := NewTimeCostFunction()

	testCases := []struct {
		name      string
		km        float64
		routeType pkg.RouteType
		want      float64
	}{
		{name: "fastest 60 km/h", km: 95, routeType: pkg.FASTEST, want: 95},
		{name: "shortest 50 km/h", km: 100, routeType: pkg.SHORTEST, want: 120},
		{name: "avoid tolls 45 km/h", km: 45, routeType: pkg.AVOID_TOLLS, want: 60},
		{name: "scenic 40 km/h", km: 10, routeType: pkg.SCENIC, want: 15},
		{name: "zero distance", km: 0, routeType: pkg.FASTEST, want: 0},
		{name: "negative distance", km: -3, routeType: pkg.FASTEST, want: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tf.TravelMinutes(tt.km, tt.routeType), 1e-9)
			assert.InDelta(t, tt.want, tf.GetWeight(Segment(tt.km), tt.routeType), 1e-9)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		minutes float64
		want    string
	}{
		{minutes: 0, want: "0 min"},
		{minutes: 59.9, want: "59 min"},
		{minutes: 60, want: "1 hr 0 min"},
		{minutes: 95, want: "1 hr 35 min"},
		{minutes: 130.7, want: "2 hr 10 min"},
		{minutes: -4, want: "0 min"},
		{minutes: math.NaN(), want: "0 min"},
	}

	for _, tt := range testCases {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.minutes))
		})
	}
}
