package costfunction

import (
	"github.com/lintang-b-s/routesynth/pkg"
)

// EdgeAttributes. anything with a length in km.
type EdgeAttributes interface {
	GetLength() float64
}

type CostFunction interface {
	GetWeight(e EdgeAttributes, routeType pkg.RouteType) float64
}

// Segment. plain EdgeAttributes for a distance known only as a number.
type Segment float64

func (s Segment) GetLength() float64 {
	return float64(s)
}
