package routing

import (
	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
)

const noParent = ""

// VertexInfo. search label of one node: accumulated cost, predecessor and its open-set entry.
type VertexInfo struct {
	travelCost float64
	parent     string
	pqNode     *da.PriorityQueueNode[string]
}

func NewVertexInfo(travelCost float64, parent string) *VertexInfo {
	return &VertexInfo{
		travelCost: travelCost,
		parent:     parent,
	}
}

func newUnreachedVertexInfo() *VertexInfo {
	return NewVertexInfo(pkg.INF_WEIGHT, noParent)
}

func (vi *VertexInfo) GetTravelCost() float64 {
	return vi.travelCost
}

func (vi *VertexInfo) GetParent() string {
	return vi.parent
}

func (vi *VertexInfo) hasParent() bool {
	return vi.parent != noParent
}

func (vi *VertexInfo) setTravelCost(c float64) {
	vi.travelCost = c
}

func (vi *VertexInfo) setParent(p string) {
	vi.parent = p
}

// inOpenSet. ExtractMin sets pos to -1.
func (vi *VertexInfo) inOpenSet() bool {
	return vi.pqNode != nil && vi.pqNode.GetPos() >= 0
}
