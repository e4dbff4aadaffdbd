package routing

import (
	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"go.uber.org/zap"
)

// Astar. cost-optimal search, f = g + h with h = PreferredDistanceKm(node, end).
// curated distances can overestimate the remaining cost, so popping end does not stop the search:
// open nodes are still expanded while their g is below g(end), and settled nodes are reopened on a cheaper g.
type Astar struct {
	engine *RoutingEngine
	graph  *da.Graph

	info map[string]*VertexInfo
	pq   *da.MinHeap[string]

	numSettledNodes int
}

func NewAstar(engine *RoutingEngine, graph *da.Graph) *Astar {
	return &Astar{
		engine: engine,
		graph:  graph,
		info:   make(map[string]*VertexInfo, graph.NumberOfNodes()),
		pq:     da.NewFourAryHeap[string](),
	}
}

func (as *Astar) GetNumSettledNodes() int {
	return as.numSettledNodes
}

// GetTravelCost. g value of id after the search, INF_WEIGHT if unreached.
func (as *Astar) GetTravelCost(id string) float64 {
	vi, ok := as.info[id]
	if !ok {
		return pkg.INF_WEIGHT
	}
	return vi.GetTravelCost()
}

func (as *Astar) vertexInfo(id string) *VertexInfo {
	vi, ok := as.info[id]
	if !ok {
		vi = newUnreachedVertexInfo()
		as.info[id] = vi
	}
	return vi
}

func (as *Astar) FindPath(startId, endId string) (da.Path, error) {
	if startId == endId {
		return nil, ErrNoPathFound
	}
	start, ok := as.graph.GetNode(startId)
	if !ok {
		return nil, ErrNodeNotFound
	}
	end, ok := as.graph.GetNode(endId)
	if !ok {
		return nil, ErrNodeNotFound
	}
	target := end.GetLocation()

	as.pq.Preallocate(as.graph.NumberOfNodes())
	startInfo := NewVertexInfo(0, noParent)
	startInfo.pqNode = da.NewPriorityQueueNode(as.engine.PreferredDistanceKm(start.GetLocation(), target), startId)
	as.info[startId] = startInfo
	as.pq.Insert(startInfo.pqNode)

	for !as.pq.IsEmpty() {
		item, _ := as.pq.ExtractMin()
		u := item.GetItem()
		gU := as.info[u].GetTravelCost()
		if u == endId {
			// end popped: anything still open must beat g(end) to matter.
			continue
		}
		if gU >= as.GetTravelCost(endId) {
			continue
		}
		as.numSettledNodes++

		uNode, _ := as.graph.GetNode(u)
		for _, e := range uNode.GetEdges() {
			v := e.GetTo()
			vNode, ok := as.graph.GetNode(v)
			if !ok {
				return nil, ErrNodeNotFound
			}

			tentativeG := gU + e.GetWeight()
			vi := as.vertexInfo(v)
			if tentativeG >= vi.GetTravelCost() || tentativeG >= as.GetTravelCost(endId) {
				continue
			}
			vi.setTravelCost(tentativeG)
			vi.setParent(u)

			f := tentativeG + as.engine.PreferredDistanceKm(vNode.GetLocation(), target)
			if vi.inOpenSet() {
				_ = as.pq.DecreaseKey(vi.pqNode, f)
			} else {
				vi.pqNode = da.NewPriorityQueueNode(f, v)
				as.pq.Insert(vi.pqNode)
			}
		}
	}

	if as.GetTravelCost(endId) >= pkg.INF_WEIGHT {
		return nil, ErrNoPathFound
	}
	path, ok := reconstructPath(as.info, startId, endId)
	if !ok {
		return nil, ErrNoPathFound
	}
	return path, nil
}

// FindShortestPath. minimum edge-weight-sum path from startId to endId (A*).
func (re *RoutingEngine) FindShortestPath(graph *da.Graph, startId, endId string) (da.Path, bool) {
	path, err := NewAstar(re, graph).FindPath(startId, endId)
	if err != nil {
		re.logger.Debug("a* search found no path",
			zap.String("start", startId), zap.String("end", endId), zap.Error(err))
		return nil, false
	}
	return path, true
}
