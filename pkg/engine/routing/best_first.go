package routing

import (
	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"go.uber.org/zap"
)

// BestFirst. greedy best-first search, open set ordered by h = PreferredDistanceKm(node, end) only.
// predecessor is first-writer-wins and nodes are never relaxed, so the path is not necessarily the cheapest.
type BestFirst struct {
	engine *RoutingEngine
	graph  *da.Graph

	info   map[string]*VertexInfo
	closed map[string]struct{}
	pq     *da.MinHeap[string]

	numSettledNodes int
}

func NewBestFirst(engine *RoutingEngine, graph *da.Graph) *BestFirst {
	return &BestFirst{
		engine: engine,
		graph:  graph,
		info:   make(map[string]*VertexInfo, graph.NumberOfNodes()),
		closed: make(map[string]struct{}, graph.NumberOfNodes()),
		pq:     da.NewBinaryHeap[string](),
	}
}

func (bf *BestFirst) GetNumSettledNodes() int {
	return bf.numSettledNodes
}

func (bf *BestFirst) FindPath(startId, endId string) (da.Path, error) {
	if startId == endId {
		return nil, ErrNoPathFound
	}
	_, ok := bf.graph.GetNode(startId)
	if !ok {
		return nil, ErrNodeNotFound
	}
	end, ok := bf.graph.GetNode(endId)
	if !ok {
		return nil, ErrNodeNotFound
	}
	target := end.GetLocation()

	bf.pq.Preallocate(bf.graph.NumberOfNodes())
	bf.info[startId] = NewVertexInfo(0, noParent)
	bf.pq.Insert(da.NewPriorityQueueNode(0, startId))

	for !bf.pq.IsEmpty() {
		item, _ := bf.pq.ExtractMin()
		u := item.GetItem()
		if _, done := bf.closed[u]; done {
			continue
		}
		if u == endId {
			path, ok := reconstructPath(bf.info, startId, endId)
			if !ok {
				return nil, ErrNoPathFound
			}
			return path, nil
		}
		bf.closed[u] = struct{}{}
		bf.numSettledNodes++

		uNode, _ := bf.graph.GetNode(u)
		for _, e := range uNode.GetEdges() {
			v := e.GetTo()
			if _, done := bf.closed[v]; done {
				continue
			}
			vNode, ok := bf.graph.GetNode(v)
			if !ok {
				return nil, ErrNodeNotFound
			}
			if vi, seen := bf.info[v]; seen && vi.hasParent() {
				continue
			}
			bf.info[v] = NewVertexInfo(pkg.INF_WEIGHT, u)
			h := bf.engine.PreferredDistanceKm(vNode.GetLocation(), target)
			bf.pq.Insert(da.NewPriorityQueueNode(h, v))
		}
	}
	return nil, ErrNoPathFound
}

// FindBestFirstPath. "direct path" strategy. false when no path exists or the graph is malformed.
func (re *RoutingEngine) FindBestFirstPath(graph *da.Graph, startId, endId string) (da.Path, bool) {
	path, err := NewBestFirst(re, graph).FindPath(startId, endId)
	if err != nil {
		re.logger.Debug("best-first search found no path",
			zap.String("start", startId), zap.String("end", endId), zap.Error(err))
		return nil, false
	}
	return path, true
}
