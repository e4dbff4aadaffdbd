package routing

import (
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
)

// reconstructPath. follow predecessors from endId back to startId, then reverse.
// returns false if the chain is broken or loops.
func reconstructPath(info map[string]*VertexInfo, startId, endId string) (da.Path, bool) {
	path := make(da.Path, 0, len(info))
	seen := make(map[string]struct{}, len(info))

	cur := endId
	for {
		if _, ok := seen[cur]; ok {
			return nil, false
		}
		seen[cur] = struct{}{}
		path = append(path, cur)
		if cur == startId {
			break
		}
		vi, ok := info[cur]
		if !ok || !vi.hasParent() {
			return nil, false
		}
		cur = vi.GetParent()
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
