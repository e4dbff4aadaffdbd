package datastructure

// Path. node ids from start to end
type Path []string

func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) Len() int {
	return len(p)
}

// Weight. sum of edge weights along the path, false if some hop has no edge in g.
func (p Path) Weight(g *Graph) (float64, bool) {
	total := 0.0
	for i := 0; i+1 < len(p); i++ {
		w, ok := g.EdgeWeight(p[i], p[i+1])
		if !ok {
			return 0, false
		}
		total += w
	}
	return total, true
}

func (p Path) Locations(g *Graph) []Location {
	locs := make([]Location, 0, len(p))
	for _, id := range p {
		if n, ok := g.GetNode(id); ok {
			locs = append(locs, n.GetLocation())
		}
	}
	return locs
}

func ContainsPath(paths []Path, p Path) bool {
	for _, q := range paths {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
