package datastructure

// Edge. directed edge (tail -> to). arah edge = urutan konstruksi, bukan topologi jalan.
type Edge struct {
	to     string
	weight float64
}

func NewEdge(to string, weightKm float64) Edge {
	return Edge{to: to, weight: weightKm}
}

func (e Edge) GetTo() string {
	return e.to
}

// GetWeight. km
func (e Edge) GetWeight() float64 {
	return e.weight
}

type Node struct {
	id       string
	location Location
	edges    []Edge
}

func newNode(id string, loc Location) *Node {
	return &Node{id: id, location: loc, edges: make([]Edge, 0, 2)}
}

func (n *Node) GetId() string {
	return n.id
}

func (n *Node) GetLocation() Location {
	return n.location
}

func (n *Node) GetEdges() []Edge {
	return n.edges
}

func (n *Node) OutDegree() int {
	return len(n.edges)
}

// Graph. per-query graph, append-only: node & edge tidak pernah dihapus.
type Graph struct {
	nodes map[string]*Node
	order []string
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		order: make([]string, 0, 8),
	}
}

// AddNode. returns false when id already exists; the existing node is kept.
func (g *Graph) AddNode(id string, loc Location) bool {
	if _, ok := g.nodes[id]; ok {
		return false
	}
	g.nodes[id] = newNode(id, loc)
	g.order = append(g.order, id)
	return true
}

// AddEdge. tail must exist, head is not checked so a dangling reference is representable.
func (g *Graph) AddEdge(from, to string, weightKm float64) bool {
	n, ok := g.nodes[from]
	if !ok {
		return false
	}
	n.edges = append(n.edges, NewEdge(to, weightKm))
	return true
}

func (g *Graph) GetNode(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	m := 0
	for _, n := range g.nodes {
		m += len(n.edges)
	}
	return m
}

// NodeIds. insertion order
func (g *Graph) NodeIds() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

func (g *Graph) ForOutEdgesOf(id string, handle func(e Edge)) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, e := range n.edges {
		handle(e)
	}
}

// EdgeWeight. weight of the first edge from -> to
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	n, ok := g.nodes[from]
	if !ok {
		return 0, false
	}
	for _, e := range n.edges {
		if e.to == to {
			return e.weight, true
		}
	}
	return 0, false
}
