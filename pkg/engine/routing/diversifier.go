package routing

import (
	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"go.uber.org/zap"
)

// Strategy. which search produced a candidate.
type Strategy uint8

const (
	DIRECT_BEST_FIRST Strategy = iota
	ENRICHED_BEST_FIRST
	ENRICHED_ASTAR
)

func (s Strategy) String() string {
	switch s {
	case DIRECT_BEST_FIRST:
		return "direct_best_first"
	case ENRICHED_BEST_FIRST:
		return "best_first"
	case ENRICHED_ASTAR:
		return "astar"
	default:
		return "unknown"
	}
}

type Candidate struct {
	Path     da.Path
	Strategy Strategy
}

// Candidates. ranked in discovery order. index 0 is the recommended route.
type Candidates struct {
	Routes    []Candidate
	Graph     *da.Graph
	Synthesis SynthesisResult
}

func (c *Candidates) Paths() []da.Path {
	paths := make([]da.Path, 0, len(c.Routes))
	for _, r := range c.Routes {
		paths = append(paths, r.Path)
	}
	return paths
}

func (c *Candidates) Len() int {
	return len(c.Routes)
}

func (c *Candidates) add(p da.Path, s Strategy) bool {
	if len(c.Routes) >= pkg.MAX_CANDIDATE_ROUTES || da.ContainsPath(c.Paths(), p) {
		return false
	}
	c.Routes = append(c.Routes, Candidate{Path: p, Strategy: s})
	return true
}

// NewSeedGraph. 2-node graph start -> end weighted by PreferredDistanceKm.
func (re *RoutingEngine) NewSeedGraph(startLoc, endLoc da.Location) *da.Graph {
	graph := da.NewGraph()
	graph.AddNode(pkg.START_NODE_ID, startLoc)
	graph.AddNode(pkg.END_NODE_ID, endLoc)
	graph.AddEdge(pkg.START_NODE_ID, pkg.END_NODE_ID, re.PreferredDistanceKm(startLoc, endLoc))
	return graph
}

// Diversify. best-first on the seed graph, synthesize, best-first again, then A*.
// a path identical to an already collected one is dropped.
func (re *RoutingEngine) Diversify(startLoc, endLoc da.Location, routeType pkg.RouteType) *Candidates {
	graph := re.NewSeedGraph(startLoc, endLoc)
	c := &Candidates{
		Routes: make([]Candidate, 0, pkg.MAX_CANDIDATE_ROUTES),
		Graph:  graph,
	}

	if p, ok := re.FindBestFirstPath(graph, pkg.START_NODE_ID, pkg.END_NODE_ID); ok {
		c.add(p, DIRECT_BEST_FIRST)
	}

	c.Synthesis = re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, startLoc, endLoc, routeType)

	if p, ok := re.FindBestFirstPath(graph, pkg.START_NODE_ID, pkg.END_NODE_ID); ok {
		c.add(p, ENRICHED_BEST_FIRST)
	}
	if p, ok := re.FindShortestPath(graph, pkg.START_NODE_ID, pkg.END_NODE_ID); ok {
		c.add(p, ENRICHED_ASTAR)
	}

	re.logger.Debug("candidate routes generated",
		zap.String("start", startLoc.GetName()), zap.String("end", endLoc.GetName()),
		zap.String("route_type", routeType.String()), zap.Int("nodes", graph.NumberOfNodes()),
		zap.Int("candidates", c.Len()))
	return c
}

// GenerateCandidateRoutes. 0..3 distinct paths, recommended first.
func (re *RoutingEngine) GenerateCandidateRoutes(startLoc, endLoc da.Location, routeType pkg.RouteType) []da.Path {
	return re.Diversify(startLoc, endLoc, routeType).Paths()
}
