package routing

import (
	"testing"

	"github.com/lintang-b-s/routesynth/pkg"
	"github.com/lintang-b-s/routesynth/pkg/curated"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	surabaya = da.NewLocation("Surabaya", -7.2575, 112.7521)
	malang   = da.NewLocation("Malang", -7.9666, 112.6326)
	gresik   = da.NewLocation("Gresik", -7.1539, 112.6561)
	lamongan = da.NewLocation("Lamongan", -7.1167, 112.4167)
	// no curated data for this pair
	kediri = da.NewLocation("Kediri", -7.8480, 112.0178)
	blitar = da.NewLocation("Blitar", -8.0955, 112.1609)
)

func newTestEngine() *RoutingEngine {
	return NewRoutingEngine(curated.DefaultTables(), zap.NewNop())
}

func TestPreferredDistanceKm(t *testing.T) {
	re := newTestEngine()

	testCases := []struct {
		name  string
		a, b  da.Location
		want  float64
		delta float64
	}{
		{name: "curated forward", a: surabaya, b: malang, want: 95.0},
		{name: "curated reverse", a: malang, b: surabaya, want: 95.0},
		{
			name: "curated ignores coordinates",
			a:    da.NewLocation("Surabaya, East Java, Indonesia", 0, 0),
			b:    da.NewLocation("Malang", 10, 10),
			want: 95.0,
		},
		{name: "haversine fallback", a: kediri, b: blitar, want: GreatCircleDistanceKm(-7.8480, 112.0178, -8.0955, 112.1609), delta: 1e-9},
		{name: "same point", a: kediri, b: kediri, want: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, re.PreferredDistanceKm(tt.a, tt.b), tt.delta)
		})
	}

	t.Run("no tables", func(t *testing.T) {
		plain := NewRoutingEngine(nil, nil)
		_, ok := plain.CuratedDistanceKm(surabaya, malang)
		assert.False(t, ok)
		assert.InDelta(t, 79.94, plain.PreferredDistanceKm(surabaya, malang), 0.05)
	})
}

func TestSearchOnSeedGraph(t *testing.T) {
	re := newTestEngine()
	graph := re.NewSeedGraph(surabaya, malang)

	w, ok := graph.EdgeWeight(pkg.START_NODE_ID, pkg.END_NODE_ID)
	require.True(t, ok)
	assert.Equal(t, 95.0, w)

	bf, ok := re.FindBestFirstPath(graph, pkg.START_NODE_ID, pkg.END_NODE_ID)
	require.True(t, ok)
	assert.Equal(t, da.Path{pkg.START_NODE_ID, pkg.END_NODE_ID}, bf)

	as, ok := re.FindShortestPath(graph, pkg.START_NODE_ID, pkg.END_NODE_ID)
	require.True(t, ok)
	assert.Equal(t, da.Path{pkg.START_NODE_ID, pkg.END_NODE_ID}, as)
}

// greedyTrapGraph. best-first follows the node closest to the target (a) even though the
// path through b is far cheaper.
func greedyTrapGraph() *da.Graph {
	g := da.NewGraph()
	g.AddNode("s", da.NewLocation("s", 0, 0))
	g.AddNode("t", da.NewLocation("t", 0, 2))
	g.AddNode("a", da.NewLocation("a", 0, 1.9))
	g.AddNode("b", da.NewLocation("b", 1, 1))
	g.AddEdge("s", "a", 100)
	g.AddEdge("a", "t", 100)
	g.AddEdge("s", "b", 1)
	g.AddEdge("b", "t", 1)
	return g
}

func TestBestFirstVersusAstar(t *testing.T) {
	re := NewRoutingEngine(nil, zap.NewNop())
	g := greedyTrapGraph()

	bf, err := NewBestFirst(re, g).FindPath("s", "t")
	require.NoError(t, err)
	assert.Equal(t, da.Path{"s", "a", "t"}, bf)

	astar := NewAstar(re, g)
	as, err := astar.FindPath("s", "t")
	require.NoError(t, err)
	assert.Equal(t, da.Path{"s", "b", "t"}, as)
	assert.InDelta(t, 2.0, astar.GetTravelCost("t"), 1e-9)

	bfWeight, _ := bf.Weight(g)
	asWeight, _ := as.Weight(g)
	assert.LessOrEqual(t, asWeight, bfWeight)
}

func TestAstarWithOverestimatingCuratedHeuristic(t *testing.T) {
	// curated distance far above the real edge costs
	tables := curated.NewTablesBuilder().
		AddSymmetricDistance("Mid", "Dst", 500).
		Build()
	re := NewRoutingEngine(tables, zap.NewNop())

	g := da.NewGraph()
	g.AddNode("s", da.NewLocation("Src", 0, 0))
	g.AddNode("t", da.NewLocation("Dst", 0, 1))
	g.AddNode("m", da.NewLocation("Mid", 0, 0.5))
	g.AddEdge("s", "t", 200)
	g.AddEdge("s", "m", 10)
	g.AddEdge("m", "t", 10)

	astar := NewAstar(re, g)
	path, err := astar.FindPath("s", "t")
	require.NoError(t, err)
	assert.Equal(t, da.Path{"s", "m", "t"}, path)
	assert.InDelta(t, 20.0, astar.GetTravelCost("t"), 1e-9)
}

func TestSearchErrors(t *testing.T) {
	re := newTestEngine()

	onlyStart := da.NewGraph()
	onlyStart.AddNode("start", surabaya)

	dangling := da.NewGraph()
	dangling.AddNode("start", surabaya)
	dangling.AddNode("end", malang)
	dangling.AddEdge("start", "ghost", 1)
	dangling.AddEdge("start", "end", 95)

	disconnected := da.NewGraph()
	disconnected.AddNode("start", surabaya)
	disconnected.AddNode("end", malang)

	testCases := []struct {
		name       string
		graph      *da.Graph
		start, end string
		wantErr    error
	}{
		{name: "missing end", graph: onlyStart, start: "start", end: "end", wantErr: ErrNodeNotFound},
		{name: "missing start", graph: onlyStart, start: "nowhere", end: "start", wantErr: ErrNodeNotFound},
		{name: "dangling edge", graph: dangling, start: "start", end: "end", wantErr: ErrNodeNotFound},
		{name: "no edges", graph: disconnected, start: "start", end: "end", wantErr: ErrNoPathFound},
		{name: "start equals end", graph: disconnected, start: "start", end: "start", wantErr: ErrNoPathFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBestFirst(re, tt.graph).FindPath(tt.start, tt.end)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = NewAstar(re, tt.graph).FindPath(tt.start, tt.end)
			assert.ErrorIs(t, err, tt.wantErr)

			_, ok := re.FindBestFirstPath(tt.graph, tt.start, tt.end)
			assert.False(t, ok)
			_, ok = re.FindShortestPath(tt.graph, tt.start, tt.end)
			assert.False(t, ok)
		})
	}
}

func TestSynthesizeWaypoints(t *testing.T) {
	re := newTestEngine()

	testCases := []struct {
		name         string
		start, end   da.Location
		routeType    pkg.RouteType
		wantTopology Topology
		wantIds      []string
	}{
		{
			name: "curated chain", start: surabaya, end: malang, routeType: pkg.FASTEST,
			wantTopology: TopologyChained,
			wantIds:      []string{"intermediate_0", "intermediate_1", "intermediate_2", "intermediate_3"},
		},
		{
			name: "curated chain wins over route type", start: surabaya, end: malang, routeType: pkg.AVOID_TOLLS,
			wantTopology: TopologyChained,
			wantIds:      []string{"intermediate_0", "intermediate_1", "intermediate_2", "intermediate_3"},
		},
		{
			name: "named waypoints", start: surabaya, end: gresik, routeType: pkg.FASTEST,
			wantTopology: TopologyStar,
			wantIds:      []string{"known_waypoint1", "known_waypoint2"},
		},
		{
			name: "avoid tolls", start: kediri, end: blitar, routeType: pkg.AVOID_TOLLS,
			wantTopology: TopologyOffsetChain,
			wantIds:      []string{"waypoint1", "waypoint2", "waypoint3"},
		},
		{
			name: "scenic", start: kediri, end: blitar, routeType: pkg.SCENIC,
			wantTopology: TopologyOffsetChain,
			wantIds:      []string{"waypoint1", "waypoint2", "waypoint3"},
		},
		{
			name: "fastest", start: kediri, end: blitar, routeType: pkg.FASTEST,
			wantTopology: TopologyOffsetFan,
			wantIds:      []string{"waypoint1", "waypoint2"},
		},
		{
			name: "shortest", start: kediri, end: blitar, routeType: pkg.SHORTEST,
			wantTopology: TopologyOffsetFan,
			wantIds:      []string{"waypoint1", "waypoint2"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			graph := re.NewSeedGraph(tt.start, tt.end)
			res := re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, tt.start, tt.end, tt.routeType)

			assert.Equal(t, tt.wantTopology, res.Topology)
			assert.Equal(t, tt.wantIds, res.AddedNodeIds)
			assert.Equal(t, 2+len(tt.wantIds), graph.NumberOfNodes())
			if tt.wantTopology == TopologyChained {
				return
			}
			for _, id := range res.AddedNodeIds {
				_, ok := graph.EdgeWeight(id, pkg.END_NODE_ID)
				assert.True(t, ok, "%s should reach end", id)
			}
		})
	}

	t.Run("start node missing", func(t *testing.T) {
		graph := da.NewGraph()
		graph.AddNode(pkg.END_NODE_ID, malang)
		res := re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, surabaya, malang, pkg.FASTEST)
		assert.Equal(t, TopologyNone, res.Topology)
		assert.Equal(t, 0, res.NumAddedNodes())
		assert.Equal(t, 1, graph.NumberOfNodes())
	})
}

func TestSynthesizedChainEdges(t *testing.T) {
	re := newTestEngine()
	graph := re.NewSeedGraph(surabaya, malang)
	res := re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, surabaya, malang, pkg.FASTEST)

	assert.Equal(t, []string{"Sidoarjo", "Porong", "Pandaan", "Lawang"}, res.IntermediateCities)
	assert.True(t, res.Topology.Curated())

	// Surabaya -> Sidoarjo is curated
	w, ok := graph.EdgeWeight(pkg.START_NODE_ID, "intermediate_0")
	require.True(t, ok)
	assert.Equal(t, 25.0, w)

	_, ok = graph.EdgeWeight("intermediate_0", "intermediate_1")
	assert.True(t, ok)
	_, ok = graph.EdgeWeight("intermediate_3", pkg.END_NODE_ID)
	assert.True(t, ok)
	_, ok = graph.EdgeWeight("intermediate_0", pkg.END_NODE_ID)
	assert.False(t, ok)
}

func TestSynthesizedStarPlacement(t *testing.T) {
	re := newTestEngine()
	graph := re.NewSeedGraph(surabaya, gresik)
	re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, surabaya, gresik, pkg.SHORTEST)

	n, ok := graph.GetNode("known_waypoint1")
	require.True(t, ok)
	assert.Equal(t, "Tandes", n.GetLocation().GetName())
	assert.InDelta(t, -7.2575+(-7.1539+7.2575)/3, n.GetLocation().GetLat(), 1e-9)
	assert.InDelta(t, 112.7521+(112.6561-112.7521)/3, n.GetLocation().GetLon(), 1e-9)

	_, ok = graph.EdgeWeight(pkg.START_NODE_ID, "known_waypoint2")
	assert.True(t, ok)
	_, ok = graph.EdgeWeight("known_waypoint1", "known_waypoint2")
	assert.False(t, ok)
}

func TestSynthesizedOffsets(t *testing.T) {
	re := newTestEngine()

	testCases := []struct {
		name      string
		routeType pkg.RouteType
		id        string
		fraction  float64
		latOff    float64
		lonOff    float64
	}{
		{name: "avoid tolls odd", routeType: pkg.AVOID_TOLLS, id: "waypoint1", fraction: 0.25, latOff: -0.01, lonOff: 0.01},
		{name: "avoid tolls even", routeType: pkg.AVOID_TOLLS, id: "waypoint2", fraction: 0.5, latOff: 0.01, lonOff: -0.01},
		{name: "scenic doubles the offset", routeType: pkg.SCENIC, id: "waypoint3", fraction: 0.75, latOff: -0.02, lonOff: 0.02},
		{name: "fan odd", routeType: pkg.FASTEST, id: "waypoint1", fraction: 1.0 / 3, latOff: -0.005, lonOff: 0.005},
		{name: "fan even", routeType: pkg.FASTEST, id: "waypoint2", fraction: 2.0 / 3, latOff: 0.005, lonOff: -0.005},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			graph := re.NewSeedGraph(kediri, blitar)
			re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, kediri, blitar, tt.routeType)

			n, ok := graph.GetNode(tt.id)
			require.True(t, ok)
			wantLat := kediri.GetLat() + (blitar.GetLat()-kediri.GetLat())*tt.fraction + tt.latOff
			wantLon := kediri.GetLon() + (blitar.GetLon()-kediri.GetLon())*tt.fraction + tt.lonOff
			assert.InDelta(t, wantLat, n.GetLocation().GetLat(), 1e-9)
			assert.InDelta(t, wantLon, n.GetLocation().GetLon(), 1e-9)
		})
	}

	t.Run("offset chain edges", func(t *testing.T) {
		graph := re.NewSeedGraph(kediri, blitar)
		re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, kediri, blitar, pkg.AVOID_TOLLS)

		_, ok := graph.EdgeWeight(pkg.START_NODE_ID, "waypoint1")
		assert.True(t, ok)
		_, ok = graph.EdgeWeight(pkg.START_NODE_ID, "waypoint2")
		assert.False(t, ok)
		_, ok = graph.EdgeWeight("waypoint2", "waypoint3")
		assert.True(t, ok)
	})

	t.Run("fan edges", func(t *testing.T) {
		graph := re.NewSeedGraph(kediri, blitar)
		re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, kediri, blitar, pkg.FASTEST)

		_, ok := graph.EdgeWeight(pkg.START_NODE_ID, "waypoint2")
		assert.True(t, ok)
		_, ok = graph.EdgeWeight("waypoint1", "waypoint2")
		assert.True(t, ok)
		_, ok = graph.EdgeWeight("waypoint2", "waypoint1")
		assert.False(t, ok)
	})
}

func TestSynthesizedWaypointNames(t *testing.T) {
	re := newTestEngine()

	testCases := []struct {
		name       string
		start, end da.Location
		want       []string
	}{
		{
			name: "curated area names", start: surabaya, end: lamongan,
			want: []string{"Gresik", "Cerme", "Duduk Sampeyan"},
		},
		{
			name: "generated names", start: kediri, end: blitar,
			want: []string{"Kediri to Blitar (via Area 1)", "Kediri to Blitar (via Area 2)", "Kediri to Blitar (via Area 3)"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			graph := re.NewSeedGraph(tt.start, tt.end)
			res := re.SynthesizeWaypoints(graph, pkg.START_NODE_ID, pkg.END_NODE_ID, tt.start, tt.end, pkg.AVOID_TOLLS)

			names := make([]string, 0, len(res.AddedNodeIds))
			for _, id := range res.AddedNodeIds {
				n, _ := graph.GetNode(id)
				names = append(names, n.GetLocation().GetName())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDiversify(t *testing.T) {
	re := newTestEngine()

	t.Run("surabaya to malang", func(t *testing.T) {
		c := re.Diversify(surabaya, malang, pkg.FASTEST)

		assert.Equal(t, TopologyChained, c.Synthesis.Topology)
		require.Equal(t, 2, c.Len())
		assert.Equal(t, da.Path{pkg.START_NODE_ID, pkg.END_NODE_ID}, c.Routes[0].Path)
		assert.Equal(t, DIRECT_BEST_FIRST, c.Routes[0].Strategy)

		chain := da.Path{pkg.START_NODE_ID, "intermediate_0", "intermediate_1", "intermediate_2", "intermediate_3", pkg.END_NODE_ID}
		assert.True(t, da.ContainsPath(c.Paths(), chain))
		assert.Equal(t, ENRICHED_ASTAR, c.Routes[1].Strategy)

		chainWeight, ok := chain.Weight(c.Graph)
		require.True(t, ok)
		assert.Less(t, chainWeight, 95.0)
	})

	testCases := []struct {
		name      string
		start     da.Location
		end       da.Location
		routeType pkg.RouteType
		wantAdded int
	}{
		{name: "fastest without curated data", start: kediri, end: blitar, routeType: pkg.FASTEST, wantAdded: 2},
		{name: "shortest without curated data", start: kediri, end: blitar, routeType: pkg.SHORTEST, wantAdded: 2},
		{name: "avoid tolls without curated data", start: kediri, end: blitar, routeType: pkg.AVOID_TOLLS, wantAdded: 3},
		{name: "scenic without curated data", start: kediri, end: blitar, routeType: pkg.SCENIC, wantAdded: 3},
		{name: "reverse curated pair", start: malang, end: surabaya, routeType: pkg.SCENIC, wantAdded: 4},
		{name: "named waypoints", start: surabaya, end: gresik, routeType: pkg.FASTEST, wantAdded: 2},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := re.Diversify(tt.start, tt.end, tt.routeType)

			assert.Equal(t, tt.wantAdded, c.Synthesis.NumAddedNodes())
			assert.GreaterOrEqual(t, c.Len(), 1)
			assert.LessOrEqual(t, c.Len(), pkg.MAX_CANDIDATE_ROUTES)

			paths := c.Paths()
			for i := range paths {
				assert.Equal(t, pkg.START_NODE_ID, paths[i][0])
				assert.Equal(t, pkg.END_NODE_ID, paths[i][len(paths[i])-1])
				for j := i + 1; j < len(paths); j++ {
					assert.False(t, paths[i].Equal(paths[j]), "duplicate candidate %v", paths[i])
				}
			}

			bf, ok := re.FindBestFirstPath(c.Graph, pkg.START_NODE_ID, pkg.END_NODE_ID)
			require.True(t, ok)
			as, ok := re.FindShortestPath(c.Graph, pkg.START_NODE_ID, pkg.END_NODE_ID)
			require.True(t, ok)
			bfWeight, _ := bf.Weight(c.Graph)
			asWeight, _ := as.Weight(c.Graph)
			assert.LessOrEqual(t, asWeight, bfWeight+1e-9)
		})
	}

	t.Run("generate candidate routes matches diversify", func(t *testing.T) {
		paths := re.GenerateCandidateRoutes(surabaya, malang, pkg.FASTEST)
		assert.Equal(t, re.Diversify(surabaya, malang, pkg.FASTEST).Paths(), paths)
	})
}
