package routing

import (
	"fmt"

	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/geo"
	"go.uber.org/zap"
)

// Topology. shape of the nodes the synthesizer added.
type Topology uint8

const (
	// TopologyNone. nothing added (start or end missing from the graph).
	TopologyNone Topology = iota
	// TopologyChained. curated intermediate chain start -> i0 -> ... -> end.
	TopologyChained
	// TopologyStar. curated named waypoints, each linked from start and to end.
	TopologyStar
	// TopologyOffsetChain. 3 offset waypoints for AVOID_TOLLS / SCENIC.
	TopologyOffsetChain
	// TopologyOffsetFan. 2 offset waypoints, each linked from start.
	TopologyOffsetFan
)

func (t Topology) String() string {
	switch t {
	case TopologyChained:
		return "chained"
	case TopologyStar:
		return "star"
	case TopologyOffsetChain:
		return "offset_chain"
	case TopologyOffsetFan:
		return "offset_fan"
	default:
		return "none"
	}
}

// Curated. true when the added nodes come from curated data.
func (t Topology) Curated() bool {
	return t == TopologyChained || t == TopologyStar
}

type SynthesisResult struct {
	Topology     Topology
	AddedNodeIds []string
	// IntermediateCities. names of the curated chain cities, empty for every other topology.
	IntermediateCities []string
}

func (sr SynthesisResult) NumAddedNodes() int {
	return len(sr.AddedNodeIds)
}

// SynthesizeWaypoints. enrich graph (already holding startId & endId) with intermediate nodes.
// first match wins: curated chain, curated named waypoints, 3 offset waypoints for
// AVOID_TOLLS/SCENIC, 2 offset waypoints otherwise.
func (re *RoutingEngine) SynthesizeWaypoints(graph *da.Graph, startId, endId string, startLoc, endLoc da.Location,
	routeType pkg.RouteType) SynthesisResult {
	if !graph.HasNode(startId) || !graph.HasNode(endId) {
		re.logger.Warn("skip waypoint synthesis, start or end node missing",
			zap.String("start", startId), zap.String("end", endId))
		return SynthesisResult{Topology: TopologyNone}
	}

	startCity, endCity := startLoc.CityKey(), endLoc.CityKey()

	var res SynthesisResult
	if re.tables != nil {
		if points, ok := re.tables.Intermediates(startCity, endCity); ok {
			res = re.addIntermediateChain(graph, startId, endId, startLoc, endLoc, points)
		} else if names, ok := re.tables.NamedWaypoints(startCity, endCity); ok {
			res = re.addNamedWaypoints(graph, startId, endId, startLoc, endLoc, names)
		}
	}

	if res.Topology == TopologyNone {
		switch routeType {
		case pkg.AVOID_TOLLS, pkg.SCENIC:
			res = re.addOffsetChain(graph, startId, endId, startLoc, endLoc, routeType)
		default:
			res = re.addOffsetFan(graph, startId, endId, startLoc, endLoc)
		}
	}

	re.logger.Debug("waypoints synthesized",
		zap.String("start_city", startCity), zap.String("end_city", endCity),
		zap.String("route_type", routeType.String()), zap.String("topology", res.Topology.String()),
		zap.Int("added_nodes", res.NumAddedNodes()))
	return res
}

func (re *RoutingEngine) connect(graph *da.Graph, from, to string) {
	fromNode, _ := graph.GetNode(from)
	toNode, _ := graph.GetNode(to)
	graph.AddEdge(from, to, re.PreferredDistanceKm(fromNode.GetLocation(), toNode.GetLocation()))
}

func (re *RoutingEngine) addIntermediateChain(graph *da.Graph, startId, endId string, startLoc, endLoc da.Location,
	points []curatedPoint) SynthesisResult {
	res := SynthesisResult{
		Topology:           TopologyChained,
		AddedNodeIds:       make([]string, 0, len(points)),
		IntermediateCities: make([]string, 0, len(points)),
	}

	prev := startId
	for i, p := range points {
		id := fmt.Sprintf("%s%d", INTERMEDIATE_NODE_PREFIX, i)
		graph.AddNode(id, p.ToLocation())
		re.connect(graph, prev, id)
		prev = id

		res.AddedNodeIds = append(res.AddedNodeIds, id)
		res.IntermediateCities = append(res.IntermediateCities, p.Name)
	}
	re.connect(graph, prev, endId)
	return res
}

func (re *RoutingEngine) addNamedWaypoints(graph *da.Graph, startId, endId string, startLoc, endLoc da.Location,
	names []string) SynthesisResult {
	res := SynthesisResult{
		Topology:     TopologyStar,
		AddedNodeIds: make([]string, 0, len(names)),
	}

	count := float64(len(names))
	for i, name := range names {
		fraction := float64(i+1) / (count + 1)
		lat, lon := geo.Interpolate(startLoc.GetLat(), startLoc.GetLon(), endLoc.GetLat(), endLoc.GetLon(), fraction)

		id := fmt.Sprintf("%s%d", KNOWN_WAYPOINT_NODE_PREFIX, i+1)
		graph.AddNode(id, da.NewLocation(name, lat, lon))
		re.connect(graph, startId, id)
		re.connect(graph, id, endId)
		res.AddedNodeIds = append(res.AddedNodeIds, id)
	}
	return res
}

// offsetWaypoint. waypoint i (1-based) at fraction along start->end, shifted off the straight line.
// even i: lat +offset, lon -offset. odd i: lat -offset, lon +offset.
func (re *RoutingEngine) offsetWaypoint(startLoc, endLoc da.Location, i int, fraction, offset float64) da.Location {
	lat, lon := geo.Interpolate(startLoc.GetLat(), startLoc.GetLon(), endLoc.GetLat(), endLoc.GetLon(), fraction)
	latOffset, lonOffset := -offset, offset
	if i%2 == 0 {
		latOffset, lonOffset = offset, -offset
	}
	return da.NewLocation(re.waypointName(startLoc.CityKey(), endLoc.CityKey(), i-1), lat+latOffset, lon+lonOffset)
}

// waypointName. curated area name, else "<start> to <end> (via Area <n>)".
func (re *RoutingEngine) waypointName(startCity, endCity string, index int) string {
	if re.tables != nil {
		if name, ok := re.tables.AreaName(startCity, endCity, index); ok {
			return name
		}
	}
	return fmt.Sprintf("%s to %s (via Area %d)", startCity, endCity, index+1)
}

// addOffsetChain. start -> waypoint1 -> waypoint2 -> waypoint3, every waypoint -> end.
func (re *RoutingEngine) addOffsetChain(graph *da.Graph, startId, endId string, startLoc, endLoc da.Location,
	routeType pkg.RouteType) SynthesisResult {
	offset := OFFSET_CHAIN_OFFSET
	if routeType == pkg.SCENIC {
		offset *= SCENIC_OFFSET_FACTOR
	}

	res := SynthesisResult{
		Topology:     TopologyOffsetChain,
		AddedNodeIds: make([]string, 0, OFFSET_CHAIN_WAYPOINTS),
	}
	for i := 1; i <= OFFSET_CHAIN_WAYPOINTS; i++ {
		id := fmt.Sprintf("%s%d", WAYPOINT_NODE_PREFIX, i)
		fraction := float64(i) / float64(OFFSET_CHAIN_WAYPOINTS+1)
		graph.AddNode(id, re.offsetWaypoint(startLoc, endLoc, i, fraction, offset))
		res.AddedNodeIds = append(res.AddedNodeIds, id)
	}

	for i, id := range res.AddedNodeIds {
		if i == 0 {
			re.connect(graph, startId, id)
		} else {
			re.connect(graph, res.AddedNodeIds[i-1], id)
		}
		re.connect(graph, id, endId)
	}
	return res
}

// addOffsetFan. start -> every waypoint, waypoint1 -> waypoint2, every waypoint -> end.
func (re *RoutingEngine) addOffsetFan(graph *da.Graph, startId, endId string, startLoc, endLoc da.Location,
) SynthesisResult {
	res := SynthesisResult{
		Topology:     TopologyOffsetFan,
		AddedNodeIds: make([]string, 0, OFFSET_FAN_WAYPOINTS),
	}
	for i := 1; i <= OFFSET_FAN_WAYPOINTS; i++ {
		id := fmt.Sprintf("%s%d", WAYPOINT_NODE_PREFIX, i)
		fraction := float64(i) / float64(OFFSET_FAN_WAYPOINTS+1)
		graph.AddNode(id, re.offsetWaypoint(startLoc, endLoc, i, fraction, OFFSET_FAN_OFFSET))

		re.connect(graph, startId, id)
		if i > 1 {
			re.connect(graph, res.AddedNodeIds[i-2], id)
		}
		re.connect(graph, id, endId)
		res.AddedNodeIds = append(res.AddedNodeIds, id)
	}
	return res
}
