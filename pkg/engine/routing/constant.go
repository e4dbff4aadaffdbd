package routing

const (
	INTERMEDIATE_NODE_PREFIX   = "intermediate_"
	KNOWN_WAYPOINT_NODE_PREFIX = "known_waypoint"
	WAYPOINT_NODE_PREFIX       = "waypoint"

	OFFSET_CHAIN_WAYPOINTS = 3
	OFFSET_CHAIN_OFFSET    = 0.01 // degree
	SCENIC_OFFSET_FACTOR   = 2.0

	OFFSET_FAN_WAYPOINTS = 2
	OFFSET_FAN_OFFSET    = 0.005 // degree
)
