package guidance

import (
	"fmt"

	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/geo"
)

// HeadingInstruction. "Head <compass> toward <to>" for one step.
func HeadingInstruction(from, to da.Location) string {
	bearing := geo.BearingTo(from.GetLat(), from.GetLon(), to.GetLat(), to.GetLon())
	return fmt.Sprintf("Head %s toward %s", geo.CompassDirection(bearing), to.GetName())
}
