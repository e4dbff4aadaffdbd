package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/geo"
	"github.com/lintang-b-s/routesynth/pkg/guidance"
	"github.com/lintang-b-s/routesynth/pkg/util"
	"go.uber.org/zap"
)

const routeArrow = " -> "

// resolveLocation. coordinate given: keep the name, else snap to the nearest curated city, else "lat,lon".
// name only: geocode.
func (rs *RoutingService) resolveLocation(ctx context.Context, q LocationQuery) (da.Location, error) {
	name := strings.TrimSpace(q.Name)
	if q.HasCoord {
		if name == "" {
			name = rs.nameOfCoordinate(q.Lat, q.Lon)
		}
		return da.NewLocation(name, q.Lat, q.Lon), nil
	}

	if name == "" {
		return da.Location{}, util.WrapErrorf(ERRNOLOCATION, util.ErrBadParamInput, "invalid location")
	}
	if rs.geocoder == nil {
		return da.Location{}, util.WrapErrorf(ERRGEOCODERDISABLE, util.ErrBadParamInput,
			"cannot resolve %q without coordinates", name)
	}

	loc, err := rs.geocoder.GeocodeLocation(ctx, name)
	if err != nil {
		rs.log.Warn("geocoding failed", zap.String("name", name), zap.Error(err))
		var uErr *util.Error
		if errors.As(err, &uErr) {
			return da.Location{}, util.WrapErrorf(err, uErr.Code(), "geocode %q", name)
		}
		return da.Location{}, util.WrapErrorf(err, util.ErrInternalServerError, "geocode %q", name)
	}
	return loc, nil
}

func (rs *RoutingService) nameOfCoordinate(lat, lon float64) string {
	if rs.spatialIndex != nil {
		if city, ok := rs.spatialIndex.NearestCity(lat, lon, rs.snapRadius); ok {
			return city.GetName()
		}
	}
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}

func coordinatesOf(locs []da.Location) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(locs))
	for _, l := range locs {
		coords = append(coords, l.GetCoordinate())
	}
	return coords
}

func waypointDeviation(locs []da.Location) []float64 {
	if len(locs) <= 2 {
		return []float64{}
	}
	first, last := locs[0].GetCoordinate(), locs[len(locs)-1].GetCoordinate()
	dev := make([]float64, 0, len(locs)-2)
	for _, l := range locs[1 : len(locs)-1] {
		dev = append(dev, util.RoundFloat(geo.PointLinePerpendicularDistance(first, last, l.GetCoordinate()), 1))
	}
	return dev
}

func headingInstruction(from, to da.Location) string {
	return guidance.HeadingInstruction(from, to)
}

// FormatCurrency. zero decimals. IDR -> "Rp 28000", USD -> "$10", EUR -> "€10", else "10 XYZ".
func FormatCurrency(amount float64, currency string) string {
	v := fmt.Sprintf("%.0f", math.Round(amount))
	switch currency {
	case "", pkg.DEFAULT_CURRENCY:
		return "Rp " + v
	case "USD":
		return "$" + v
	case "EUR":
		return "€" + v
	default:
		return v + " " + currency
	}
}

// FormatRouteDescription. "<start> -> road -> ... -> <end> (<km> km, <duration>)".
// a direct route uses the city keys of both ends.
func FormatRouteDescription(route AnnotatedRoute, direct bool) string {
	if len(route.Steps) == 0 {
		return "No route available"
	}

	first, last := route.Steps[0].From, route.Steps[len(route.Steps)-1].To
	startName, endName := first.GetName(), last.GetName()
	if direct {
		startName, endName = first.CityKey(), last.CityKey()
	}

	parts := make([]string, 0, len(route.Steps)*4+2)
	parts = append(parts, startName)
	for _, s := range route.Steps {
		parts = append(parts, s.Roads...)
	}
	parts = append(parts, endName)

	return fmt.Sprintf("%s (%d km, %s)", strings.Join(parts, routeArrow), int(route.DistanceKm), route.Duration)
}
