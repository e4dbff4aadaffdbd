package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/lintang-b-s/routesynth/pkg"
	"github.com/lintang-b-s/routesynth/pkg/engine"
	"github.com/lintang-b-s/routesynth/pkg/geocoder"
	"github.com/lintang-b-s/routesynth/pkg/http/usecases"
	"github.com/lintang-b-s/routesynth/pkg/logger"
	"github.com/lintang-b-s/routesynth/pkg/osrm"
	"github.com/lintang-b-s/routesynth/pkg/spatialindex"
	"github.com/lintang-b-s/routesynth/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir = flag.String("config_dir", "./data", "directory holding config.yaml")
	fromName  = flag.String("from", "", "origin place name")
	fromLat   = flag.Float64("from_lat", math.NaN(), "origin latitude")
	fromLon   = flag.Float64("from_lon", math.NaN(), "origin longitude")
	toName    = flag.String("to", "", "destination place name")
	toLat     = flag.Float64("to_lat", math.NaN(), "destination latitude")
	toLon     = flag.Float64("to_lon", math.NaN(), "destination longitude")
	routeType = flag.String("route_type", "fastest", "fastest | shortest | avoid_tolls | scenic")
	useOSRM   = flag.Bool("osrm", false, "look up road names with OSRM")
	geocode   = flag.Bool("geocode", false, "resolve place names without coordinates with nominatim")
)

func locationQuery(name string, lat, lon float64) usecases.LocationQuery {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return usecases.NewNameQuery(name)
	}
	return usecases.NewCoordinateQuery(name, lat, lon)
}

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	viper.Set("LOG_LEVEL", "warn")
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	rt, err := pkg.ParseRouteType(*routeType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	e, err := engine.NewEngine(viper.GetString("CURATED_TABLES_FILE"), log)
	if err != nil {
		log.Fatal("failed to load curated tables", zap.Error(err))
	}
	annotator := e.GetAnnotator()
	if *useOSRM {
		annotator.SetExternalRoadLookup(osrm.NewClient(viper.GetString("OSRM_BASE_URL"),
			viper.GetDuration("OSRM_TIMEOUT")))
	}
	var geo usecases.Geocoder
	if *geocode {
		geo = geocoder.NewNominatim(viper.GetString("NOMINATIM_BASE_URL"), viper.GetDuration("GEOCODER_TIMEOUT"))
	}
	rtree := spatialindex.NewRtree()
	rtree.Build(e.GetTables().Cities(), log)

	svc := usecases.NewRoutingService(log, e.GetRoutingEngine(), annotator, geo, rtree, nil,
		viper.GetFloat64("SNAP_RADIUS_KM"), viper.GetInt("ANNOTATOR_WORKERS"))

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("API_TIMEOUT"))
	defer cancel()

	plan, err := svc.ComputeRoutes(ctx, usecases.ComputeRoutesRequest{
		Origin:      locationQuery(*fromName, *fromLat, *fromLon),
		Destination: locationQuery(*toName, *toLat, *toLon),
		RouteType:   rt,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	printPlan(plan)
}

func printPlan(plan *usecases.RoutePlan) {
	fmt.Printf("%s -> %s (%s)\n", plan.Origin.GetName(), plan.Destination.GetName(), plan.RouteType)
	for _, r := range plan.Routes {
		fmt.Printf("\n== %s [%s] ==\n", r.Label, r.Strategy)
		fmt.Println(r.Description)
		switch {
		case len(r.Tolls.Entries) > 0:
			fmt.Printf("Total Toll Cost: %s\n", r.Tolls.Formatted)
			fmt.Println("Toll Details:")
			for _, t := range r.Tolls.Entries {
				fmt.Printf("  - %s (%s): %s\n", t.Name, t.OperatorName, usecases.FormatCurrency(t.Cost, t.Currency))
			}
		case plan.RouteType == pkg.AVOID_TOLLS:
			fmt.Println("This route avoids all toll roads.")
		default:
			fmt.Println("No toll information available for this route.")
		}
	}
}
