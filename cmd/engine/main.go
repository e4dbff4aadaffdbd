package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/routesynth/pkg/engine"
	"github.com/lintang-b-s/routesynth/pkg/geocoder"
	"github.com/lintang-b-s/routesynth/pkg/http"
	"github.com/lintang-b-s/routesynth/pkg/http/usecases"
	"github.com/lintang-b-s/routesynth/pkg/logger"
	"github.com/lintang-b-s/routesynth/pkg/metrics"
	"github.com/lintang-b-s/routesynth/pkg/osrm"
	"github.com/lintang-b-s/routesynth/pkg/spatialindex"
	"github.com/lintang-b-s/routesynth/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir = flag.String("config_dir", "./data", "directory holding config.yaml")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	routingEngine, err := engine.NewEngine(viper.GetString("CURATED_TABLES_FILE"), logger)
	if err != nil {
		logger.Fatal("failed to load curated tables", zap.Error(err))
	}

	annotator := routingEngine.GetAnnotator()
	annotator.SetCache(viper.GetDuration("LOOKUP_CACHE_TTL"))
	annotator.SetLookupTimeout(viper.GetDuration("OSRM_TIMEOUT"))
	if viper.GetBool("OSRM_ENABLED") {
		annotator.SetExternalRoadLookup(osrm.NewClient(viper.GetString("OSRM_BASE_URL"),
			viper.GetDuration("OSRM_TIMEOUT")))
		logger.Info("OSRM road lookup enabled", zap.String("base_url", viper.GetString("OSRM_BASE_URL")))
	}

	var geo usecases.Geocoder
	if viper.GetBool("GEOCODER_ENABLED") {
		geo = geocoder.NewNominatim(viper.GetString("NOMINATIM_BASE_URL"), viper.GetDuration("GEOCODER_TIMEOUT"))
		logger.Info("geocoder enabled", zap.String("base_url", viper.GetString("NOMINATIM_BASE_URL")))
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(routingEngine.GetTables().Cities(), logger)

	registry := prometheus.NewRegistry()
	metric := metrics.NewMetric(registry)

	routingService := usecases.NewRoutingService(logger, routingEngine.GetRoutingEngine(), annotator, geo, rtree,
		metric, viper.GetFloat64("SNAP_RADIUS_KM"), viper.GetInt("ANNOTATOR_WORKERS"))

	ctx, cleanup := NewContext()
	defer cleanup()

	api := http.NewServer(logger)
	if err := api.Use(ctx, logger, viper.GetBool("RATE_LIMIT_ENABLED"), routingService, metric, registry); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}

	logger.Info("routesynth server stopped")
}

// NewContext. canceled on SIGINT / SIGTERM.
func NewContext() (context.Context, func()) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
