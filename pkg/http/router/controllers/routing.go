package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/routesynth/pkg"
	helper "github.com/lintang-b-s/routesynth/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/routesynth/pkg/http/usecases"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.computeRoutes)
	group.GET("/distance", api.distance)
	group.GET("/geocode", api.geocode)
}

// parseLocation. <prefix>_lat, <prefix>_lon, <prefix>_name. lat & lon come together or not at all.
func parseLocation(query url.Values, prefix string) (locationRequest, error) {
	var (
		lr             locationRequest
		hasLat, hasLon bool
		err            error
	)
	lr.Lat, hasLat, err = parseOptionalFloat(query.Get(prefix+"_lat"), prefix+"_lat")
	if err != nil {
		return lr, err
	}
	lr.Lon, hasLon, err = parseOptionalFloat(query.Get(prefix+"_lon"), prefix+"_lon")
	if err != nil {
		return lr, err
	}
	if hasLat != hasLon {
		return lr, errors.New(prefix + "_lat and " + prefix + "_lon must be given together")
	}
	lr.hasCoord = hasLat
	lr.Name = strings.TrimSpace(query.Get(prefix + "_name"))
	if !lr.hasCoord && lr.Name == "" {
		return lr, errors.New(prefix + " needs " + prefix + "_lat & " + prefix + "_lon or " + prefix + "_name")
	}
	return lr, nil
}

func parseOriginDestination(query url.Values) (locationRequest, locationRequest, error) {
	origin, err := parseLocation(query, "origin")
	if err != nil {
		return locationRequest{}, locationRequest{}, err
	}
	destination, err := parseLocation(query, "destination")
	if err != nil {
		return locationRequest{}, locationRequest{}, err
	}
	return origin, destination, nil
}

// computeRoutes
//
//	@Summary		recommended route plus up to 2 alternatives between origin & destination.
//	@Tags			routing
//	@Param			origin_lat			query	number	false	"origin latitude"
//	@Param			origin_lon			query	number	false	"origin longitude"
//	@Param			origin_name			query	string	false	"origin place name"
//	@Param			destination_lat		query	number	false	"destination latitude"
//	@Param			destination_lon		query	number	false	"destination longitude"
//	@Param			destination_name	query	string	false	"destination place name"
//	@Param			route_type			query	string	false	"fastest | shortest | avoid_tolls | scenic"
//	@Produce		application/json
//	@Router			/computeRoutes [get]
func (api *routingAPI) computeRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request computeRoutesRequest
		err     error
	)

	query := r.URL.Query()
	request.Origin, request.Destination, err = parseOriginDestination(query)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.RouteType = strings.ToLower(strings.TrimSpace(query.Get("route_type")))

	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	routeType, err := pkg.ParseRouteType(request.RouteType)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	plan, err := api.routingService.ComputeRoutes(r.Context(), usecases.ComputeRoutesRequest{
		Origin:      request.Origin.toQuery(),
		Destination: request.Destination.toQuery(),
		RouteType:   routeType,
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComputeRoutesResponse(plan)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// distance
//
//	@Summary		preferred (curated or great-circle) distance in km between origin & destination.
//	@Tags			routing
//	@Param			origin_lat			query	number	false	"origin latitude"
//	@Param			origin_lon			query	number	false	"origin longitude"
//	@Param			origin_name			query	string	false	"origin place name"
//	@Param			destination_lat		query	number	false	"destination latitude"
//	@Param			destination_lon		query	number	false	"destination longitude"
//	@Param			destination_name	query	string	false	"destination place name"
//	@Produce		application/json
//	@Router			/distance [get]
func (api *routingAPI) distance(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request distanceRequest
		err     error
	)

	request.Origin, request.Destination, err = parseOriginDestination(r.URL.Query())
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.routingService.Distance(r.Context(), request.Origin.toQuery(), request.Destination.toQuery())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewDistanceResponse(res)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// geocode
//
//	@Summary		resolve a place name into a location.
//	@Tags			routing
//	@Param			q	query	string	true	"place name"
//	@Produce		application/json
//	@Router			/geocode [get]
func (api *routingAPI) geocode(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := geocodeRequest{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	loc, err := api.routingService.Geocode(r.Context(), request.Query)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewLocationResponse(loc)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
