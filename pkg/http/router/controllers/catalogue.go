package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/transitcatalogue/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"go.uber.org/zap"
)

type catalogueAPI struct {
	catalogueService CatalogueService
	validate         *util.Validator
	log              *zap.Logger
}

func New(catalogueService CatalogueService, log *zap.Logger) *catalogueAPI {
	return &catalogueAPI{
		catalogueService: catalogueService,
		validate:         util.NewValidator(),
		log:              log,
	}
}

func (api *catalogueAPI) Routes(group *helper.RouteGroup) {
	group.GET("/buses/:name", api.bus)
	group.GET("/stops/:name", api.stop)
	group.GET("/route", api.route)
	group.GET("/nearbyStops", api.nearbyStops)
}

// bus godoc
//
//	@Summary	stop counts, road length and curvature of a bus route
//	@Tags		catalogue
//	@Produce	json
//	@Param		name	path	string	true	"bus name"
//	@Router		/buses/{name} [get]
func (api *catalogueAPI) bus(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	name := p.ByName("name")
	info, err := api.catalogueService.BusInfo(name)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBusResponse(name, info)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// stop godoc
//
//	@Summary	buses passing through a stop, sorted by name
//	@Tags		catalogue
//	@Produce	json
//	@Param		name	path	string	true	"stop name"
//	@Router		/stops/{name} [get]
func (api *catalogueAPI) stop(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	name := p.ByName("name")
	buses, err := api.catalogueService.StopBuses(name)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": stopResponse{Name: name, Buses: buses}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// route godoc
//
//	@Summary	fastest itinerary between two stops
//	@Tags		routing
//	@Produce	json
//	@Param		from	query	string	true	"origin stop name"
//	@Param		to		query	string	true	"destination stop name"
//	@Router		/route [get]
func (api *catalogueAPI) route(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := routeRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}
	if err := api.validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, path, err := api.catalogueService.Route(request.From, request.To)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(route, path)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// nearbyStops godoc
//
//	@Summary	stops within radius km of a point, nearest first
//	@Tags		catalogue
//	@Produce	json
//	@Param		lat		query	number	true	"latitude"
//	@Param		lon		query	number	true	"longitude"
//	@Param		radius	query	number	true	"search radius in km"
//	@Router		/nearbyStops [get]
func (api *catalogueAPI) nearbyStops(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearbyStopsRequest
		err     error
	)
	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.Radius, err = strconv.ParseFloat(query.Get("radius"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("radius is required and must be a valid float"))
		return
	}
	if err := api.validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	stops, err := api.catalogueService.NearbyStops(request.Lat, request.Lon, request.Radius)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNearbyStopsResponse(stops)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
