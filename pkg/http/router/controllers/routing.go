package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	helper "github.com/lintang-b-s/Wayfindx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

const USER_ID_HEADER = "X-User-ID"

type routingAPI struct {
	routingService RoutingService
	buildings      BuildingCatalog
	log            *zap.Logger
	validator      *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, buildings BuildingCatalog, log *zap.Logger) *routingAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &routingAPI{
		routingService: routingService,
		buildings:      buildings,
		log:            log,
		validator:      validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/buildings", api.listBuildings)
	group.GET("/buildings/:buildingId/route", api.computeRoute)
	group.GET("/buildings/:buildingId/nearestLandmark", api.nearestLandmark)
	group.GET("/history", api.history)
}

func (api *routingAPI) listBuildings(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBuildingsResponse(api.buildings.ListBuildings())},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *routingAPI) computeRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request routeRequest
		err     error
	)

	query := r.URL.Query()
	request.BuildingID = p.ByName("buildingId")
	request.From = query.Get("from")
	request.To = query.Get("to")
	request.Algorithm = strings.ToLower(query.Get("algorithm"))
	request.MaxDifficulty = strings.ToLower(query.Get("max_difficulty"))

	request.AvoidStairs, err = parseBoolParam(query.Get("avoid_stairs"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("avoid_stairs must be a valid boolean"))
		return
	}
	request.WheelchairAccessible, err = parseBoolParam(query.Get("wheelchair_accessible"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("wheelchair_accessible must be a valid boolean"))
		return
	}
	request.AvoidElevators, err = parseBoolParam(query.Get("avoid_elevators"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("avoid_elevators must be a valid boolean"))
		return
	}

	if !api.validate(w, r, request) {
		return
	}

	maxDifficulty, _ := datastructure.ParseDifficulty(request.MaxDifficulty)
	preferences := routing.Preferences{
		AvoidStairs:          request.AvoidStairs,
		WheelchairAccessible: request.WheelchairAccessible,
		AvoidElevators:       request.AvoidElevators,
		MaxDifficulty:        maxDifficulty,
	}

	route, err := api.routingService.ComputeRoute(r.Context(), r.Header.Get(USER_ID_HEADER), request.BuildingID,
		request.From, request.To, preferences, request.Algorithm)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(route)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) nearestLandmark(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestLandmarkRequest
		err     error
	)

	query := r.URL.Query()
	request.BuildingID = p.ByName("buildingId")
	request.Floor = query.Get("floor")

	request.X, err = strconv.ParseFloat(query.Get("x"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("x is required and must be a valid float"))
		return
	}
	request.Y, err = strconv.ParseFloat(query.Get("y"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("y is required and must be a valid float"))
		return
	}

	if !api.validate(w, r, request) {
		return
	}

	landmark, dist, err := api.routingService.NearestLandmark(r.Context(), request.BuildingID, request.Floor,
		request.X, request.Y)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNearestLandmarkResponse(landmark, dist)},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) history(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	userID := r.Header.Get(USER_ID_HEADER)
	if userID == "" {
		api.BadRequestResponse(w, r, fmt.Errorf("%s header is required", USER_ID_HEADER))
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewHistoryResponse(api.routingService.History(userID))},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func parseBoolParam(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}
