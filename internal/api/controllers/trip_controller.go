package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// SaveTrip godoc
// @Summary Save a trip
// @Description Persist a generated itinerary for the authenticated user
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/saveTrip [post]
func (t *TripController) SaveTrip(c *gin.Context) {

	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination, days, interest and plan are required")
		return
	}

	userId := c.GetString("user_id")

	trip, err := t.tripService.SaveTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip saved successfully")
}

// GetMyTrips godoc
// @Summary List saved trips
// @Description Fetch all trips of the authenticated user, newest first
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.TripResponse}
// @Security BearerAuth
// @Router /api/myTrips [get]
func (t *TripController) GetMyTrips(c *gin.Context) {

	userId := c.GetString("user_id")

	trips, err := t.tripService.GetMyTrips(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete a trip by id, only if it belongs to the authenticated user
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trip/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {

	tripId := c.Param("id")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
