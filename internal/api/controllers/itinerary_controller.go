package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a travel itinerary
// @Description Ask the AI completion service for a day-wise itinerary for the given destination, trip length and interest
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Itinerary parameters"
// @Success 200 {object} utils.APIResponse{data=response_models.ItineraryResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/itinerary [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {

	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination, days and interest are required")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{Itinerary: itinerary}, "Itinerary generated successfully")
}
