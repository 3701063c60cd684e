package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcast/internal/models/request_models"
	"tripcast/internal/services"
	"tripcast/pkg/utils"
)

type ItineraryController struct {
	sessionService services.SessionServiceInterface
}

func NewItineraryController(sessionService services.SessionServiceInterface) *ItineraryController {
	return &ItineraryController{sessionService: sessionService}
}

// GenerateItinerary godoc
// @Summary Generate a travel itinerary
// @Description Runs the planning pipeline for the session and returns the rendered plan. Degraded-service results carry a [MOCK] or [MOCK/RETRY FAIL] theme marker.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Destination, day count and theme"
// @Success 200 {object} response_models.ItineraryView
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination, days and theme are required")
		return
	}
	if !req.ThemeAllowed() {
		utils.RespondError(c, http.StatusBadRequest, "Unknown theme")
		return
	}

	view, err := i.sessionService.GenerateItinerary(c.Request.Context(), c.GetString("session_id"), req.Destination, req.Days, req.Theme)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Itinerary generated")
}

// CurrentItinerary godoc
// @Summary Get the current itinerary
// @Description Returns the itinerary stored on the session, rendered for display
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ItineraryView
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/current [get]
func (i *ItineraryController) CurrentItinerary(c *gin.Context) {
	view, err := i.sessionService.CurrentItinerary(c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Itinerary fetched")
}
