package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcast/internal/tools"
	"tripcast/pkg/utils"
)

// ToolsController exposes the grounding lookups the model can also call.
// Both degrade to descriptive text instead of failing, so responses are
// always 200 with a summary string.
type ToolsController struct {
	maps *tools.MapsClient
}

func NewToolsController(maps *tools.MapsClient) *ToolsController {
	return &ToolsController{maps: maps}
}

// LocationDetails godoc
// @Summary Look up a place
// @Description Place type, rating and open/closed status for a named place
// @Tags Tools
// @Produce json
// @Param place query string true "Place name"
// @Success 200 {object} utils.APIResponse
// @Router /tools/location-details [get]
func (t *ToolsController) LocationDetails(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		utils.RespondError(c, http.StatusBadRequest, "place is required")
		return
	}
	utils.RespondSuccess(c, gin.H{"summary": t.maps.GetLocationDetails(c.Request.Context(), place)}, "Location details")
}

// TravelTime godoc
// @Summary Travel time between two places
// @Description Tries walking, transit and driving in order and reports the first routable mode
// @Tags Tools
// @Produce json
// @Param from query string true "Origin"
// @Param to query string true "Destination"
// @Success 200 {object} utils.APIResponse
// @Router /tools/travel-time [get]
func (t *ToolsController) TravelTime(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.RespondError(c, http.StatusBadRequest, "from and to are required")
		return
	}
	utils.RespondSuccess(c, gin.H{"summary": t.maps.CalculateTravelTime(c.Request.Context(), from, to)}, "Travel time")
}
