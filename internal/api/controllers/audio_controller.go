package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripcast/internal/services"
	"tripcast/pkg/utils"
)

type AudioController struct {
	sessionService services.SessionServiceInterface
}

func NewAudioController(sessionService services.SessionServiceInterface) *AudioController {
	return &AudioController{sessionService: sessionService}
}

// DayAudio godoc
// @Summary Spoken summary of one day
// @Description Generates (or returns the cached) MP3 audio summary for a day of the stored itinerary
// @Tags Audio
// @Produce audio/mpeg
// @Param index path int true "Zero-based day index"
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/days/{index}/audio [post]
func (a *AudioController) DayAudio(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Day index must be an integer")
		return
	}

	audio, err := a.sessionService.DayAudio(c.Request.Context(), c.GetString("session_id"), index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
