package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripcast/internal/models/request_models"
	"tripcast/internal/services"
	"tripcast/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
	jwtSecret      []byte
	sessionTTL     time.Duration
}

func NewSessionController(sessionService services.SessionServiceInterface, jwtSecret []byte, sessionTTL time.Duration) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		jwtSecret:      jwtSecret,
		sessionTTL:     sessionTTL,
	}
}

// CreateSession godoc
// @Summary Start a planning session
// @Description Creates an in-memory planning session and returns the bearer token for it
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /sessions [post]
func (s *SessionController) CreateSession(c *gin.Context) {
	sessionID := s.sessionService.CreateSession()

	token, err := utils.CreateSessionToken(s.jwtSecret, sessionID, s.sessionTTL)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not issue session token")
		return
	}

	utils.RespondSuccess(c, gin.H{
		"session_id": sessionID,
		"token":      token,
		"themes":     request_models.AllowedThemes(),
	}, "Session created")
}
