package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doctigo/models"
	"doctigo/services/vitals"
	"doctigo/utils"
)

// VitalsHandler is the vitals hub boundary: clients publish a recent snapshot
// here so the chat can attach it when the user answers yes.
type VitalsHandler struct {
	Provider *vitals.RedisProvider
	Logger   *zap.Logger
}

// NewVitalsHandler returns a handler over the given provider.
func NewVitalsHandler(p *vitals.RedisProvider, logger *zap.Logger) *VitalsHandler {
	return &VitalsHandler{Provider: p, Logger: logger}
}

// Publish stores the latest vitals snapshot for a session.
func (h *VitalsHandler) Publish(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var snap models.VitalsSnapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid vitals payload", err.Error())
		return
	}

	if err := h.Provider.Publish(c.Request.Context(), sessionID, snap); err != nil {
		h.Logger.Error("failed to publish vitals", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to publish vitals", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "published"})
}

// Latest returns the most recently published snapshot for a session, or 404
// when nothing was published.
func (h *VitalsHandler) Latest(c *gin.Context) {
	sessionID := c.Param("sessionID")

	snap, err := h.Provider.GetSnapshot(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Error("failed to fetch vitals", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch vitals", "")
		return
	}
	if snap == nil {
		utils.JSONError(c, http.StatusNotFound, "no vitals published for session", sessionID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vitals": snap})
}
