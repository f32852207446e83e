package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "doctigo/database/repository/appointment"
	"doctigo/utils"
)

// AppointmentHandler serves the archive of finalized appointments.
type AppointmentHandler struct {
	Repo   appointmentRepo.Repository
	Logger *zap.Logger
}

// NewAppointmentHandler returns a handler over the appointment archive.
func NewAppointmentHandler(repo appointmentRepo.Repository, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Logger: logger}
}

// GetByID returns one archived appointment.
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id := c.Param("appointmentID")

	appointment, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// ListRecent returns the newest archived appointments (default 20, max 100).
// An "email" query parameter switches to a per-patient lookup instead.
func (h *AppointmentHandler) ListRecent(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		appointments, err := h.Repo.ListByPatientEmail(c.Request.Context(), email)
		if err != nil {
			h.Logger.Error("failed to list appointments by email", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appointments})
		return
	}

	limit := int64(20)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > 100 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit", raw)
			return
		}
		limit = parsed
	}

	appointments, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("failed to list appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}
