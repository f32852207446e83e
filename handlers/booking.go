package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doctigo/services/conversation"
	"doctigo/utils"
)

// BookingHandler exposes the booking conversation over HTTP. It is glue only:
// validation and state transitions all live in the conversation service.
type BookingHandler struct {
	Service conversation.BookingSessionService
	Logger  *zap.Logger
}

// NewBookingHandler returns a handler bound to the given conversation service.
func NewBookingHandler(svc conversation.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSession creates a new booking session and returns the first directive.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input conversation.StartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, directive, err := h.Service.StartSession(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.SessionID,
		"step":      session.Step,
		"directive": directive,
	})
}

// ApplyEvent submits one conversation event and returns the next directive.
func (h *BookingHandler) ApplyEvent(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var event conversation.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, directive, err := h.Service.ApplyEvent(c.Request.Context(), sessionID, event)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := gin.H{
		"sessionId": session.SessionID,
		"step":      session.Step,
		"directive": directive,
	}
	if session.Finalized {
		resp["appointment"] = session.Appointment
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession returns the current session snapshot and its render directive.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, directive, err := h.Service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":   session,
		"directive": directive,
	})
}

// CancelSession discards an in-progress session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// respondError maps service errors onto HTTP statuses. Invariant violations
// are programming errors and surface as 500s.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var ve conversation.ValidationError
	var ie conversation.InvariantViolationError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, "invalid conversation input", ve.Reason)
	case errors.Is(err, conversation.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.As(err, &ie):
		h.Logger.Error("conversation invariant violated", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	default:
		h.Logger.Error("conversation request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
