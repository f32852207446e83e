package routes

import (
	"github.com/gin-gonic/gin"

	"doctigo/handlers"
)

// RegisterRoutes registers all endpoints with the assembled handler bundle.
func RegisterRoutes(r *gin.Engine, h *handlers.HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")

	booking := api.Group("/booking")
	{
		booking.POST("/session", h.Booking.StartSession)
		booking.POST("/session/:sessionID/event", h.Booking.ApplyEvent)
		booking.GET("/session/:sessionID", h.Booking.GetSession)
		booking.DELETE("/session/:sessionID", h.Booking.CancelSession)
	}

	catalog := api.Group("/catalog")
	{
		catalog.GET("/doctors", h.Catalog.ListDoctors)
		catalog.GET("/hospitals", h.Catalog.ListHospitals)
		catalog.GET("/symptoms", h.Catalog.ListCommonSymptoms)
		catalog.GET("/bed-options", h.Catalog.ListBedOptions)
	}

	api.GET("/inventory/:hospitalID/availability", h.Inventory.HospitalAvailability)

	vitals := api.Group("/vitals")
	{
		vitals.POST("/:sessionID", h.Vitals.Publish)
		vitals.GET("/:sessionID", h.Vitals.Latest)
	}

	appointments := api.Group("/appointments")
	{
		appointments.GET("", h.Appointments.ListRecent)
		appointments.GET("/:appointmentID", h.Appointments.GetByID)
	}
}
