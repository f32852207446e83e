package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctigo/catalog"
	"doctigo/services/inventory"
	"doctigo/utils"
)

// InventoryHandler serves best-effort availability views. Reservation itself
// only ever happens through the conversation flow.
type InventoryHandler struct {
	Manager   *inventory.Manager
	Directory *catalog.Directory
}

// NewInventoryHandler returns a handler over the given inventory manager.
func NewInventoryHandler(m *inventory.Manager, dir *catalog.Directory) *InventoryHandler {
	return &InventoryHandler{Manager: m, Directory: dir}
}

// HospitalAvailability reports free/total bed counts for one hospital.
func (h *InventoryHandler) HospitalAvailability(c *gin.Context) {
	hospitalID := c.Param("hospitalID")
	if _, ok := h.Directory.HospitalByID(hospitalID); !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown hospital", hospitalID)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hospitalId":   hospitalID,
		"availability": h.Manager.HospitalAvailability(hospitalID),
	})
}
