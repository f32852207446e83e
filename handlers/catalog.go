package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"doctigo/catalog"
)

// CatalogHandler serves the read-only doctor/hospital directory.
type CatalogHandler struct {
	Directory *catalog.Directory
}

// NewCatalogHandler returns a handler over the given directory.
func NewCatalogHandler(dir *catalog.Directory) *CatalogHandler {
	return &CatalogHandler{Directory: dir}
}

// ListDoctors returns the doctor list, optionally narrowed by a
// comma-separated "symptoms" query parameter.
func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	raw := c.Query("symptoms")
	if raw == "" {
		c.JSON(http.StatusOK, gin.H{"doctors": h.Directory.ListDoctors()})
		return
	}

	var symptoms []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symptoms = append(symptoms, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{"doctors": h.Directory.FilterDoctorsBySymptoms(symptoms)})
}

// ListHospitals returns the hospital list.
func (h *CatalogHandler) ListHospitals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hospitals": h.Directory.ListHospitals()})
}

// ListCommonSymptoms returns the symptom suggestions for the selector.
func (h *CatalogHandler) ListCommonSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symptoms": catalog.CommonSymptoms})
}

// ListBedOptions returns the bed/cabin menu.
func (h *CatalogHandler) ListBedOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bedOptions": catalog.BedOptions()})
}
