package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"doctigo/catalog"
	"doctigo/models"
	"doctigo/services/inventory"
)

func newCatalogRouter() (*gin.Engine, *catalog.Directory) {
	gin.SetMode(gin.TestMode)
	dir := catalog.NewDirectory()
	h := NewCatalogHandler(dir)
	r := gin.New()
	r.GET("/api/catalog/doctors", h.ListDoctors)
	r.GET("/api/catalog/hospitals", h.ListHospitals)
	r.GET("/api/catalog/symptoms", h.ListCommonSymptoms)
	r.GET("/api/catalog/bed-options", h.ListBedOptions)
	return r, dir
}

func TestListDoctorsEndpoint(t *testing.T) {
	r, dir := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/doctors", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Doctors []models.Doctor `json:"doctors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Doctors, len(dir.ListDoctors()))
}

func TestListDoctorsEndpointFiltersBySymptoms(t *testing.T) {
	r, _ := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/doctors?symptoms=chest+pain", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Doctors []models.Doctor `json:"doctors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Doctors, 1)
	assert.Equal(t, "doc-rina-sen", resp.Doctors[0].ID)
}

func TestListHospitalsEndpoint(t *testing.T) {
	r, dir := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/hospitals", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Hospitals []models.Hospital `json:"hospitals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Hospitals, len(dir.ListHospitals()))
}

func TestListCommonSymptomsEndpoint(t *testing.T) {
	r, _ := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/symptoms", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Symptoms []string `json:"symptoms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Symptoms, "Fever")
	assert.Len(t, resp.Symptoms, 15)
}

func TestListBedOptionsEndpoint(t *testing.T) {
	r, _ := newCatalogRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/bed-options", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		BedOptions []models.BedOption `json:"bedOptions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.BedOptions, 3)
	assert.Equal(t, models.BedTypeGeneralBed, resp.BedOptions[0].Type)
}

func TestHospitalAvailabilityEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := catalog.NewDirectory()
	mgr := inventory.NewManager(dir.DefaultBedStocks(), zap.NewNop())
	h := NewInventoryHandler(mgr, dir)
	r := gin.New()
	r.GET("/api/inventory/:hospitalID/availability", h.HospitalAvailability)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inventory/hosp-city/availability", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		HospitalID   string                   `json:"hospitalId"`
		Availability []inventory.Availability `json:"availability"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hosp-city", resp.HospitalID)
	require.Len(t, resp.Availability, 3)
	assert.Equal(t, models.BedTypeGeneralBed, resp.Availability[0].BedType)
	assert.Equal(t, 8, resp.Availability[0].Free)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inventory/hosp-nowhere/availability", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
