package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"doctigo/models"
	"doctigo/services/conversation"
)

type stubBookingService struct {
	session   *models.Session
	directive *conversation.Directive
	err       error

	gotSessionID string
	gotEvent     conversation.Event
	cancelled    []string
}

func (s *stubBookingService) StartSession(_ context.Context, _ conversation.StartInput) (*models.Session, *conversation.Directive, error) {
	return s.session, s.directive, s.err
}

func (s *stubBookingService) ApplyEvent(_ context.Context, sessionID string, event conversation.Event) (*models.Session, *conversation.Directive, error) {
	s.gotSessionID = sessionID
	s.gotEvent = event
	return s.session, s.directive, s.err
}

func (s *stubBookingService) GetSession(_ context.Context, sessionID string) (*models.Session, *conversation.Directive, error) {
	s.gotSessionID = sessionID
	return s.session, s.directive, s.err
}

func (s *stubBookingService) CancelSession(_ context.Context, sessionID string) error {
	s.cancelled = append(s.cancelled, sessionID)
	return s.err
}

func newBookingRouter(svc conversation.BookingSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/booking/session", h.StartSession)
	r.POST("/api/booking/session/:sessionID/event", h.ApplyEvent)
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.DELETE("/api/booking/session/:sessionID", h.CancelSession)
	return r
}

func TestStartSessionEndpoint(t *testing.T) {
	svc := &stubBookingService{
		session:   &models.Session{SessionID: "sess-1", Step: models.StepAskName},
		directive: &conversation.Directive{Kind: conversation.DirectiveAskName},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/session",
		strings.NewReader(`{"bookingType":"normal"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.JSONEq(t, `"sess-1"`, string(resp["sessionId"]))
	assert.JSONEq(t, `"ask_name"`, string(resp["step"]))
}

func TestStartSessionEndpointRejectsBadJSON(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/session", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyEventEndpoint(t *testing.T) {
	svc := &stubBookingService{
		session:   &models.Session{SessionID: "sess-1", Step: models.StepAskSymptoms},
		directive: &conversation.Directive{Kind: conversation.DirectiveAskSymptoms},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/session/sess-1/event",
		strings.NewReader(`{"type":"submit_name","name":"Rakesh"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sess-1", svc.gotSessionID)
	assert.Equal(t, conversation.EventSubmitName, svc.gotEvent.Type)
	assert.Equal(t, "Rakesh", svc.gotEvent.Name)
}

func TestApplyEventEndpointIncludesAppointmentWhenFinalized(t *testing.T) {
	appt := &models.Appointment{ID: "appt-1", PatientName: "Rakesh"}
	svc := &stubBookingService{
		session: &models.Session{
			SessionID:   "sess-1",
			Step:        models.StepFinalCard,
			Finalized:   true,
			Appointment: appt,
		},
		directive: &conversation.Directive{Kind: conversation.DirectiveAppointmentCard, Appointment: appt},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/session/sess-1/event",
		strings.NewReader(`{"type":"submit_detail","detail":"Kolkata"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp, "appointment")
}

func TestApplyEventEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", conversation.ValidationError{Reason: "bad input"}, http.StatusBadRequest},
		{"not found", conversation.ErrSessionNotFound, http.StatusNotFound},
		{"invariant", conversation.InvariantViolationError{Reason: "broken"}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newBookingRouter(&stubBookingService{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/booking/session/sess-1/event",
				strings.NewReader(`{"type":"submit_name","name":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCancelSessionEndpoint(t *testing.T) {
	svc := &stubBookingService{}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/booking/session/sess-9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sess-9"}, svc.cancelled)
}
