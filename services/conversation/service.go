package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "doctigo/database/repository/appointment"
	"doctigo/models"
)

// BookingSessionService is the conversation facade the HTTP layer talks to:
// session creation and lookup, per-session event serialization, and archival
// of finalized appointments.
type BookingSessionService interface {
	StartSession(ctx context.Context, input StartInput) (*models.Session, *Directive, error)
	ApplyEvent(ctx context.Context, sessionID string, event Event) (*models.Session, *Directive, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, *Directive, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// StartInput carries the optional seed data for a new session.
type StartInput struct {
	// BookingType, when set, is applied as the first event so the caller
	// lands directly on the name prompt.
	BookingType models.BookingType `json:"bookingType,omitempty"`
	Location    *models.GeoPoint   `json:"location,omitempty"`
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Engine       *Engine
	Store        Store
	Appointments appointmentRepo.Repository // nil disables archival
	Logger       *zap.Logger

	locks keyedMutex
}

// NewService wires the default conversation service.
func NewService(engine *Engine, store Store, appts appointmentRepo.Repository, logger *zap.Logger) *DefaultBookingSessionService {
	return &DefaultBookingSessionService{
		Engine:       engine,
		Store:        store,
		Appointments: appts,
		Logger:       logger,
	}
}

// StartSession creates a fresh session and, when a booking type is supplied,
// applies the opening transition before returning the first directive.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, input StartInput) (*models.Session, *Directive, error) {
	session := &models.Session{
		SessionID:      uuid.New().String(),
		Step:           models.StepInitial,
		PatientDetails: make(map[string]string, len(models.PatientDetailKeys)),
		UserLocation:   input.Location,
		CreatedAt:      time.Now(),
	}

	directive := s.Engine.DirectiveFor(session)
	if input.BookingType != "" {
		var err error
		directive, err = s.Engine.Apply(ctx, session, Event{
			Type:        EventChooseBookingType,
			BookingType: input.BookingType,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	s.Logger.Info("booking session started",
		zap.String("sessionId", session.SessionID),
		zap.String("bookingType", string(session.BookingType)))
	return session, directive, nil
}

// ApplyEvent loads the session, applies exactly one transition under the
// session's lock, persists the result, and archives the appointment the first
// time the session finalizes. On a ValidationError nothing is saved.
func (s *DefaultBookingSessionService) ApplyEvent(ctx context.Context, sessionID string, event Event) (*models.Session, *Directive, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	wasFinalized := session.Finalized
	directive, err := s.Engine.Apply(ctx, session, event)
	if err != nil {
		return nil, nil, err
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}

	if session.Finalized && !wasFinalized {
		s.archive(ctx, session)
	}
	return session, directive, nil
}

// GetSession returns the session and the directive for its current step.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, *Directive, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, s.Engine.DirectiveFor(session), nil
}

// CancelSession discards an in-progress session. Already-issued bed serials
// stay issued; reservations are final.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// archive hands the finalized appointment to the export boundary. Archival
// failures are logged, never surfaced: the appointment the user sees is the
// one on the session.
func (s *DefaultBookingSessionService) archive(ctx context.Context, session *models.Session) {
	if s.Appointments == nil || session.Appointment == nil {
		return
	}
	if _, err := s.Appointments.Create(ctx, *session.Appointment); err != nil {
		s.Logger.Error("failed to archive appointment",
			zap.String("sessionId", session.SessionID),
			zap.String("appointmentId", session.Appointment.ID),
			zap.Error(err))
	}
}

// keyedMutex hands out one mutex per session ID so transitions for the same
// session never overlap while different sessions stay independent.
type keyedMutex struct {
	mus sync.Map // sessionID -> *sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	mu, _ := k.mus.LoadOrStore(key, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
