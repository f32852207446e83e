package conversation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"doctigo/catalog"
	"doctigo/models"
	"doctigo/services/inventory"
	"doctigo/services/vitals"
)

// Engine drives one booking conversation through its fixed step sequence. It
// consumes user events, reads the catalog, mutates inventory through the
// manager, and returns a render directive for the presentation layer. An event
// that is not valid for the current step is rejected with a ValidationError
// and the session is left untouched; the engine never advances past a step
// whose required input is missing or invalid.
type Engine struct {
	Catalog   *catalog.Directory
	Inventory *inventory.Manager
	Vitals    vitals.Provider
	Logger    *zap.Logger
}

// NewEngine wires an engine over its collaborators.
func NewEngine(dir *catalog.Directory, inv *inventory.Manager, vp vitals.Provider, logger *zap.Logger) *Engine {
	return &Engine{Catalog: dir, Inventory: inv, Vitals: vp, Logger: logger}
}

// Apply validates the event against the session's current step, applies the
// transition, and returns the next render directive. On a ValidationError the
// session is unchanged. The caller guarantees at most one Apply runs per
// session at a time.
func (e *Engine) Apply(ctx context.Context, session *models.Session, event Event) (*Directive, error) {
	switch session.Step {
	case models.StepInitial:
		return e.handleInitial(session, event)
	case models.StepAskName:
		return e.handleAskName(session, event)
	case models.StepAskSymptoms:
		return e.handleAskSymptoms(session, event)
	case models.StepChoosePath:
		return e.handleChoosePath(session, event)
	case models.StepListDoctors:
		return e.handleListDoctors(session, event)
	case models.StepListHospitals:
		return e.handleListHospitals(session, event)
	case models.StepAskBed:
		return e.handleAskBed(session, event)
	case models.StepAskVitals:
		return e.handleAskVitals(ctx, session, event)
	case models.StepCollectDetails:
		return e.handleCollectDetails(session, event)
	case models.StepFinalCard:
		// Terminal: a duplicate event re-renders the card and nothing else.
		return e.appointmentCardDirective(session), nil
	}
	return nil, InvariantViolationError{Reason: fmt.Sprintf("unknown conversation step %q", session.Step)}
}

// DirectiveFor renders the prompt for the session's current step without
// mutating anything. Used to resume a conversation after a reload.
func (e *Engine) DirectiveFor(session *models.Session) *Directive {
	switch session.Step {
	case models.StepInitial:
		return &Directive{Kind: DirectiveChooseBookingType, Prompt: "Choose booking type"}
	case models.StepAskName:
		return e.askNameDirective()
	case models.StepAskSymptoms:
		return e.askSymptomsDirective(session)
	case models.StepChoosePath:
		return e.choosePathDirective()
	case models.StepListDoctors:
		return e.showDoctorsDirective(session)
	case models.StepListHospitals:
		return e.showHospitalsDirective(session)
	case models.StepAskBed:
		return e.askBedDirective()
	case models.StepAskVitals:
		return e.askVitalsDirective()
	case models.StepCollectDetails:
		return e.askDetailDirective(session)
	case models.StepFinalCard:
		return e.appointmentCardDirective(session)
	}
	return &Directive{Kind: DirectiveChooseBookingType, Prompt: "Choose booking type"}
}

func (e *Engine) reject(session *models.Session, event Event, reason string) (*Directive, error) {
	e.Logger.Warn("conversation event rejected",
		zap.String("sessionId", session.SessionID),
		zap.String("step", string(session.Step)),
		zap.String("event", string(event.Type)),
		zap.String("reason", reason))
	return nil, ValidationError{Reason: reason}
}

func (e *Engine) handleInitial(session *models.Session, event Event) (*Directive, error) {
	if event.Type != EventChooseBookingType {
		return e.reject(session, event, fmt.Sprintf("event %q is not valid while choosing the booking type", event.Type))
	}
	if !models.ValidBookingType(event.BookingType) {
		return e.reject(session, event, fmt.Sprintf("unknown booking type %q", event.BookingType))
	}
	session.BookingType = event.BookingType
	session.Step = models.StepAskName
	return e.askNameDirective(), nil
}

func (e *Engine) handleAskName(session *models.Session, event Event) (*Directive, error) {
	if event.Type != EventSubmitName {
		return e.reject(session, event, fmt.Sprintf("event %q is not valid while asking for a name", event.Type))
	}
	name := strings.TrimSpace(event.Name)
	if name == "" {
		return e.reject(session, event, "name must not be empty")
	}
	session.PatientName = name
	session.Step = models.StepAskSymptoms
	return e.askSymptomsDirective(session), nil
}

func (e *Engine) handleAskSymptoms(session *models.Session, event Event) (*Directive, error) {
	switch event.Type {
	case EventSubmitSymptoms:
		session.Symptoms = dedupeSymptoms(event.Symptoms)
	case EventSkipSymptoms:
		session.Symptoms = nil
	default:
		return e.reject(session, event, fmt.Sprintf("event %q is not valid while collecting symptoms", event.Type))
	}
	session.Step = models.StepChoosePath
	return e.choosePathDirective(), nil
}

func (e *Engine) handleChoosePath(session *models.Session, event Event) (*Directive, error) {
	switch event.Type {
	case EventPickDoctors:
		session.MatchedDoctors = e.Catalog.FilterDoctorsBySymptoms(session.Symptoms)
		session.Step = models.StepListDoctors
		return e.showDoctorsDirective(session), nil
	case EventPickHospitals:
		session.Step = models.StepListHospitals
		return e.showHospitalsDirective(session), nil
	}
	return e.reject(session, event, fmt.Sprintf("event %q is not valid while choosing between doctors and hospitals", event.Type))
}

func (e *Engine) handleListDoctors(session *models.Session, event Event) (*Directive, error) {
	if event.Type != EventSelectDoctor {
		return e.reject(session, event, fmt.Sprintf("event %q is not valid while a doctor list is shown", event.Type))
	}
	var selected *models.Doctor
	for i := range session.MatchedDoctors {
		if session.MatchedDoctors[i].ID == event.DoctorID {
			selected = &session.MatchedDoctors[i]
			break
		}
	}
	if selected == nil {
		return e.reject(session, event, fmt.Sprintf("doctor %q is not in the matched list", event.DoctorID))
	}

	doc := *selected
	session.SelectedDoctor = &doc
	session.SelectedHospital = nil
	// The doctor's first listed slot becomes the tentative appointment time;
	// slots themselves are catalog data and are not reserved.
	if len(doc.AvailableSlots) > 0 {
		session.AppointmentTime = doc.AvailableSlots[0]
	} else {
		session.AppointmentTime = DefaultSlot
	}
	session.Step = models.StepAskBed
	return e.askBedDirective(), nil
}

func (e *Engine) handleListHospitals(session *models.Session, event Event) (*Directive, error) {
	if event.Type != EventSelectHospital {
		return e.reject(session, event, fmt.Sprintf("event %q is not valid while a hospital list is shown", event.Type))
	}
	hosp, ok := e.Catalog.HospitalByID(event.HospitalID)
	if !ok {
		return e.reject(session, event, fmt.Sprintf("unknown hospital %q", event.HospitalID))
	}
	session.SelectedHospital = &hosp
	session.SelectedDoctor = nil
	session.AppointmentTime = ""
	session.Step = models.StepAskBed
	return e.askBedDirective(), nil
}

func (e *Engine) handleAskBed(session *models.Session, event Event) (*Directive, error) {
	switch event.Type {
	case EventDeclineBed:
		session.BedSelection = nil
		session.Step = models.StepAskVitals
		return e.askVitalsDirective(), nil
	case EventSelectBed:
		// fallthrough to reservation below
	default:
		return e.reject(session, event, fmt.Sprintf("event %q is not valid while choosing a bed", event.Type))
	}

	option, ok := catalog.BedOptionByType(event.BedType)
	if !ok {
		return e.reject(session, event, fmt.Sprintf("unknown bed type %q", event.BedType))
	}
	hospitalID, err := e.reservationHospitalID(session)
	if err != nil {
		return nil, err
	}

	serial, err := e.Inventory.Reserve(hospitalID, option.Type)
	switch err {
	case nil:
		// reserved below
	case inventory.ErrUnavailable:
		// Recoverable: stay in ask_bed and surface the exhaustion. No bed is
		// ever recorded as selected without a confirmed reservation.
		d := e.askBedDirective()
		d.Kind = DirectiveBedUnavailable
		d.Validation = fmt.Sprintf("No %s is currently available. Please pick another option.", option.Type)
		return d, nil
	default:
		return nil, InvariantViolationError{Reason: fmt.Sprintf("reserve failed for hospital %q: %v", hospitalID, err)}
	}

	session.BedSelection = &models.BedSelection{
		Type:     option.Type,
		Price:    option.Price,
		Features: option.Features,
		Serial:   serial,
	}
	session.Step = models.StepAskVitals
	return e.askVitalsDirective(), nil
}

func (e *Engine) handleAskVitals(ctx context.Context, session *models.Session, event Event) (*Directive, error) {
	if event.Type != EventAnswerVitals {
		return e.reject(session, event, fmt.Sprintf("event %q is not valid while asking about vitals", event.Type))
	}
	// Anything that isn't an explicit yes is treated as no; unrecognized text
	// must not stall the flow.
	if strings.EqualFold(strings.TrimSpace(event.Answer), "yes") {
		snap, err := e.Vitals.GetSnapshot(ctx, session.SessionID)
		if err != nil {
			e.Logger.Warn("vitals provider unavailable, continuing without vitals",
				zap.String("sessionId", session.SessionID),
				zap.Error(err))
			snap = nil
		}
		session.Vitals = snap
	} else {
		session.Vitals = nil
	}

	if session.PatientDetails == nil {
		session.PatientDetails = make(map[string]string, len(models.PatientDetailKeys))
	}
	session.DetailCursor = 0
	session.Step = models.StepCollectDetails
	return e.askDetailDirective(session), nil
}

func (e *Engine) handleCollectDetails(session *models.Session, event Event) (*Directive, error) {
	if event.Type != EventSubmitDetail {
		return e.reject(session, event, fmt.Sprintf("event %q is not valid while collecting patient details", event.Type))
	}
	if session.DetailCursor < 0 || session.DetailCursor >= len(models.PatientDetailKeys) {
		return nil, InvariantViolationError{Reason: fmt.Sprintf("detail cursor %d out of range", session.DetailCursor)}
	}

	key := models.PatientDetailKeys[session.DetailCursor]
	// Empty values are accepted; detail collection is deliberately permissive.
	session.PatientDetails[key] = event.Detail
	session.DetailCursor++

	if session.DetailCursor < len(models.PatientDetailKeys) {
		return e.askDetailDirective(session), nil
	}

	session.Step = models.StepFinalCard
	if !session.Finalized {
		appointment, err := BuildAppointment(session)
		if err != nil {
			return nil, err
		}
		session.Appointment = appointment
		session.Finalized = true
		e.Logger.Info("appointment finalized",
			zap.String("sessionId", session.SessionID),
			zap.String("appointmentId", appointment.ID),
			zap.String("hospital", appointment.HospitalName))
	}
	return e.appointmentCardDirective(session), nil
}

// reservationHospitalID resolves the hospital whose inventory backs the bed
// reservation: the selected hospital, or the selected doctor's chamber.
func (e *Engine) reservationHospitalID(session *models.Session) (string, error) {
	if session.SelectedHospital != nil {
		return session.SelectedHospital.ID, nil
	}
	if session.SelectedDoctor != nil {
		hosp, ok := e.Catalog.HospitalByName(session.SelectedDoctor.Chamber)
		if !ok {
			return "", InvariantViolationError{Reason: fmt.Sprintf("doctor chamber %q does not resolve to a hospital", session.SelectedDoctor.Chamber)}
		}
		return hosp.ID, nil
	}
	return "", InvariantViolationError{Reason: "bed selection reached without a doctor or hospital"}
}

// dedupeSymptoms removes duplicate entries while preserving selection order.
func dedupeSymptoms(symptoms []string) []string {
	seen := make(map[string]bool, len(symptoms))
	var out []string
	for _, s := range symptoms {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
