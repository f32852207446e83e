package conversation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"doctigo/catalog"
	"doctigo/models"
)

// DefaultSlot is the appointment time used when no doctor (and therefore no
// slot list) was chosen.
const DefaultSlot = "10:00am-10:30am"

// HospitalAdmissionDoctor is the sentinel doctor name on hospital-only
// appointments.
const HospitalAdmissionDoctor = "(Hospital admission)"

// BuildAppointment folds a finished session into its immutable appointment
// record. It is pure apart from stamping the current wall-clock time, and is
// only legal once the session has reached the final card step with its
// required fields populated; anything else is a contract breach.
func BuildAppointment(session *models.Session) (*models.Appointment, error) {
	if session.Step != models.StepFinalCard {
		return nil, InvariantViolationError{Reason: fmt.Sprintf("appointment built in step %q, want %q", session.Step, models.StepFinalCard)}
	}
	if strings.TrimSpace(session.PatientName) == "" {
		return nil, InvariantViolationError{Reason: "patient name is empty at finalization"}
	}
	if !models.ValidBookingType(session.BookingType) {
		return nil, InvariantViolationError{Reason: "booking type unset at finalization"}
	}
	if session.SelectedDoctor != nil && session.SelectedHospital != nil {
		return nil, InvariantViolationError{Reason: "both a doctor and a hospital are selected"}
	}
	for _, key := range models.PatientDetailKeys {
		if _, ok := session.PatientDetails[key]; !ok {
			return nil, InvariantViolationError{Reason: fmt.Sprintf("patient detail %q was never collected", key)}
		}
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		PatientName:     session.PatientName,
		BookingType:     session.BookingType,
		Symptoms:        session.Symptoms,
		AppointmentDate: now,
		PatientPhone:    session.PatientDetails["patient_phone"],
		PatientGender:   session.PatientDetails["patient_gender"],
		PatientAge:      session.PatientDetails["patient_age"],
		PatientEmail:    session.PatientDetails["patient_email"],
		PatientAddress:  session.PatientDetails["patient_address"],
		Status:          models.AppointmentStatusConfirmed,
		CreatedAt:       now,
	}

	switch {
	case session.SelectedDoctor != nil:
		appt.DoctorName = session.SelectedDoctor.Name
		appt.HospitalName = session.SelectedDoctor.Chamber
		appt.AppointmentTime = session.AppointmentTime
		if appt.AppointmentTime == "" && len(session.SelectedDoctor.AvailableSlots) > 0 {
			appt.AppointmentTime = session.SelectedDoctor.AvailableSlots[0]
		}
	case session.SelectedHospital != nil:
		appt.DoctorName = HospitalAdmissionDoctor
		appt.HospitalName = session.SelectedHospital.Name
		appt.AppointmentTime = DefaultSlot
		if session.UserLocation != nil && (session.SelectedHospital.Latitude != 0 || session.SelectedHospital.Longitude != 0) {
			km := catalog.Haversine(
				session.UserLocation.Latitude, session.UserLocation.Longitude,
				session.SelectedHospital.Latitude, session.SelectedHospital.Longitude,
			)
			eta := catalog.EstimateTravelMinutes(km)
			appt.DistanceKm = &km
			appt.EstimatedTravelTime = &eta
		}
	default:
		// Hospital-only path with nothing chosen is still a valid admission.
		appt.DoctorName = HospitalAdmissionDoctor
		appt.AppointmentTime = DefaultSlot
	}
	if appt.AppointmentTime == "" {
		appt.AppointmentTime = DefaultSlot
	}

	if session.BedSelection != nil {
		sel := *session.BedSelection
		appt.NeedsBed = true
		appt.BedType = sel.Type
		appt.BedDetails = &sel
	}
	appt.Vitals = session.Vitals

	return appt, nil
}
