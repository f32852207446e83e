package models

import "time"

// ConversationStep identifies the engine's current state. The flow is linear
// with a single branch after symptom collection (doctors vs hospitals).
type ConversationStep string

const (
	StepInitial        ConversationStep = "initial"
	StepAskName        ConversationStep = "ask_name"
	StepAskSymptoms    ConversationStep = "ask_symptoms"
	StepChoosePath     ConversationStep = "choose_path"
	StepListDoctors    ConversationStep = "list_doctors"
	StepListHospitals  ConversationStep = "list_hospitals"
	StepAskBed         ConversationStep = "ask_bed"
	StepAskVitals      ConversationStep = "ask_vitals"
	StepCollectDetails ConversationStep = "collect_details"
	StepFinalCard      ConversationStep = "final_card"
)

// BookingType distinguishes normal from emergency bookings.
type BookingType string

const (
	BookingTypeNormal    BookingType = "normal"
	BookingTypeEmergency BookingType = "emergency"
)

// ValidBookingType reports whether t is one of the two supported booking types.
func ValidBookingType(t BookingType) bool {
	return t == BookingTypeNormal || t == BookingTypeEmergency
}

// PatientDetailKeys is the fixed order in which patient details are collected,
// one key per collect_details sub-step.
var PatientDetailKeys = []string{
	"patient_phone",
	"patient_gender",
	"patient_age",
	"patient_email",
	"patient_address",
}

// PatientDetailLabels maps each detail key to its prompt wording.
var PatientDetailLabels = map[string]string{
	"patient_phone":   "phone number",
	"patient_gender":  "gender (male/female/other)",
	"patient_age":     "age",
	"patient_email":   "email address",
	"patient_address": "address",
}

// Session holds one user's in-progress booking conversation. It is owned
// exclusively by the conversation engine for its lifetime: only transition
// handlers mutate it, and only one transition runs at a time per session.
type Session struct {
	SessionID   string           `json:"sessionId"`
	Step        ConversationStep `json:"step"`
	BookingType BookingType      `json:"bookingType,omitempty"`
	PatientName string           `json:"patientName,omitempty"`

	// Symptoms preserves selection order; duplicates are removed on submit.
	Symptoms []string `json:"symptoms,omitempty"`

	// At most one of SelectedDoctor/SelectedHospital is non-nil; selecting
	// one clears the other.
	SelectedDoctor   *Doctor   `json:"selectedDoctor,omitempty"`
	SelectedHospital *Hospital `json:"selectedHospital,omitempty"`

	// MatchedDoctors is the filtered set shown at list_doctors; a doctor
	// selection must come from this set.
	MatchedDoctors []Doctor `json:"matchedDoctors,omitempty"`

	// AppointmentTime is the tentative slot captured at doctor selection.
	AppointmentTime string `json:"appointmentTime,omitempty"`

	BedSelection *BedSelection   `json:"bedSelection,omitempty"`
	Vitals       *VitalsSnapshot `json:"vitals,omitempty"`

	PatientDetails map[string]string `json:"patientDetails,omitempty"`

	// DetailCursor indexes PatientDetailKeys; 0 <= DetailCursor <= len(keys).
	DetailCursor int `json:"detailCursor"`

	// Finalized guards the final-card entry actions so a duplicate terminal
	// event cannot rebuild the appointment or re-reserve inventory.
	Finalized   bool         `json:"finalized"`
	Appointment *Appointment `json:"appointment,omitempty"`

	// UserLocation, when provided at session start, enables distance and ETA
	// estimates on doctor and hospital listings.
	UserLocation *GeoPoint `json:"userLocation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
