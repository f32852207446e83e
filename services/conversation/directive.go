package conversation

import "doctigo/models"

// DirectiveKind tells the presentation layer what to render next. The engine
// never triggers a refresh itself; it only returns one of these.
type DirectiveKind string

const (
	DirectiveChooseBookingType DirectiveKind = "choose_booking_type"
	DirectiveAskName           DirectiveKind = "ask_name"
	DirectiveAskSymptoms       DirectiveKind = "ask_symptoms"
	DirectiveChoosePath        DirectiveKind = "choose_path"
	DirectiveShowDoctors       DirectiveKind = "show_doctors"
	DirectiveShowHospitals     DirectiveKind = "show_hospitals"
	DirectiveAskBed            DirectiveKind = "ask_bed"
	DirectiveBedUnavailable    DirectiveKind = "bed_unavailable"
	DirectiveAskVitals         DirectiveKind = "ask_vitals"
	DirectiveAskDetail         DirectiveKind = "ask_detail"
	DirectiveAppointmentCard   DirectiveKind = "appointment_card"
)

// DoctorListing pairs a doctor with display-only travel estimates.
type DoctorListing struct {
	Doctor     models.Doctor `json:"doctor"`
	DistanceKm *float64      `json:"distanceKm,omitempty"`
	EtaMinutes *int          `json:"etaMinutes,omitempty"`
}

// HospitalListing pairs a hospital with display-only travel estimates.
type HospitalListing struct {
	Hospital   models.Hospital `json:"hospital"`
	DistanceKm *float64        `json:"distanceKm,omitempty"`
	EtaMinutes *int            `json:"etaMinutes,omitempty"`
}

// Directive is the engine's render instruction for the next prompt.
type Directive struct {
	Kind   DirectiveKind `json:"kind"`
	Prompt string        `json:"prompt,omitempty"`

	// Emergency flips the prompt wording at the symptoms step.
	Emergency bool `json:"emergency,omitempty"`

	Doctors    []DoctorListing    `json:"doctors,omitempty"`
	Hospitals  []HospitalListing  `json:"hospitals,omitempty"`
	BedOptions []models.BedOption `json:"bedOptions,omitempty"`

	// DetailKey and DetailLabel identify the patient detail being collected.
	DetailKey   string `json:"detailKey,omitempty"`
	DetailLabel string `json:"detailLabel,omitempty"`

	// Validation carries a recoverable complaint (exhausted bed stock); the
	// step did not advance.
	Validation string `json:"validation,omitempty"`

	Appointment *models.Appointment `json:"appointment,omitempty"`
}
