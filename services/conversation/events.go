package conversation

import "doctigo/models"

// EventType names one discrete conversation input.
type EventType string

const (
	EventChooseBookingType EventType = "choose_booking_type"
	EventSubmitName        EventType = "submit_name"
	EventSubmitSymptoms    EventType = "submit_symptoms"
	EventSkipSymptoms      EventType = "skip_symptoms"
	EventPickDoctors       EventType = "pick_doctors"
	EventPickHospitals     EventType = "pick_hospitals"
	EventSelectDoctor      EventType = "select_doctor"
	EventSelectHospital    EventType = "select_hospital"
	EventSelectBed         EventType = "select_bed"
	EventDeclineBed        EventType = "decline_bed"
	EventAnswerVitals      EventType = "answer_vitals"
	EventSubmitDetail      EventType = "submit_detail"
)

// Event is one user input, applied against the session's current step. Only
// the field matching the event type is read; the rest are ignored.
type Event struct {
	Type EventType `json:"type"`

	BookingType models.BookingType `json:"bookingType,omitempty"`
	Name        string             `json:"name,omitempty"`
	Symptoms    []string           `json:"symptoms,omitempty"`
	DoctorID    string             `json:"doctorId,omitempty"`
	HospitalID  string             `json:"hospitalId,omitempty"`
	BedType     models.BedType     `json:"bedType,omitempty"`
	Answer      string             `json:"answer,omitempty"`

	// Detail may legitimately be the empty string; detail submissions carry
	// no non-null validation.
	Detail string `json:"detail"`
}
