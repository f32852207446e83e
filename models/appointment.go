package models

import "time"

// AppointmentStatus is the lifecycle status stamped on a finalized appointment.
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is the terminal, immutable output of a completed conversation.
// It is built exactly once per session and never mutated afterwards.
type Appointment struct {
	ID          string      `json:"id" bson:"id"`
	PatientName string      `json:"patientName" bson:"patientName"`
	BookingType BookingType `json:"bookingType" bson:"bookingType"`

	Symptoms []string `json:"symptoms,omitempty" bson:"symptoms,omitempty"`

	DoctorName      string    `json:"doctorName" bson:"doctorName"`
	HospitalName    string    `json:"hospitalName" bson:"hospitalName"`
	AppointmentDate time.Time `json:"appointmentDate" bson:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime" bson:"appointmentTime"`

	PatientPhone   string `json:"patientPhone" bson:"patientPhone"`
	PatientGender  string `json:"patientGender" bson:"patientGender"`
	PatientAge     string `json:"patientAge" bson:"patientAge"`
	PatientEmail   string `json:"patientEmail" bson:"patientEmail"`
	PatientAddress string `json:"patientAddress" bson:"patientAddress"`

	NeedsBed   bool          `json:"needsBed" bson:"needsBed"`
	BedType    BedType       `json:"bedType,omitempty" bson:"bedType,omitempty"`
	BedDetails *BedSelection `json:"bedDetails,omitempty" bson:"bedDetails,omitempty"`

	Vitals *VitalsSnapshot `json:"vitals,omitempty" bson:"vitals,omitempty"`

	// Travel estimates are present only when the session carried a user
	// location and the chosen hospital has coordinates.
	DistanceKm          *float64 `json:"distanceKm,omitempty" bson:"distanceKm,omitempty"`
	EstimatedTravelTime *int     `json:"estimatedTravelTime,omitempty" bson:"estimatedTravelTime,omitempty"`

	Status    AppointmentStatus `json:"status" bson:"status"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
}
