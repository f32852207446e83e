package models

import "time"

// VitalsSnapshot is the most recent vitals reading published for a session.
type VitalsSnapshot struct {
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
	SystolicBP      float64   `json:"systolicBp" bson:"systolicBp"`
	DiastolicBP     float64   `json:"diastolicBp" bson:"diastolicBp"`
	BodyTemperature float64   `json:"bodyTemperature" bson:"bodyTemperature"`
}
