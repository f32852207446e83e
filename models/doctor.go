package models

// Doctor is one entry in the read-only doctor directory.
type Doctor struct {
	ID             string   `json:"id" bson:"id"`
	Name           string   `json:"name" bson:"name"`
	Specialization string   `json:"specialization" bson:"specialization"`
	Chamber        string   `json:"chamber" bson:"chamber"`
	VisitingHours  string   `json:"visitingHours,omitempty" bson:"visitingHours,omitempty"`
	AvailableSlots []string `json:"availableSlots" bson:"availableSlots"`
	Experience     string   `json:"experience,omitempty" bson:"experience,omitempty"`
}

// Hospital is one entry in the read-only hospital directory.
type Hospital struct {
	ID               string  `json:"id" bson:"id"`
	Name             string  `json:"name" bson:"name"`
	Address          string  `json:"address" bson:"address"`
	Latitude         float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Phone            string  `json:"phone,omitempty" bson:"phone,omitempty"`
	EmergencyContact string  `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
}

// GeoPoint is a plain latitude/longitude pair supplied by the client.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
