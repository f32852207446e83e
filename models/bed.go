package models

// BedType is the closed set of reservable unit types.
type BedType string

const (
	BedTypeGeneralBed   BedType = "General Bed"
	BedTypeGeneralCabin BedType = "General Cabin"
	BedTypeVIPCabin     BedType = "VIP Cabin"
)

// ValidBedType reports whether t belongs to the closed bed type set.
func ValidBedType(t BedType) bool {
	switch t {
	case BedTypeGeneralBed, BedTypeGeneralCabin, BedTypeVIPCabin:
		return true
	}
	return false
}

// BedOption describes one reservable unit type as presented to the user.
type BedOption struct {
	Type     BedType  `json:"type"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
	Icon     string   `json:"icon,omitempty"`
}

// BedSelection is the confirmed reservation stored on a session. Serial is
// populated only after the inventory manager has issued it.
type BedSelection struct {
	Type     BedType  `json:"type" bson:"type"`
	Price    float64  `json:"price" bson:"price"`
	Features []string `json:"features" bson:"features"`
	Serial   int      `json:"serial" bson:"serial"`
}

// BedStock configures inventory for one (hospital, bed type) pair. PreBooked
// units occupy the lowest serials at startup and are never issued again.
type BedStock struct {
	HospitalID string  `json:"hospitalId"`
	Type       BedType `json:"type"`
	Total      int     `json:"total"`
	PreBooked  int     `json:"preBooked"`
}
