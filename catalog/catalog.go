package catalog

import "doctigo/models"

// Directory is the read-only doctor and hospital catalog. The entries are
// fixed for the process lifetime; the feed behind them is assumed static.
type Directory struct {
	doctors   []models.Doctor
	hospitals []models.Hospital
}

// NewDirectory returns a directory seeded with the built-in catalog feed.
func NewDirectory() *Directory {
	return NewDirectoryWith(defaultDoctors, defaultHospitals)
}

// NewDirectoryWith returns a directory over the given feed. Callers must not
// mutate the slices after handing them over.
func NewDirectoryWith(doctors []models.Doctor, hospitals []models.Hospital) *Directory {
	return &Directory{doctors: doctors, hospitals: hospitals}
}

// ListDoctors returns the full doctor list.
func (d *Directory) ListDoctors() []models.Doctor {
	out := make([]models.Doctor, len(d.doctors))
	copy(out, d.doctors)
	return out
}

// ListHospitals returns the full hospital list.
func (d *Directory) ListHospitals() []models.Hospital {
	out := make([]models.Hospital, len(d.hospitals))
	copy(out, d.hospitals)
	return out
}

// DoctorByID looks up a doctor by ID.
func (d *Directory) DoctorByID(id string) (models.Doctor, bool) {
	for _, doc := range d.doctors {
		if doc.ID == id {
			return doc, true
		}
	}
	return models.Doctor{}, false
}

// HospitalByID looks up a hospital by ID.
func (d *Directory) HospitalByID(id string) (models.Hospital, bool) {
	for _, h := range d.hospitals {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hospital{}, false
}

// HospitalByName resolves a hospital by its display name. Doctor chambers
// reference hospitals by name, so inventory lookups go through here.
func (d *Directory) HospitalByName(name string) (models.Hospital, bool) {
	for _, h := range d.hospitals {
		if h.Name == name {
			return h, true
		}
	}
	return models.Hospital{}, false
}

// CommonSymptoms is the selector's suggestion list; free-text symptoms are
// accepted as well.
var CommonSymptoms = []string{
	"Fever", "Headache", "Cough", "Sore throat", "Body ache",
	"Nausea", "Vomiting", "Diarrhea", "Chest pain", "Shortness of breath",
	"Dizziness", "Fatigue", "Loss of appetite", "Stomach pain", "Joint pain",
}

var defaultHospitals = []models.Hospital{
	{
		ID:               "hosp-city",
		Name:             "City Hospital",
		Address:          "12 Park Street, Kolkata",
		Latitude:         22.5726,
		Longitude:        88.3639,
		Phone:            "+91-33-2217-0001",
		EmergencyContact: "+91-33-2217-0911",
	},
	{
		ID:               "hosp-munni",
		Name:             "Munni Medical Hall",
		Address:          "45 College Road, Howrah",
		Latitude:         22.5958,
		Longitude:        88.2636,
		Phone:            "+91-33-2638-0002",
		EmergencyContact: "+91-33-2638-0912",
	},
	{
		ID:               "hosp-greenview",
		Name:             "Greenview Clinic",
		Address:          "8 Lake Gardens, Kolkata",
		Latitude:         22.5075,
		Longitude:        88.3582,
		Phone:            "+91-33-2417-0003",
		EmergencyContact: "+91-33-2417-0913",
	},
}

var defaultDoctors = []models.Doctor{
	{
		ID:             "doc-amit-kumar",
		Name:           "Amit Kumar",
		Specialization: "General Medicine",
		Chamber:        "City Hospital",
		VisitingHours:  "11:00am-2:00pm",
		AvailableSlots: []string{"11:00am-11:30am", "12:00pm-12:30pm"},
		Experience:     "15 yrs",
	},
	{
		ID:             "doc-suvajoyti",
		Name:           "Suvajoyti Chakraborty",
		Specialization: "Surgeon",
		Chamber:        "Munni Medical Hall",
		VisitingHours:  "1:00pm-4:00pm",
		AvailableSlots: []string{"1:00pm-1:30pm", "2:00pm-2:30pm"},
		Experience:     "20 yrs",
	},
	{
		ID:             "doc-rina-sen",
		Name:           "Rina Sen",
		Specialization: "Cardiologist",
		Chamber:        "City Hospital",
		VisitingHours:  "10:00am-1:00pm",
		AvailableSlots: []string{"10:00am-10:30am", "11:30am-12:00pm"},
		Experience:     "12 yrs",
	},
	{
		ID:             "doc-farhan-ali",
		Name:           "Farhan Ali",
		Specialization: "Gastroenterologist",
		Chamber:        "Greenview Clinic",
		VisitingHours:  "4:00pm-7:00pm",
		AvailableSlots: []string{"4:00pm-4:30pm", "5:00pm-5:30pm"},
		Experience:     "9 yrs",
	},
	{
		ID:             "doc-priya-nair",
		Name:           "Priya Nair",
		Specialization: "Orthopedist",
		Chamber:        "Greenview Clinic",
		VisitingHours:  "9:00am-12:00pm",
		AvailableSlots: []string{"9:00am-9:30am", "10:30am-11:00am"},
		Experience:     "17 yrs",
	},
	{
		ID:             "doc-joydeep-bose",
		Name:           "Joydeep Bose",
		Specialization: "Pulmonologist",
		Chamber:        "Munni Medical Hall",
		VisitingHours:  "5:00pm-8:00pm",
		AvailableSlots: []string{"5:00pm-5:30pm", "6:30pm-7:00pm"},
		Experience:     "11 yrs",
	},
}
