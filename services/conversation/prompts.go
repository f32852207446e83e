package conversation

import (
	"fmt"

	"doctigo/catalog"
	"doctigo/models"
)

func (e *Engine) askNameDirective() *Directive {
	return &Directive{
		Kind:   DirectiveAskName,
		Prompt: "Hello! I am Doc, your friendly neighborhood Spider Doc. What's your name?",
	}
}

func (e *Engine) askSymptomsDirective(session *models.Session) *Directive {
	d := &Directive{
		Kind:      DirectiveAskSymptoms,
		Prompt:    "Enter your symptoms or type 'next'.",
		Emergency: session.BookingType == models.BookingTypeEmergency,
	}
	if d.Emergency {
		d.Prompt = "Woooo it's an EMERGENCY! Just enter symptoms or type 'next'."
	}
	return d
}

func (e *Engine) choosePathDirective() *Directive {
	return &Directive{
		Kind:   DirectiveChoosePath,
		Prompt: "Would you like to browse doctors or hospitals?",
	}
}

func (e *Engine) showDoctorsDirective(session *models.Session) *Directive {
	doctors := session.MatchedDoctors
	listings := make([]DoctorListing, 0, len(doctors))
	for _, doc := range doctors {
		listing := DoctorListing{Doctor: doc}
		if session.UserLocation != nil {
			if hosp, ok := e.Catalog.HospitalByName(doc.Chamber); ok && (hosp.Latitude != 0 || hosp.Longitude != 0) {
				km := catalog.Haversine(session.UserLocation.Latitude, session.UserLocation.Longitude, hosp.Latitude, hosp.Longitude)
				eta := catalog.EstimateTravelMinutes(km)
				listing.DistanceKm = &km
				listing.EtaMinutes = &eta
			}
		}
		listings = append(listings, listing)
	}
	return &Directive{
		Kind:    DirectiveShowDoctors,
		Prompt:  "Based on your information, here are available doctors:",
		Doctors: listings,
	}
}

func (e *Engine) showHospitalsDirective(session *models.Session) *Directive {
	hospitals := e.Catalog.ListHospitals()
	listings := make([]HospitalListing, 0, len(hospitals))
	for _, hosp := range hospitals {
		listing := HospitalListing{Hospital: hosp}
		if session.UserLocation != nil && (hosp.Latitude != 0 || hosp.Longitude != 0) {
			km := catalog.Haversine(session.UserLocation.Latitude, session.UserLocation.Longitude, hosp.Latitude, hosp.Longitude)
			eta := catalog.EstimateTravelMinutes(km)
			listing.DistanceKm = &km
			listing.EtaMinutes = &eta
		}
		listings = append(listings, listing)
	}
	return &Directive{
		Kind:      DirectiveShowHospitals,
		Prompt:    "Here are the hospitals we work with:",
		Hospitals: listings,
	}
}

func (e *Engine) askBedDirective() *Directive {
	return &Directive{
		Kind:       DirectiveAskBed,
		Prompt:     "Do you need to book a Bed or Cabin? Please choose:",
		BedOptions: catalog.BedOptions(),
	}
}

func (e *Engine) askVitalsDirective() *Directive {
	return &Directive{
		Kind:   DirectiveAskVitals,
		Prompt: "Would you like to attach your recent vitals to this appointment? (yes/no)",
	}
}

func (e *Engine) askDetailDirective(session *models.Session) *Directive {
	cursor := session.DetailCursor
	if cursor >= len(models.PatientDetailKeys) {
		cursor = len(models.PatientDetailKeys) - 1
	}
	key := models.PatientDetailKeys[cursor]
	label := models.PatientDetailLabels[key]
	return &Directive{
		Kind:        DirectiveAskDetail,
		Prompt:      fmt.Sprintf("Please enter patient's %s:", label),
		DetailKey:   key,
		DetailLabel: label,
	}
}

func (e *Engine) appointmentCardDirective(session *models.Session) *Directive {
	return &Directive{
		Kind:        DirectiveAppointmentCard,
		Prompt:      "Appointment confirmed! Here's your appointment card:",
		Appointment: session.Appointment,
	}
}
