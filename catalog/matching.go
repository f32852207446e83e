package catalog

import (
	"strings"

	"doctigo/models"
)

// symptomSpecializations maps normalized symptom text to the specialization
// best suited to treat it. Symptoms outside this table simply don't narrow
// the result set.
var symptomSpecializations = map[string]string{
	"fever":               "General Medicine",
	"headache":            "General Medicine",
	"body ache":           "General Medicine",
	"fatigue":             "General Medicine",
	"dizziness":           "General Medicine",
	"loss of appetite":    "General Medicine",
	"cough":               "Pulmonologist",
	"sore throat":         "Pulmonologist",
	"shortness of breath": "Pulmonologist",
	"chest pain":          "Cardiologist",
	"nausea":              "Gastroenterologist",
	"vomiting":            "Gastroenterologist",
	"diarrhea":            "Gastroenterologist",
	"stomach pain":        "Gastroenterologist",
	"joint pain":          "Orthopedist",
}

// FilterDoctorsBySymptoms returns the doctors whose specialization matches any
// of the given symptoms. Matching is case-insensitive and ignores surrounding
// whitespace. When the input is empty, or none of the symptoms map to a known
// specialization, the full doctor list is returned so the flow never dead-ends.
func (d *Directory) FilterDoctorsBySymptoms(symptoms []string) []models.Doctor {
	wanted := make(map[string]bool)
	for _, s := range symptoms {
		key := strings.ToLower(strings.TrimSpace(s))
		if spec, ok := symptomSpecializations[key]; ok {
			wanted[spec] = true
		}
	}
	if len(wanted) == 0 {
		return d.ListDoctors()
	}

	var matched []models.Doctor
	for _, doc := range d.doctors {
		if wanted[doc.Specialization] {
			matched = append(matched, doc)
		}
	}
	if len(matched) == 0 {
		return d.ListDoctors()
	}
	return matched
}
