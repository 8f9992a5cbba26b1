package domain

import "github.com/google/uuid"

// PetProfile carries the pet context sent to the language-model fallback.
// Fields are explicit and optional rather than a string-keyed map so that
// boundary validation happens once, in one place.
type PetProfile struct {
	PetID             uuid.UUID `toon:"-"`
	Name              string    `toon:"name"`
	Breed             string    `toon:"breed,omitempty"`
	AgeYears          *int      `toon:"age_years,omitempty"`
	WeightKg          *float64  `toon:"weight_kg,omitempty"`
	Gender            string    `toon:"gender,omitempty"`
	ActivityLevel     string    `toon:"activity_level,omitempty"`
	MedicalConditions []string  `toon:"medical_conditions,omitempty"`
	Goals             []string  `toon:"goals,omitempty"`
}

// DisplayName returns the pet name or a generic placeholder for prompts.
func (p PetProfile) DisplayName() string {
	if p.Name == "" {
		return "your dog"
	}
	return p.Name
}

// ImageAnalysisContext is the structured result of a prior image analysis,
// optionally included in the language-model prompt.
type ImageAnalysisContext struct {
	Breed           string   `toon:"breed,omitempty"`
	BreedConfidence float64  `toon:"breed_confidence,omitempty"`
	Observations    []string `toon:"observations,omitempty"`
	Concerns        []string `toon:"concerns,omitempty"`
}
