package model

import "time"

// PetProfile describes the pet a conversation is about.
// All fields are optional; an empty profile is valid input.
type PetProfile struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name,omitempty"`
	Breed            string   `json:"breed,omitempty"`
	AgeMonths        int      `json:"age,omitempty"`
	WeightKg         float64  `json:"weight,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	Neutered         *bool    `json:"neutered,omitempty"`
	HealthConditions []string `json:"health_conditions,omitempty"`
	Allergies        []string `json:"allergies,omitempty"`
}

// WindowStats is one aggregation window of collar sensor readings.
// ActivityLevel is a pointer because zero is a meaningful reading, not
// an absent one.
type WindowStats struct {
	Timestamp     time.Time `json:"timestamp"`
	HeartRate     float64   `json:"heart_rate,omitempty"`
	HRV           float64   `json:"hrv,omitempty"`
	ActivityLevel *float64  `json:"activity_level,omitempty"`
	Valence       float64   `json:"valence,omitempty"`
	Arousal       float64   `json:"arousal,omitempty"`
	Temperature   float64   `json:"temperature,omitempty"`
	Steps         int       `json:"steps,omitempty"`
}

// Turn is the immutable input to one dispatch cycle.
type Turn struct {
	UserMessage         string
	ConversationSummary string
	PetProfile          *PetProfile
	WindowStats         *WindowStats
	PetPhotoUploaded    bool
	ExplicitLanguage    string
}
