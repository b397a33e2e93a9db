// Package entity defines the domain models for the triage feature.
package entity

import "time"

// Condition values accepted by the instant clinic.
const (
	ConditionHeart    = "heart"
	ConditionEye      = "eye"
	ConditionDiabetes = "diabetes"
)

// TriageSubmission represents one instant-clinic triage form submission.
// Only the readings relevant to the selected condition are filled in; the
// form sends the rest as empty strings. The eye photo never reaches the
// server, so there is no image column.
type TriageSubmission struct {
	ID        uint   `gorm:"primaryKey"`
	Condition string `gorm:"size:20;not null;index"`

	// Heart problem readings.
	HeartRate        string `gorm:"size:20"`
	BloodPressure    string `gorm:"size:20"`
	HighBP           string `gorm:"size:10"`
	Stroke           string `gorm:"size:10"`
	HighCholesterol  string `gorm:"size:10"`
	CholesterolCheck string `gorm:"size:10"`
	PhysicalActivity string `gorm:"size:10"`

	// Diabetes readings.
	HasDiabetes       string `gorm:"size:10"`
	HbA1cLevel        string `gorm:"size:20"`
	BloodGlucoseLevel string `gorm:"size:20"`

	CreatedAt time.Time
}
