// Package entity defines the domain models for the healthinfo feature.
package entity

import "time"

// HealthInfo represents a single submission of the health-information
// intake form. Submissions are append-only and are intentionally not
// linked to a user account.
type HealthInfo struct {
	ID                  uint    `gorm:"primaryKey"`
	BMI                 float64 `gorm:"not null"`
	Hypertension        string  `gorm:"size:10;not null"`
	SmokingHistory      string  `gorm:"size:10;not null"`
	BloodGroup          string  `gorm:"size:10;not null"`
	GlucoseLevel        float64 `gorm:"not null"`
	HasSeriousDiagnosis bool    `gorm:"not null;default:false"`
	CreatedAt           time.Time
}
