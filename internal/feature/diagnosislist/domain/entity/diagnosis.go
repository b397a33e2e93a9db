// Package entity defines the domain models for the diagnosislist feature.
package entity

import "time"

// Diagnosis represents one entry in the serious-diagnosis catalog that the
// health-information intake form presents to the user.
type Diagnosis struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
