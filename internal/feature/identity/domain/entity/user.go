// Package entity defines the domain entities for the identity feature.
package entity

import "time"

// User represents a registered GreyCare account.
// It carries the senior's contact details, a guardian contact, and the
// credential used for authentication.
type User struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey"`

	// Name is the account holder's full name (2-100 characters).
	Name string `gorm:"size:100;not null"`

	// Phone is a 10-digit number, or an 11-digit number starting with 0.
	Phone string `gorm:"size:11;not null;index"`

	// Age is the account holder's age in years (>= 1).
	Age int `gorm:"not null"`

	// Gender is one of "male" or "female".
	Gender string `gorm:"size:10;not null"`

	// Email is the account's login identifier.
	// It must be unique across all accounts; the unique index is the real
	// enforcement point for concurrent signups.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// GuardianEmail is the emergency-contact email. Not unique.
	GuardianEmail string `gorm:"size:255;not null"`

	// GuardianPhone follows the same format rule as Phone.
	GuardianPhone string `gorm:"size:11;not null"`

	// Password is the bcrypt hash of the account password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}
