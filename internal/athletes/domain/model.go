package domain

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Athlete is one roster document. Created pending (self-registration or admin
// entry), activated into a group by an admin, or marked inactive on
// rejection/deactivation.
type Athlete struct {
	ID         string    `firestore:"-" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	BirthDate  string    `firestore:"birthDate" json:"birthDate"` // ISO YYYY-MM-DD
	Gender     string    `firestore:"gender" json:"gender"`
	SeasonYear int       `firestore:"seasonYear" json:"seasonYear"`
	Status     Status    `firestore:"status" json:"status"`
	PhotoURL   *string   `firestore:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	RUT        *string   `firestore:"rut,omitempty" json:"rut,omitempty"`
	RUTDisplay *string   `firestore:"rutDisplay,omitempty" json:"rutDisplay,omitempty"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

var (
	ErrAthleteNotFound  = errors.New("athlete not found")
	ErrAlreadyInGroup   = errors.New("athlete already belongs to a group")
	ErrInvalidRUT       = errors.New("invalid RUT")
	ErrInvalidBirthDate = errors.New("invalid birth date")
)
