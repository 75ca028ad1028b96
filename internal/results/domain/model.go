package domain

import (
	"errors"
	"time"
)

type Origin string

const (
	OriginRace     Origin = "Race"
	OriginTraining Origin = "Training"
)

// Result is one performance record. Results are immutable once written; they
// are only created and queried.
type Result struct {
	ID          string    `firestore:"-" json:"id"`
	AthleteID   string    `firestore:"athleteId" json:"athleteId"`
	EventID     *string   `firestore:"eventId,omitempty" json:"eventId,omitempty"` // nil for standalone training entries
	Style       string    `firestore:"style" json:"style"`
	Distance    int       `firestore:"distance" json:"distance"` // meters
	TimeDisplay string    `firestore:"timeDisplay" json:"timeDisplay"`
	TimeMs      int64     `firestore:"timeMs" json:"timeMs"`
	Date        string    `firestore:"date" json:"date"` // ISO YYYY-MM-DD
	Origin      Origin    `firestore:"origin" json:"origin"`
	PoolLength  int       `firestore:"poolLength" json:"poolLength"` // meters
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

var ErrResultNotFound = errors.New("result not found")
