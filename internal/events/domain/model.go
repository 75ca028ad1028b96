package domain

import (
	"errors"
	"time"
)

type Status string

const (
	StatusOpen   Status = "abierto"
	StatusClosed Status = "cerrado"
)

// Event is a competition or meet.
type Event struct {
	ID         string    `firestore:"-" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	Date       string    `firestore:"date" json:"date"` // ISO YYYY-MM-DD
	Location   string    `firestore:"location" json:"location"`
	PoolLength int       `firestore:"poolLength" json:"poolLength"` // meters
	Qualifying bool      `firestore:"qualifying" json:"qualifying"`
	Status     Status    `firestore:"status" json:"status"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

var ErrEventNotFound = errors.New("event not found")
