package domain

import (
	"errors"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCoach    Role = "coach"
	RoleAthlete  Role = "athlete"
	RoleGuardian Role = "guardian"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RoleAthlete, RoleGuardian:
		return true
	}
	return false
}

// User is one account document in the "users" collection, keyed by the
// Firebase UID. Accounts start unapproved; role and approval are set only by
// an admin action, never self-escalated.
type User struct {
	UID         string     `firestore:"-" json:"uid"`
	Email       string     `firestore:"email" json:"email"`
	DisplayName string     `firestore:"displayName" json:"displayName"`
	Role        Role       `firestore:"role" json:"role"`
	Approved    bool       `firestore:"approved" json:"approved"`
	Phone       *string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	Courses     []string   `firestore:"courses,omitempty" json:"courses,omitempty"`
	PhotoURL    *string    `firestore:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreatedAt   time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `firestore:"updatedAt" json:"updatedAt"`
	LastLoginAt *time.Time `firestore:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)
