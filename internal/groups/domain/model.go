package domain

import (
	"errors"
	"time"
)

// TimeRange is one scheduled block, "HH:MM" start and end.
type TimeRange struct {
	Start string `firestore:"start" json:"start"`
	End   string `firestore:"end" json:"end"`
}

// Group is a named training cohort. Schedule maps weekday names to the
// session blocks of that day.
type Group struct {
	ID               string                 `firestore:"-" json:"id"`
	Name             string                 `firestore:"name" json:"name"`
	HeadCoach        string                 `firestore:"headCoach" json:"headCoach"`
	AssistantCoaches []string               `firestore:"assistantCoaches,omitempty" json:"assistantCoaches,omitempty"`
	Members          []string               `firestore:"members" json:"members"`
	Schedule         map[string][]TimeRange `firestore:"schedule,omitempty" json:"schedule,omitempty"`
	CreatedAt        time.Time              `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time              `firestore:"updatedAt" json:"updatedAt"`
}

var ErrGroupNotFound = errors.New("group not found")

// MembershipIndex maps athlete id to the group holding it, built by scanning
// all groups. An athlete id should appear in at most one member list; the
// index keeps the first group seen when data violates that.
type MembershipIndex struct {
	byAthlete map[string]*Group
}

func BuildMembershipIndex(groups []*Group) *MembershipIndex {
	idx := &MembershipIndex{byAthlete: make(map[string]*Group)}
	for _, g := range groups {
		for _, athleteID := range g.Members {
			if _, ok := idx.byAthlete[athleteID]; !ok {
				idx.byAthlete[athleteID] = g
			}
		}
	}
	return idx
}

// GroupOf returns the group an athlete belongs to, or nil.
func (idx *MembershipIndex) GroupOf(athleteID string) *Group {
	return idx.byAthlete[athleteID]
}
