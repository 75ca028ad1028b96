package domain

import (
	"fmt"
	"time"
)

// Attendance is one presence record per (athlete, session date, group). The
// document id is the deterministic composite key, so saving the same session
// twice overwrites instead of duplicating.
type Attendance struct {
	AthleteID  string    `firestore:"athleteId" json:"athleteId"`
	Date       string    `firestore:"date" json:"date"` // ISO YYYY-MM-DD
	GroupID    string    `firestore:"groupId" json:"groupId"`
	Present    bool      `firestore:"present" json:"present"`
	Justified  bool      `firestore:"justified" json:"justified"`
	Note       string    `firestore:"note,omitempty" json:"note,omitempty"`
	RecordedBy string    `firestore:"recordedBy" json:"recordedBy"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// DocID is the composite key "{athleteId}_{sessionDateISO}_{groupId}".
func (a *Attendance) DocID() string {
	return AttendanceDocID(a.AthleteID, a.Date, a.GroupID)
}

func AttendanceDocID(athleteID, dateISO, groupID string) string {
	return fmt.Sprintf("%s_%s_%s", athleteID, dateISO, groupID)
}

// SessionMeta is per session-date metadata: a cancelled flag and the groups
// granted an exceptional training that day. Keyed by the ISO date.
type SessionMeta struct {
	Date              string    `firestore:"date" json:"date"`
	Cancelled         bool      `firestore:"cancelled" json:"cancelled"`
	ExceptionalGroups []string  `firestore:"exceptionalGroups,omitempty" json:"exceptionalGroups,omitempty"`
	UpdatedAt         time.Time `firestore:"updatedAt" json:"updatedAt"`
}
