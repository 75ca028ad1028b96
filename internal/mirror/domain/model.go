package domain

import (
	"time"

	attdomain "github.com/clubnatacion/swimclub-backend/internal/attendance/domain"
)

// AthleteRow is the relational projection of one roster document.
type AthleteRow struct {
	AthleteID  string
	Name       string
	BirthDate  string
	Gender     string
	Status     string
	RUT        string
	UpdatedAt  time.Time
	SyncedAt   time.Time
}

// AttendanceRollup aggregates one athlete's presence per calendar month.
type AttendanceRollup struct {
	AthleteID string
	Month     string // YYYY-MM
	Present   int
	Absent    int
	Justified int
}

// BuildRollups folds attendance records into per-athlete per-month counters.
// Records with malformed dates are ignored. Output order is unspecified.
func BuildRollups(records []*attdomain.Attendance) []*AttendanceRollup {
	byKey := make(map[[2]string]*AttendanceRollup)
	for _, rec := range records {
		if len(rec.Date) < 7 {
			continue
		}
		key := [2]string{rec.AthleteID, rec.Date[:7]}
		roll, ok := byKey[key]
		if !ok {
			roll = &AttendanceRollup{AthleteID: rec.AthleteID, Month: rec.Date[:7]}
			byKey[key] = roll
		}

		switch {
		case rec.Present:
			roll.Present++
		case rec.Justified:
			roll.Justified++
		default:
			roll.Absent++
		}
	}

	out := make([]*AttendanceRollup, 0, len(byKey))
	for _, roll := range byKey {
		out = append(out, roll)
	}
	return out
}
