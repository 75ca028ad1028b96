package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceDocID(t *testing.T) {
	a := &Attendance{AthleteID: "ath-1", Date: "2025-06-15", GroupID: "g-2"}
	assert.Equal(t, "ath-1_2025-06-15_g-2", a.DocID())

	// Deterministic: the same logical record always maps to the same id.
	b := &Attendance{AthleteID: "ath-1", Date: "2025-06-15", GroupID: "g-2", Present: true}
	assert.Equal(t, a.DocID(), b.DocID())

	assert.NotEqual(t, a.DocID(), AttendanceDocID("ath-1", "2025-06-16", "g-2"))
}
