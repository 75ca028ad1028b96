package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attdomain "github.com/clubnatacion/swimclub-backend/internal/attendance/domain"
)

func TestBuildRollups(t *testing.T) {
	records := []*attdomain.Attendance{
		{AthleteID: "a1", Date: "2025-06-02", Present: true},
		{AthleteID: "a1", Date: "2025-06-04", Present: true},
		{AthleteID: "a1", Date: "2025-06-06", Justified: true},
		{AthleteID: "a1", Date: "2025-06-09"},
		{AthleteID: "a1", Date: "2025-07-01", Present: true},
		{AthleteID: "a2", Date: "2025-06-02"},
		{AthleteID: "a2", Date: "bad"},
	}

	rolls := BuildRollups(records)
	require.Len(t, rolls, 3)

	byKey := make(map[string]*AttendanceRollup)
	for _, r := range rolls {
		byKey[r.AthleteID+"/"+r.Month] = r
	}

	june := byKey["a1/2025-06"]
	require.NotNil(t, june)
	assert.Equal(t, 2, june.Present)
	assert.Equal(t, 1, june.Justified)
	assert.Equal(t, 1, june.Absent)

	july := byKey["a1/2025-07"]
	require.NotNil(t, july)
	assert.Equal(t, 1, july.Present)

	other := byKey["a2/2025-06"]
	require.NotNil(t, other)
	assert.Equal(t, 1, other.Absent)
}

func TestBuildRollupsEmpty(t *testing.T) {
	assert.Empty(t, BuildRollups(nil))
}
