package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func res(date string, ms int64) *Result {
	return &Result{
		AthleteID:   "ath-1",
		Style:       "Libre",
		Distance:    100,
		TimeMs:      ms,
		TimeDisplay: "",
		Date:        date,
		Origin:      OriginRace,
		PoolLength:  25,
	}
}

func target(iso string) *time.Time {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestComputeProgressEmpty(t *testing.T) {
	p := ComputeProgress(nil, target("2026-01-01"))
	assert.Equal(t, 0, p.Points)
	assert.Nil(t, p.BestMs)
	assert.Nil(t, p.ImprovementPct)
	assert.Nil(t, p.Projection)
}

func TestComputeProgressSkipsInvalidSamples(t *testing.T) {
	results := []*Result{
		res("2025-03-01", 0),        // unparseable time was stored as 0: skip
		res("not-a-date", 80000),    // bad date: skip
		res("2025-04-01", 81500),
	}

	p := ComputeProgress(results, target("2026-01-01"))
	assert.Equal(t, 1, p.Points)
	require.NotNil(t, p.BestMs)
	assert.Equal(t, int64(81500), *p.BestMs)

	// One point is not a trend.
	assert.Nil(t, p.Projection)
	assert.Nil(t, p.ImprovementPct)
}

func TestComputeProgressYearMinimaAndImprovement(t *testing.T) {
	results := []*Result{
		res("2024-03-01", 90000),
		res("2024-08-01", 88000),
		res("2025-02-01", 86000),
		res("2025-09-01", 81000),
	}

	p := ComputeProgress(results, nil)
	assert.Equal(t, int64(88000), p.YearBestMs[2024])
	assert.Equal(t, int64(81000), p.YearBestMs[2025])
	require.NotNil(t, p.BestMs)
	assert.Equal(t, int64(81000), *p.BestMs)
	assert.Equal(t, "01:21.00", p.BestDisplay)

	// (88000 - 81000) / 88000 = 7.954...%
	require.NotNil(t, p.ImprovementPct)
	assert.InDelta(t, 7.9545, *p.ImprovementPct, 0.001)
}

func TestProjectionTwoPointsIsExactLine(t *testing.T) {
	// 90.0s on day 0, 80.0s on day 100: slope -0.1 s/day.
	results := []*Result{
		res("2025-01-01", 90000),
		res("2025-04-11", 80000), // 100 days later
	}

	p := ComputeProgress(results, target("2025-07-20")) // 200 days after first
	require.NotNil(t, p.Projection)
	assert.InDelta(t, -0.1, p.Projection.Slope, 1e-9)
	assert.Equal(t, int64(70000), p.Projection.TimeMs)
	assert.Equal(t, "01:10.00", p.Projection.Display)
}

func TestProjectionNeverNegative(t *testing.T) {
	results := []*Result{
		res("2025-01-01", 30000),
		res("2025-01-11", 20000),
	}

	p := ComputeProgress(results, target("2026-01-01"))
	require.NotNil(t, p.Projection)
	assert.Equal(t, int64(0), p.Projection.TimeMs)
}

func TestProjectionSameDaySamplesUnavailable(t *testing.T) {
	results := []*Result{
		res("2025-01-01", 90000),
		res("2025-01-01", 80000),
	}

	p := ComputeProgress(results, target("2025-06-01"))
	assert.Nil(t, p.Projection)
}
