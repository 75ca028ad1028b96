package domain

import (
	"sort"
	"time"

	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

// Projection is a least-squares extrapolation to a target date.
type Projection struct {
	TargetDate string  `json:"targetDate"`
	TimeMs     int64   `json:"timeMs"`
	Display    string  `json:"display"`
	Slope      float64 `json:"slopeSecondsPerDay"`
}

// Progress summarizes an athlete's history for one (style, distance, pool)
// selection.
type Progress struct {
	Points         int              `json:"points"`
	BestMs         *int64           `json:"bestMs,omitempty"`
	BestDisplay    string           `json:"bestDisplay,omitempty"`
	YearBestMs     map[int]int64    `json:"yearBestMs"`
	ImprovementPct *float64         `json:"improvementPct,omitempty"`
	Projection     *Projection      `json:"projection,omitempty"`
}

type sample struct {
	date    time.Time
	seconds float64
	ms      int64
}

// ComputeProgress derives per-year minima, overall best, first-to-last season
// improvement, and a linear trend projection at targetDate. Results with an
// unparseable date or a non-positive time are skipped, never coerced to zero.
// Fewer than two samples yield no projection; exactly two yield the exact
// line through both.
func ComputeProgress(results []*Result, targetDate *time.Time) *Progress {
	p := &Progress{YearBestMs: map[int]int64{}}

	var samples []sample
	for _, r := range results {
		if r.TimeMs <= 0 {
			continue
		}
		d, err := swimtime.ParseISO(r.Date)
		if err != nil {
			continue
		}
		samples = append(samples, sample{date: d, seconds: swimtime.Seconds(r.TimeMs), ms: r.TimeMs})
	}

	p.Points = len(samples)
	if len(samples) == 0 {
		return p
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].date.Before(samples[j].date) })

	for _, s := range samples {
		year := s.date.Year()
		if best, ok := p.YearBestMs[year]; !ok || s.ms < best {
			p.YearBestMs[year] = s.ms
		}
	}

	best := samples[0].ms
	for _, s := range samples[1:] {
		if s.ms < best {
			best = s.ms
		}
	}
	p.BestMs = &best
	p.BestDisplay = swimtime.FormatMs(best)

	p.ImprovementPct = improvement(p.YearBestMs)

	if targetDate != nil {
		p.Projection = project(samples, *targetDate)
	}

	return p
}

// improvement compares the first and last season minima. One season is not
// enough to improve against.
func improvement(yearBest map[int]int64) *float64 {
	if len(yearBest) < 2 {
		return nil
	}

	years := make([]int, 0, len(yearBest))
	for y := range yearBest {
		years = append(years, y)
	}
	sort.Ints(years)

	first := float64(yearBest[years[0]])
	last := float64(yearBest[years[len(years)-1]])
	if first <= 0 {
		return nil
	}

	pct := (first - last) / first * 100
	return &pct
}

// project fits seconds = a + b*daysSinceFirstSample by least squares and
// evaluates the line at the target date.
func project(samples []sample, target time.Time) *Projection {
	if len(samples) < 2 {
		return nil
	}

	first := samples[0].date
	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(samples))
	for _, s := range samples {
		x := s.date.Sub(first).Hours() / 24
		sumX += x
		sumY += s.seconds
		sumXY += x * s.seconds
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// All samples share a date; no usable axis.
		return nil
	}

	b := (n*sumXY - sumX*sumY) / denom
	a := (sumY - b*sumX) / n

	x := target.Sub(first).Hours() / 24
	seconds := a + b*x
	if seconds < 0 {
		seconds = 0
	}

	ms := int64(seconds*1000 + 0.5)
	return &Projection{
		TargetDate: swimtime.ToISO(target),
		TimeMs:     ms,
		Display:    swimtime.FormatMs(ms),
		Slope:      b,
	}
}
