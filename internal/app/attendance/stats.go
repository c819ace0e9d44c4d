// Package attendance computes summary statistics over attendance records.
// It is a pure read-side aggregator: repositories own the records, this
// package only ever sees snapshots.
package attendance

import (
	"math"

	"github.com/scholarhub/scholarhub/internal/app/models"
)

// Range is an inclusive date range. Dates are ISO "YYYY-MM-DD" strings, so
// plain string comparison is chronological comparison.
type Range struct {
	Start string `json:"start" form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `json:"end" form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// Contains reports whether date falls inside the range. Empty bounds are
// open-ended.
func (r Range) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// Stats holds per-status counts and the attendance rate for a set of records.
// Rate is a fraction of recorded entries, not of the active roster: students
// with no record in the period do not lower it.
type Stats struct {
	Total          int     `json:"total"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	Excused        int     `json:"excused"`
	AttendanceRate float64 `json:"attendanceRate"`
}

// Compute counts records per status, optionally filtered to rng, and derives
// the attendance rate as (present+late+excused)/total*100 rounded to one
// decimal. An empty input yields zeroed stats with rate 0.
func Compute(records []models.AttendanceRecord, rng *Range) Stats {
	var stats Stats
	for _, rec := range records {
		if rng != nil && !rng.Contains(rec.Date) {
			continue
		}
		stats.Total++
		switch rec.Status {
		case models.AttendancePresent:
			stats.Present++
		case models.AttendanceAbsent:
			stats.Absent++
		case models.AttendanceLate:
			stats.Late++
		case models.AttendanceExcused:
			stats.Excused++
		}
	}
	if stats.Total > 0 {
		attended := float64(stats.Present + stats.Late + stats.Excused)
		stats.AttendanceRate = math.Round(attended/float64(stats.Total)*1000) / 10
	}
	return stats
}
