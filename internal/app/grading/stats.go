package grading

import (
	"math"

	"github.com/scholarhub/scholarhub/internal/app/models"
)

// Distribution counts grades per letter band.
type Distribution struct {
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
	D int `json:"D"`
	F int `json:"F"`
}

// Total returns the number of grades counted across all bands.
func (d Distribution) Total() int {
	return d.A + d.B + d.C + d.D + d.F
}

// Stats summarizes a set of grade records: letter distribution, average GPA
// and mean percentage per subject. Subject keys are case-sensitive, so
// "math" and "Math" aggregate separately.
type Stats struct {
	TotalGrades     int                `json:"totalGrades"`
	AverageGPA      float64            `json:"averageGPA"`
	Distribution    Distribution       `json:"gradeDistribution"`
	SubjectAverages map[string]float64 `json:"subjectAverages"`

	subjects []string
}

// Subjects returns subject names in first-seen order. Report ranking uses
// this order to break ties stably.
func (s Stats) Subjects() []string {
	return append([]string(nil), s.subjects...)
}

// Compute aggregates grades into Stats. An empty input yields zeroed stats,
// never an error: an empty grade book is a valid steady state. Letter bands
// come from LetterOf so the thresholds live in exactly one place.
func Compute(grades []models.Grade) Stats {
	stats := Stats{
		TotalGrades:     len(grades),
		SubjectAverages: map[string]float64{},
	}
	if len(grades) == 0 {
		return stats
	}

	var totalPoints float64
	sums := map[string]float64{}
	counts := map[string]int{}

	for _, g := range grades {
		switch LetterOf(g.Score, g.MaxScore) {
		case LetterA:
			stats.Distribution.A++
		case LetterB:
			stats.Distribution.B++
		case LetterC:
			stats.Distribution.C++
		case LetterD:
			stats.Distribution.D++
		case LetterF:
			stats.Distribution.F++
		}
		totalPoints += Points(LetterOf(g.Score, g.MaxScore))

		if _, seen := counts[g.Subject]; !seen {
			stats.subjects = append(stats.subjects, g.Subject)
		}
		sums[g.Subject] += Percentage(g.Score, g.MaxScore)
		counts[g.Subject]++
	}

	stats.AverageGPA = round2(totalPoints / float64(len(grades)))
	for _, subject := range stats.subjects {
		stats.SubjectAverages[subject] = round1(sums[subject] / float64(counts[subject]))
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
