package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterOf(t *testing.T) {
	testCases := []struct {
		name     string
		score    float64
		maxScore float64
		expected Letter
	}{
		{name: "Perfect score", score: 100, maxScore: 100, expected: LetterA},
		{name: "Exactly 90 percent is an A", score: 90, maxScore: 100, expected: LetterA},
		{name: "Just under 90 percent is a B", score: 89.9, maxScore: 100, expected: LetterB},
		{name: "Exactly 80 percent is a B", score: 80, maxScore: 100, expected: LetterB},
		{name: "Just under 80 percent is a C", score: 79.9, maxScore: 100, expected: LetterC},
		{name: "Exactly 70 percent is a C", score: 70, maxScore: 100, expected: LetterC},
		{name: "Exactly 60 percent is a D", score: 60, maxScore: 100, expected: LetterD},
		{name: "Just under 60 percent is an F", score: 59.9, maxScore: 100, expected: LetterF},
		{name: "Zero score", score: 0, maxScore: 100, expected: LetterF},
		{name: "Non-100 max score", score: 45, maxScore: 50, expected: LetterA},
		{name: "Fractional percentage rounds nothing", score: 17.5, maxScore: 20, expected: LetterB},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LetterOf(tc.score, tc.maxScore))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 85.0, Percentage(17, 20), 1e-9)
	assert.InDelta(t, 100.0, Percentage(50, 50), 1e-9)
	assert.InDelta(t, 0.0, Percentage(0, 100), 1e-9)
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 4.0, Points(LetterA))
	assert.Equal(t, 3.0, Points(LetterB))
	assert.Equal(t, 2.0, Points(LetterC))
	assert.Equal(t, 1.0, Points(LetterD))
	assert.Equal(t, 0.0, Points(LetterF))
}

// Letter grades never improve as the score drops.
func TestLetterOfMonotonic(t *testing.T) {
	order := map[Letter]int{LetterA: 4, LetterB: 3, LetterC: 2, LetterD: 1, LetterF: 0}

	prev := LetterOf(100, 100)
	for score := 99.5; score >= 0; score -= 0.5 {
		current := LetterOf(score, 100)
		assert.LessOrEqual(t, order[current], order[prev], "score %.1f", score)
		prev = current
	}
}
