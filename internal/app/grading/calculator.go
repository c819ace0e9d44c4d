package grading

// Letter is the A-F classification of a scored assessment.
type Letter string

// Letter grades, best to worst.
const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterF Letter = "F"
)

// Percentage returns score over maxScore as a percentage. maxScore must be
// positive; writes validate that upstream and the calculator does not
// re-check it.
func Percentage(score, maxScore float64) float64 {
	return score / maxScore * 100
}

// LetterOf buckets a (score, maxScore) pair into a letter grade. Band lower
// bounds at 90/80/70/60 are inclusive, so exactly 90% is an A.
func LetterOf(score, maxScore float64) Letter {
	pct := Percentage(score, maxScore)
	switch {
	case pct >= 90:
		return LetterA
	case pct >= 80:
		return LetterB
	case pct >= 70:
		return LetterC
	case pct >= 60:
		return LetterD
	default:
		return LetterF
	}
}

// Points returns the GPA weight of a letter grade: A=4 down to F=0.
func Points(l Letter) float64 {
	switch l {
	case LetterA:
		return 4
	case LetterB:
		return 3
	case LetterC:
		return 2
	case LetterD:
		return 1
	default:
		return 0
	}
}
