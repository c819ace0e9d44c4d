package models

// Terms lists the grading periods a scored assessment can belong to.
var Terms = []string{
	"First Quarter",
	"Second Quarter",
	"Third Quarter",
	"Fourth Quarter",
	"First Semester",
	"Second Semester",
	"Final Exam",
	"Mid-term Exam",
}

// IsValidTerm reports whether term is one of the enumerated grading periods.
func IsValidTerm(term string) bool {
	for _, t := range Terms {
		if t == term {
			return true
		}
	}
	return false
}

// Grade defines a single scored assessment based on the 'grades' table.
// Score <= MaxScore and MaxScore > 0 are enforced on write; aggregation
// trusts stored rows.
type Grade struct {
	ID        int64   `json:"id" db:"id" example:"1"`
	StudentID int64   `json:"studentId" db:"student_id" binding:"required" example:"1"`
	Subject   string  `json:"subject" db:"subject" binding:"required" example:"Mathematics"`
	Score     float64 `json:"score" db:"score" binding:"min=0" example:"87.5"`
	MaxScore  float64 `json:"maxScore" db:"max_score" binding:"required,gt=0" example:"100"`
	Term      string  `json:"term" db:"term" binding:"required" example:"First Quarter"`
	Date      string  `json:"date" db:"date" binding:"required,datetime=2006-01-02" example:"2024-10-03"`
}

// GradePatch carries the fields of a partial grade update.
type GradePatch struct {
	StudentID *int64   `json:"studentId"`
	Subject   *string  `json:"subject"`
	Score     *float64 `json:"score" binding:"omitempty,min=0"`
	MaxScore  *float64 `json:"maxScore" binding:"omitempty,gt=0"`
	Term      *string  `json:"term"`
	Date      *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Apply merges the patch onto g, leaving nil fields untouched.
func (p GradePatch) Apply(g Grade) Grade {
	if p.StudentID != nil {
		g.StudentID = *p.StudentID
	}
	if p.Subject != nil {
		g.Subject = *p.Subject
	}
	if p.Score != nil {
		g.Score = *p.Score
	}
	if p.MaxScore != nil {
		g.MaxScore = *p.MaxScore
	}
	if p.Term != nil {
		g.Term = *p.Term
	}
	if p.Date != nil {
		g.Date = *p.Date
	}
	return g
}
