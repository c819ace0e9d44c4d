package dto

import (
	"github.com/scholarhub/scholarhub/internal/app/attendance"
	"github.com/scholarhub/scholarhub/internal/app/grading"
)

// GradeLevelCount is one row of the grade-level breakdown.
type GradeLevelCount struct {
	GradeLevel string `json:"grade" example:"6th Grade"`
	Students   int    `json:"students" example:"24"`
}

// SubjectRank is one row of the subject ranking, ordered best average first.
type SubjectRank struct {
	Subject string  `json:"subject" example:"Mathematics"`
	Average float64 `json:"average" example:"85.0"`
	Count   int     `json:"count" example:"12"`
}

// SchoolReport is the cross-entity summary consumed by the dashboard and
// reports views. It is assembled from repository snapshots and the grade and
// attendance aggregators; it holds no logic of its own.
type SchoolReport struct {
	TotalStudents          int     `json:"totalStudents" example:"120"`
	ActiveStudents         int     `json:"activeStudents" example:"114"`
	TotalGrades            int     `json:"totalGrades" example:"860"`
	TotalAttendanceRecords int     `json:"totalAttendanceRecords" example:"2400"`
	TotalRecords           int     `json:"totalRecords" example:"3260"`
	AttendanceRate         float64 `json:"attendanceRate" example:"93.4"`
	AverageGPA             float64 `json:"averageGPA" example:"3.12"`

	GradeDistribution   grading.Distribution `json:"gradeDistribution"`
	SubjectAverages     map[string]float64   `json:"subjectAverages"`
	GradeLevelBreakdown []GradeLevelCount    `json:"gradeLevelBreakdown"`
	SubjectRanking      []SubjectRank        `json:"subjectRanking"`
	Attendance          attendance.Stats     `json:"attendance"`
}
