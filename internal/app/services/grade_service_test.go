package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories/memory"
)

func validGrade(studentID int64) models.Grade {
	return models.Grade{
		StudentID: studentID,
		Subject:   "Mathematics",
		Score:     87.5,
		MaxScore:  100,
		Term:      "First Quarter",
		Date:      "2026-03-02",
	}
}

func TestCreateGradeValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*models.Grade)
		field  string
	}{
		{name: "Empty subject", mutate: func(g *models.Grade) { g.Subject = " " }, field: "subject"},
		{name: "Negative score", mutate: func(g *models.Grade) { g.Score = -1 }, field: "score"},
		{name: "Zero max score", mutate: func(g *models.Grade) { g.MaxScore = 0 }, field: "maxScore"},
		{name: "Score above max", mutate: func(g *models.Grade) { g.Score = 101 }, field: "score"},
		{name: "Unknown term", mutate: func(g *models.Grade) { g.Term = "Fifth Quarter" }, field: "term"},
		{name: "Malformed date", mutate: func(g *models.Grade) { g.Date = "03/02/2026" }, field: "date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			studentRepo := memory.NewStudentRepository()
			svc := NewGradeService(memory.NewGradeRepository(), studentRepo)
			student := seedStudent(t, studentRepo)

			grade := validGrade(student.ID)
			tc.mutate(&grade)
			_, err := svc.CreateGrade(context.Background(), grade)
			assertValidationField(t, err, tc.field)
		})
	}
}

func TestCreateGradeRejectsUnknownStudent(t *testing.T) {
	svc := NewGradeService(memory.NewGradeRepository(), memory.NewStudentRepository())

	_, err := svc.CreateGrade(context.Background(), validGrade(12))
	assertValidationField(t, err, "studentId")
}

func TestCreateGradeAcceptsPerfectScore(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewGradeService(memory.NewGradeRepository(), studentRepo)
	student := seedStudent(t, studentRepo)

	grade := validGrade(student.ID)
	grade.Score = 100
	created, err := svc.CreateGrade(context.Background(), grade)
	require.NoError(t, err)
	assert.Equal(t, float64(100), created.Score)
}

func TestGradeStats(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewGradeService(memory.NewGradeRepository(), studentRepo)
	student := seedStudent(t, studentRepo)
	other := seedStudent(t, studentRepo)
	ctx := context.Background()

	for _, g := range []struct {
		studentID int64
		subject   string
		score     float64
	}{
		{student.ID, "Mathematics", 95},
		{student.ID, "English", 72},
		{other.ID, "Mathematics", 85},
	} {
		grade := validGrade(g.studentID)
		grade.Subject = g.subject
		grade.Score = g.score
		_, err := svc.CreateGrade(ctx, grade)
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalGrades)
	assert.InDelta(t, 90.0, stats.SubjectAverages["Mathematics"], 0.001)

	studentStats, err := svc.GetStudentStats(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, studentStats.TotalGrades)
	// A (4) and C (2) average to 3.0
	assert.InDelta(t, 3.0, studentStats.AverageGPA, 0.001)
}
