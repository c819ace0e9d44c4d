package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories/memory"
)

func TestOverviewEmptySchool(t *testing.T) {
	svc := NewReportService(memory.NewRepositories())

	report, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.TotalStudents)
	assert.Zero(t, report.TotalRecords)
	assert.Zero(t, report.AttendanceRate)
	assert.Zero(t, report.AverageGPA)
	assert.Empty(t, report.GradeLevelBreakdown)
	assert.Empty(t, report.SubjectRanking)
}

func TestOverviewComposesAllSections(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReportService(repos)
	ctx := context.Background()

	addStudent := func(gradeLevel string, status models.StudentStatus) models.Student {
		st := validStudent()
		st.GradeLevel = gradeLevel
		st.Status = status
		created, err := repos.Students.Create(ctx, st)
		require.NoError(t, err)
		return created
	}
	first := addStudent("6th Grade", models.StudentStatusActive)
	second := addStudent("6th Grade", models.StudentStatusActive)
	third := addStudent("7th Grade", models.StudentStatusGraduated)

	addGrade := func(studentID int64, subject string, score float64) {
		g := validGrade(studentID)
		g.Subject = subject
		g.Score = score
		_, err := repos.Grades.Create(ctx, g)
		require.NoError(t, err)
	}
	addGrade(first.ID, "Mathematics", 95)
	addGrade(second.ID, "Mathematics", 85)
	addGrade(third.ID, "English", 72)

	_, err := repos.Attendance.Create(ctx, mark(first.ID, "2026-03-02", models.AttendancePresent))
	require.NoError(t, err)
	_, err = repos.Attendance.Create(ctx, mark(second.ID, "2026-03-02", models.AttendanceAbsent))
	require.NoError(t, err)

	report, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalStudents)
	assert.Equal(t, 2, report.ActiveStudents)
	assert.Equal(t, 3, report.TotalGrades)
	assert.Equal(t, 2, report.TotalAttendanceRecords)
	assert.Equal(t, 5, report.TotalRecords)
	assert.InDelta(t, 50.0, report.AttendanceRate, 0.001)

	// levels sorted by name
	require.Len(t, report.GradeLevelBreakdown, 2)
	assert.Equal(t, "6th Grade", report.GradeLevelBreakdown[0].GradeLevel)
	assert.Equal(t, 2, report.GradeLevelBreakdown[0].Students)
	assert.Equal(t, "7th Grade", report.GradeLevelBreakdown[1].GradeLevel)

	// subjects ranked best average first, with per-subject counts
	require.Len(t, report.SubjectRanking, 2)
	assert.Equal(t, "Mathematics", report.SubjectRanking[0].Subject)
	assert.InDelta(t, 90.0, report.SubjectRanking[0].Average, 0.001)
	assert.Equal(t, 2, report.SubjectRanking[0].Count)
	assert.Equal(t, "English", report.SubjectRanking[1].Subject)
}

func TestOverviewRankingKeepsFirstSeenOrderOnTies(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewReportService(repos)
	ctx := context.Background()

	st := validStudent()
	student, err := repos.Students.Create(ctx, st)
	require.NoError(t, err)

	for _, subject := range []string{"History", "Art"} {
		g := validGrade(student.ID)
		g.Subject = subject
		g.Score = 80
		_, err := repos.Grades.Create(ctx, g)
		require.NoError(t, err)
	}

	report, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, report.SubjectRanking, 2)
	assert.Equal(t, "History", report.SubjectRanking[0].Subject)
	assert.Equal(t, "Art", report.SubjectRanking[1].Subject)
}
