package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/attendance"
	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories/memory"
)

func mark(studentID int64, date string, status models.AttendanceStatus) models.AttendanceRecord {
	return models.AttendanceRecord{StudentID: studentID, Date: date, Status: status}
}

func TestMarkIsIdempotent(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewAttendanceService(memory.NewAttendanceRepository(), studentRepo)
	student := seedStudent(t, studentRepo)
	ctx := context.Background()

	first, err := svc.Mark(ctx, mark(student.ID, "2026-03-02", models.AttendancePresent))
	require.NoError(t, err)
	second, err := svc.Mark(ctx, mark(student.ID, "2026-03-02", models.AttendancePresent))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	all, err := svc.GetAllRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMarkOverwritesStatusInPlace(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewAttendanceService(memory.NewAttendanceRepository(), studentRepo)
	student := seedStudent(t, studentRepo)
	ctx := context.Background()

	first, err := svc.Mark(ctx, mark(student.ID, "2026-03-02", models.AttendanceAbsent))
	require.NoError(t, err)

	corrected := mark(student.ID, "2026-03-02", models.AttendanceExcused)
	corrected.Notes = "doctor's appointment"
	second, err := svc.Mark(ctx, corrected)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.AttendanceExcused, second.Status)
	assert.Equal(t, "doctor's appointment", second.Notes)
}

func TestMarkValidation(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewAttendanceService(memory.NewAttendanceRepository(), studentRepo)
	student := seedStudent(t, studentRepo)
	ctx := context.Background()

	_, err := svc.Mark(ctx, mark(student.ID, "03-02-2026", models.AttendancePresent))
	assertValidationField(t, err, "date")

	_, err = svc.Mark(ctx, mark(student.ID, "2026-03-02", "tardy"))
	assertValidationField(t, err, "status")

	_, err = svc.Mark(ctx, mark(99, "2026-03-02", models.AttendancePresent))
	assertValidationField(t, err, "studentId")
}

func TestGetStatsAcrossDateRange(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewAttendanceService(memory.NewAttendanceRepository(), studentRepo)
	student := seedStudent(t, studentRepo)
	ctx := context.Background()

	days := []struct {
		date   string
		status models.AttendanceStatus
	}{
		{"2026-03-02", models.AttendancePresent},
		{"2026-03-03", models.AttendanceAbsent},
		{"2026-03-04", models.AttendanceLate},
		{"2026-03-05", models.AttendancePresent},
	}
	for _, d := range days {
		_, err := svc.Mark(ctx, mark(student.ID, d.date, d.status))
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 75.0, stats.AttendanceRate, 0.001)

	ranged, err := svc.GetStats(ctx, &attendance.Range{Start: "2026-03-03", End: "2026-03-04"})
	require.NoError(t, err)
	assert.Equal(t, 2, ranged.Total)
	assert.InDelta(t, 50.0, ranged.AttendanceRate, 0.001)
}

func TestGetStatsRejectsMalformedRange(t *testing.T) {
	svc := NewAttendanceService(memory.NewAttendanceRepository(), memory.NewStudentRepository())

	_, err := svc.GetStats(context.Background(), &attendance.Range{Start: "yesterday"})
	assertValidationField(t, err, "startDate")

	_, err = svc.GetStats(context.Background(), &attendance.Range{End: "2026-3-4"})
	assertValidationField(t, err, "endDate")
}

func TestGetStudentStatsFiltersByStudentAndRange(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewAttendanceService(memory.NewAttendanceRepository(), studentRepo)
	student := seedStudent(t, studentRepo)
	other := seedStudent(t, studentRepo)
	ctx := context.Background()

	_, err := svc.Mark(ctx, mark(student.ID, "2026-03-02", models.AttendancePresent))
	require.NoError(t, err)
	_, err = svc.Mark(ctx, mark(student.ID, "2026-03-03", models.AttendanceAbsent))
	require.NoError(t, err)
	_, err = svc.Mark(ctx, mark(other.ID, "2026-03-02", models.AttendanceAbsent))
	require.NoError(t, err)

	stats, err := svc.GetStudentStats(ctx, student.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Present)

	ranged, err := svc.GetStudentStats(ctx, student.ID, &attendance.Range{Start: "2026-03-03", End: ""})
	require.NoError(t, err)
	assert.Equal(t, 1, ranged.Total)
	assert.Equal(t, 1, ranged.Absent)
}
