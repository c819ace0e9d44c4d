package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

func newRecord(studentID int64, date string, status models.AttendanceStatus) models.AttendanceRecord {
	return models.AttendanceRecord{
		StudentID: studentID,
		Date:      date,
		Status:    status,
	}
}

func TestAttendanceRepositoryCreateRejectsDuplicateKey(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newRecord(1, "2026-03-02", models.AttendancePresent))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newRecord(1, "2026-03-02", models.AttendanceAbsent))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// same student on another day, and another student on the same day, are fine
	_, err = repo.Create(ctx, newRecord(1, "2026-03-03", models.AttendancePresent))
	assert.NoError(t, err)
	_, err = repo.Create(ctx, newRecord(2, "2026-03-02", models.AttendancePresent))
	assert.NoError(t, err)
}

func TestAttendanceRepositoryUpsertCreatesWhenAbsent(t *testing.T) {
	repo := NewAttendanceRepository()

	rec, err := repo.Upsert(context.Background(), newRecord(1, "2026-03-02", models.AttendancePresent))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, models.AttendancePresent, rec.Status)
}

func TestAttendanceRepositoryUpsertReplacesInPlace(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, newRecord(1, "2026-03-02", models.AttendancePresent))
	require.NoError(t, err)

	marked := newRecord(1, "2026-03-02", models.AttendanceLate)
	marked.Notes = "bus delay"
	second, err := repo.Upsert(ctx, marked)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.AttendanceLate, second.Status)
	assert.Equal(t, "bus delay", second.Notes)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAttendanceRepositoryUpsertIsIdempotent(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	rec := newRecord(3, "2026-03-02", models.AttendanceExcused)
	first, err := repo.Upsert(ctx, rec)
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, rec)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAttendanceRepositoryGetByDate(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newRecord(1, "2026-03-02", models.AttendancePresent))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newRecord(2, "2026-03-02", models.AttendanceAbsent))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newRecord(1, "2026-03-03", models.AttendancePresent))
	require.NoError(t, err)

	day, err := repo.GetByDate(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, day, 2)
}

func TestAttendanceRepositoryGetByRange(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	dates := []string{"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05"}
	for i, d := range dates {
		_, err := repo.Create(ctx, newRecord(int64(i+1), d, models.AttendancePresent))
		require.NoError(t, err)
	}

	testCases := []struct {
		name       string
		start, end string
		expected   int
	}{
		{name: "Inclusive bounds", start: "2026-03-03", end: "2026-03-04", expected: 2},
		{name: "Open start", start: "", end: "2026-03-03", expected: 2},
		{name: "Open end", start: "2026-03-04", end: "", expected: 2},
		{name: "Both open returns everything", start: "", end: "", expected: 4},
		{name: "No overlap", start: "2026-04-01", end: "2026-04-30", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := repo.GetByRange(ctx, tc.start, tc.end)
			require.NoError(t, err)
			assert.Len(t, records, tc.expected)
		})
	}
}

func TestAttendanceRepositoryNotFound(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 7)
	assert.ErrorIs(t, err, apperrors.ErrAttendanceNotFound)

	notes := "x"
	_, err = repo.Update(ctx, 7, models.AttendancePatch{Notes: &notes})
	assert.ErrorIs(t, err, apperrors.ErrAttendanceNotFound)

	_, err = repo.Delete(ctx, 7)
	assert.ErrorIs(t, err, apperrors.ErrAttendanceNotFound)
}
