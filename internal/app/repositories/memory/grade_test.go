package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/models"
)

func newGrade(studentID int64, subject string, score float64) models.Grade {
	return models.Grade{
		StudentID: studentID,
		Subject:   subject,
		Score:     score,
		MaxScore:  100,
		Term:      "First Quarter",
		Date:      "2026-03-02",
	}
}

func TestGradeRepositoryFilters(t *testing.T) {
	repo := NewGradeRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newGrade(1, "Mathematics", 95))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newGrade(2, "Mathematics", 72))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newGrade(1, "English", 88))
	require.NoError(t, err)

	byStudent, err := repo.GetByStudent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byStudent, 2)
	assert.Equal(t, "Mathematics", byStudent[0].Subject)
	assert.Equal(t, "English", byStudent[1].Subject)

	bySubject, err := repo.GetBySubject(ctx, "Mathematics")
	require.NoError(t, err)
	assert.Len(t, bySubject, 2)

	// subject match is exact, not case-folded
	none, err := repo.GetBySubject(ctx, "mathematics")
	require.NoError(t, err)
	assert.Empty(t, none)
}
