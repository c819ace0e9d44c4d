package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

func newCommunication(parentID int64, subject string) models.Communication {
	created := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	return models.Communication{
		ParentID:   parentID,
		TeacherID:  7,
		StudentIDs: []int64{1},
		Type:       models.CommunicationMeeting,
		Subject:    subject,
		Notes:      "discussed recent progress",
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestCommunicationRepositoryUpdateBumpsUpdatedAt(t *testing.T) {
	repo := NewCommunicationRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newCommunication(1, "Progress review"))
	require.NoError(t, err)

	subject := "Progress review (rescheduled)"
	updated, err := repo.Update(ctx, created.ID, models.CommunicationPatch{Subject: &subject})
	require.NoError(t, err)

	assert.Equal(t, subject, updated.Subject)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestCommunicationRepositoryUpdateReplacesStudentIDs(t *testing.T) {
	repo := NewCommunicationRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newCommunication(1, "Progress review"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, models.CommunicationPatch{StudentIDs: []int64{2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, updated.StudentIDs)

	// nil leaves the linked students alone
	again, err := repo.Update(ctx, created.ID, models.CommunicationPatch{})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, again.StudentIDs)
}

func TestCommunicationRepositoryGetByParent(t *testing.T) {
	repo := NewCommunicationRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newCommunication(1, "Progress review"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newCommunication(2, "Field trip consent"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newCommunication(1, "Attendance concern"))
	require.NoError(t, err)

	logged, err := repo.GetByParent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logged, 2)
	assert.Equal(t, "Progress review", logged[0].Subject)
	assert.Equal(t, "Attendance concern", logged[1].Subject)
}

func TestCommunicationRepositoryNotFound(t *testing.T) {
	repo := NewCommunicationRepository()

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrCommunicationNotFound)
}
