package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories"
	"github.com/scholarhub/scholarhub/internal/app/repositories/memory"
)

func validCommunication(parentID int64, studentIDs ...int64) models.Communication {
	return models.Communication{
		ParentID:   parentID,
		TeacherID:  7,
		StudentIDs: studentIDs,
		Type:       models.CommunicationMeeting,
		Subject:    "Progress review",
		Notes:      "discussed recent math scores",
	}
}

// seedParent stores a parent contact directly, linked to the given students.
func seedParent(t *testing.T, repo repositories.ParentRepository, studentIDs ...int64) models.Parent {
	t.Helper()
	created, err := repo.Create(context.Background(), validParent(studentIDs...))
	require.NoError(t, err)
	return created
}

func TestCreateCommunicationAssignsTimestamps(t *testing.T) {
	parentRepo := memory.NewParentRepository()
	parent := seedParent(t, parentRepo, 1)

	fixed := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	svc := NewCommunicationService(memory.NewCommunicationRepository(), parentRepo).(*communicationServiceImpl)
	svc.now = func() time.Time { return fixed }

	created, err := svc.CreateCommunication(context.Background(), validCommunication(parent.ID, 1))
	require.NoError(t, err)
	assert.Equal(t, fixed, created.CreatedAt)
	assert.Equal(t, fixed, created.UpdatedAt)
}

func TestCreateCommunicationIgnoresClientTimestamps(t *testing.T) {
	parentRepo := memory.NewParentRepository()
	parent := seedParent(t, parentRepo, 1)
	svc := NewCommunicationService(memory.NewCommunicationRepository(), parentRepo)

	comm := validCommunication(parent.ID, 1)
	comm.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateCommunication(context.Background(), comm)
	require.NoError(t, err)
	assert.True(t, created.CreatedAt.After(comm.CreatedAt))
}

func TestCreateCommunicationValidation(t *testing.T) {
	parentRepo := memory.NewParentRepository()
	parent := seedParent(t, parentRepo, 1, 2)
	svc := NewCommunicationService(memory.NewCommunicationRepository(), parentRepo)
	ctx := context.Background()

	t.Run("Empty subject", func(t *testing.T) {
		comm := validCommunication(parent.ID, 1)
		comm.Subject = "  "
		_, err := svc.CreateCommunication(ctx, comm)
		assertValidationField(t, err, "subject")
	})

	t.Run("Follow-up requested without a date", func(t *testing.T) {
		comm := validCommunication(parent.ID, 1)
		comm.FollowUpRequired = true
		_, err := svc.CreateCommunication(ctx, comm)
		assertValidationField(t, err, "followUpDate")
	})

	t.Run("Malformed follow-up date", func(t *testing.T) {
		comm := validCommunication(parent.ID, 1)
		comm.FollowUpRequired = true
		comm.FollowUpDate = "next week"
		_, err := svc.CreateCommunication(ctx, comm)
		assertValidationField(t, err, "followUpDate")
	})

	t.Run("Unknown parent", func(t *testing.T) {
		_, err := svc.CreateCommunication(ctx, validCommunication(99, 1))
		assertValidationField(t, err, "parentId")
	})

	t.Run("Student not linked to parent", func(t *testing.T) {
		_, err := svc.CreateCommunication(ctx, validCommunication(parent.ID, 1, 3))
		assertValidationField(t, err, "studentIds")
	})

	t.Run("Linked students accepted", func(t *testing.T) {
		_, err := svc.CreateCommunication(ctx, validCommunication(parent.ID, 1, 2))
		assert.NoError(t, err)
	})
}

func TestUpdateCommunicationKeepsCreatedAt(t *testing.T) {
	parentRepo := memory.NewParentRepository()
	parent := seedParent(t, parentRepo, 1)
	svc := NewCommunicationService(memory.NewCommunicationRepository(), parentRepo)
	ctx := context.Background()

	created, err := svc.CreateCommunication(ctx, validCommunication(parent.ID, 1))
	require.NoError(t, err)

	notes := "rescheduled to Friday"
	updated, err := svc.UpdateCommunication(ctx, created.ID, models.CommunicationPatch{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, notes, updated.Notes)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateCommunicationValidatesMergedRecord(t *testing.T) {
	parentRepo := memory.NewParentRepository()
	parent := seedParent(t, parentRepo, 1)
	svc := NewCommunicationService(memory.NewCommunicationRepository(), parentRepo)
	ctx := context.Background()

	created, err := svc.CreateCommunication(ctx, validCommunication(parent.ID, 1))
	require.NoError(t, err)

	required := true
	_, err = svc.UpdateCommunication(ctx, created.ID, models.CommunicationPatch{FollowUpRequired: &required})
	assertValidationField(t, err, "followUpDate")
}
