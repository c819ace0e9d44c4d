package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories"
	"github.com/scholarhub/scholarhub/internal/app/repositories/memory"
)

func validParent(studentIDs ...int64) models.Parent {
	return models.Parent{
		FirstName:    "Sarah",
		LastName:     "Johnson",
		Email:        "sarah.johnson@example.com",
		Phone:        "555-0143",
		Relationship: models.RelationshipMother,
		StudentIDs:   studentIDs,
		IsPrimary:    true,
	}
}

// seedStudent stores a roster record directly so parent tests can link to it.
func seedStudent(t *testing.T, repo repositories.StudentRepository) models.Student {
	t.Helper()
	created, err := repo.Create(context.Background(), validStudent())
	require.NoError(t, err)
	return created
}

func TestCreateParentRequiresLinkedStudents(t *testing.T) {
	svc := NewParentService(memory.NewParentRepository(), memory.NewStudentRepository())

	_, err := svc.CreateParent(context.Background(), validParent())
	assertValidationField(t, err, "studentIds")
}

func TestCreateParentRejectsUnknownStudent(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewParentService(memory.NewParentRepository(), studentRepo)
	student := seedStudent(t, studentRepo)

	_, err := svc.CreateParent(context.Background(), validParent(student.ID, 99))
	assertValidationField(t, err, "studentIds")
}

func TestCreateParentLinksExistingStudents(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewParentService(memory.NewParentRepository(), studentRepo)
	first := seedStudent(t, studentRepo)
	second := seedStudent(t, studentRepo)

	created, err := svc.CreateParent(context.Background(), validParent(first.ID, second.ID))
	require.NoError(t, err)
	assert.Equal(t, []int64{first.ID, second.ID}, created.StudentIDs)
}

func TestCreateParentRejectsUnknownRelationship(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewParentService(memory.NewParentRepository(), studentRepo)
	student := seedStudent(t, studentRepo)

	parent := validParent(student.ID)
	parent.Relationship = "cousin"
	_, err := svc.CreateParent(context.Background(), parent)
	assertValidationField(t, err, "relationship")
}

func TestUpdateParentCannotDropAllStudents(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewParentService(memory.NewParentRepository(), studentRepo)
	student := seedStudent(t, studentRepo)
	ctx := context.Background()

	created, err := svc.CreateParent(ctx, validParent(student.ID))
	require.NoError(t, err)

	_, err = svc.UpdateParent(ctx, created.ID, models.ParentPatch{StudentIDs: []int64{}})
	assertValidationField(t, err, "studentIds")
}

func TestGetParentsByStudent(t *testing.T) {
	studentRepo := memory.NewStudentRepository()
	svc := NewParentService(memory.NewParentRepository(), studentRepo)
	student := seedStudent(t, studentRepo)
	other := seedStudent(t, studentRepo)
	ctx := context.Background()

	_, err := svc.CreateParent(ctx, validParent(student.ID))
	require.NoError(t, err)
	_, err = svc.CreateParent(ctx, validParent(other.ID))
	require.NoError(t, err)

	linked, err := svc.GetParentsByStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, linked, 1)
}
