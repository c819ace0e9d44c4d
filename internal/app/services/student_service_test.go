package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories/memory"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

func validStudent() models.Student {
	return models.Student{
		FirstName:                    "Emma",
		LastName:                     "Johnson",
		DateOfBirth:                  "2012-04-17",
		GradeLevel:                   "6th Grade",
		EnrollmentDate:               "2024-08-26",
		Email:                        "emma.johnson@example.com",
		GuardianName:                 "Sarah Johnson",
		GuardianPhone:                "555-0143",
		EmergencyContactName:         "Mark Johnson",
		EmergencyContactPhone:        "555-0144",
		EmergencyContactRelationship: "Parent",
		Status:                       models.StudentStatusActive,
	}
}

// assertValidationField checks that err is a rejected write keyed to the
// given field.
func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, field, custom.Details["field"])
}

func TestCreateStudentDefaultsStatusToActive(t *testing.T) {
	svc := NewStudentService(memory.NewStudentRepository())

	student := validStudent()
	student.Status = ""
	created, err := svc.CreateStudent(context.Background(), student)
	require.NoError(t, err)
	assert.Equal(t, models.StudentStatusActive, created.Status)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateStudentValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*models.Student)
		field  string
	}{
		{name: "Empty first name", mutate: func(s *models.Student) { s.FirstName = "  " }, field: "firstName"},
		{name: "Empty last name", mutate: func(s *models.Student) { s.LastName = "" }, field: "lastName"},
		{name: "Unknown grade level", mutate: func(s *models.Student) { s.GradeLevel = "14th Grade" }, field: "grade"},
		{name: "Unknown status", mutate: func(s *models.Student) { s.Status = "expelled" }, field: "status"},
		{name: "Malformed email", mutate: func(s *models.Student) { s.Email = "not-an-email" }, field: "email"},
		{name: "Malformed date of birth", mutate: func(s *models.Student) { s.DateOfBirth = "17/04/2012" }, field: "dateOfBirth"},
		{name: "Malformed enrollment date", mutate: func(s *models.Student) { s.EnrollmentDate = "2024" }, field: "enrollmentDate"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewStudentService(memory.NewStudentRepository())
			student := validStudent()
			tc.mutate(&student)

			_, err := svc.CreateStudent(context.Background(), student)
			assertValidationField(t, err, tc.field)
		})
	}
}

func TestCreateStudentAllowsEmptyEmail(t *testing.T) {
	svc := NewStudentService(memory.NewStudentRepository())

	student := validStudent()
	student.Email = ""
	_, err := svc.CreateStudent(context.Background(), student)
	assert.NoError(t, err)
}

func TestUpdateStudentValidatesMergedRecord(t *testing.T) {
	svc := NewStudentService(memory.NewStudentRepository())
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validStudent())
	require.NoError(t, err)

	bad := "13th"
	_, err = svc.UpdateStudent(ctx, created.ID, models.StudentPatch{GradeLevel: &bad})
	assertValidationField(t, err, "grade")

	// the rejected patch must not have been applied
	current, err := svc.GetStudentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "6th Grade", current.GradeLevel)
}

func TestSearchStudentsEmptyTermReturnsRoster(t *testing.T) {
	svc := NewStudentService(memory.NewStudentRepository())
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, validStudent())
	require.NoError(t, err)

	all, err := svc.SearchStudents(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetStudentsByGradeLevelRejectsUnknownLevel(t *testing.T) {
	svc := NewStudentService(memory.NewStudentRepository())

	_, err := svc.GetStudentsByGradeLevel(context.Background(), "Sophomore")
	assertValidationField(t, err, "grade")
}

func TestDeleteStudentKeepsNoRecord(t *testing.T) {
	svc := NewStudentService(memory.NewStudentRepository())
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validStudent())
	require.NoError(t, err)

	removed, err := svc.DeleteStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = svc.GetStudentByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
