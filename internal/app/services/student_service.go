package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
	"github.com/scholarhub/scholarhub/internal/pkg/validation"
)

// StudentService defines the interface for student roster operations.
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (models.Student, error)
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)
	UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (models.Student, error)
	SearchStudents(ctx context.Context, term string) ([]models.Student, error)
	GetStudentsByGradeLevel(ctx context.Context, gradeLevel string) ([]models.Student, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

// validateStudent checks the enum and format fields that binding tags
// cannot express (grade levels contain spaces).
func validateStudent(student models.Student) error {
	if strings.TrimSpace(student.FirstName) == "" {
		return apperrors.NewValidationError("firstName", "first name cannot be empty")
	}
	if strings.TrimSpace(student.LastName) == "" {
		return apperrors.NewValidationError("lastName", "last name cannot be empty")
	}
	if !models.IsValidGradeLevel(student.GradeLevel) {
		return apperrors.NewValidationError("grade", fmt.Sprintf("unknown grade level %q", student.GradeLevel))
	}
	if !models.IsValidStudentStatus(student.Status) {
		return apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", student.Status))
	}
	if student.Email != "" && !validation.IsEmail(student.Email) {
		return apperrors.NewValidationError("email", "invalid email format")
	}
	if !validation.IsISODate(student.DateOfBirth) {
		return apperrors.NewValidationError("dateOfBirth", "date must be yyyy-mm-dd")
	}
	if !validation.IsISODate(student.EnrollmentDate) {
		return apperrors.NewValidationError("enrollmentDate", "date must be yyyy-mm-dd")
	}
	return nil
}

// GetAllStudents retrieves the full roster.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a single student.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent validates and stores a new student. An empty status
// defaults to active.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}
	if err := validateStudent(student); err != nil {
		return models.Student{}, err
	}
	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return models.Student{}, fmt.Errorf("error creating student: %w", err)
	}
	return created, nil
}

// UpdateStudent applies a partial update. The merged record is validated
// before it is stored.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error) {
	current, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return models.Student{}, err
	}
	if err := validateStudent(patch.Apply(current)); err != nil {
		return models.Student{}, err
	}
	return s.studentRepo.Update(ctx, id, patch)
}

// DeleteStudent removes a student and returns the removed record. Grades
// and attendance for the student are kept as orphaned history.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) (models.Student, error) {
	return s.studentRepo.Delete(ctx, id)
}

// SearchStudents finds students whose name, email or grade level contains
// the term, case-insensitively. An empty term returns the full roster.
func (s *studentServiceImpl) SearchStudents(ctx context.Context, term string) ([]models.Student, error) {
	if strings.TrimSpace(term) == "" {
		return s.GetAllStudents(ctx)
	}
	students, err := s.studentRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	return students, nil
}

// GetStudentsByGradeLevel lists the students enrolled at one grade level.
func (s *studentServiceImpl) GetStudentsByGradeLevel(ctx context.Context, gradeLevel string) ([]models.Student, error) {
	if !models.IsValidGradeLevel(gradeLevel) {
		return nil, apperrors.NewValidationError("grade", fmt.Sprintf("unknown grade level %q", gradeLevel))
	}
	students, err := s.studentRepo.GetByGradeLevel(ctx, gradeLevel)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by grade level: %w", err)
	}
	return students, nil
}
