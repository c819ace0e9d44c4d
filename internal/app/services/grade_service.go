package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/scholarhub/scholarhub/internal/app/grading"
	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
	"github.com/scholarhub/scholarhub/internal/pkg/validation"
)

// GradeService defines the interface for grade book operations.
type GradeService interface {
	GetAllGrades(ctx context.Context) ([]models.Grade, error)
	GetGradeByID(ctx context.Context, id int64) (models.Grade, error)
	CreateGrade(ctx context.Context, grade models.Grade) (models.Grade, error)
	UpdateGrade(ctx context.Context, id int64, patch models.GradePatch) (models.Grade, error)
	DeleteGrade(ctx context.Context, id int64) (models.Grade, error)
	GetGradesByStudent(ctx context.Context, studentID int64) ([]models.Grade, error)
	GetGradesBySubject(ctx context.Context, subject string) ([]models.Grade, error)
	GetStats(ctx context.Context) (grading.Stats, error)
	GetStudentStats(ctx context.Context, studentID int64) (grading.Stats, error)
}

// gradeServiceImpl implements GradeService
type gradeServiceImpl struct {
	gradeRepo   repositories.GradeRepository
	studentRepo repositories.StudentRepository
}

// NewGradeService creates a new GradeService
func NewGradeService(gradeRepo repositories.GradeRepository, studentRepo repositories.StudentRepository) GradeService {
	return &gradeServiceImpl{gradeRepo: gradeRepo, studentRepo: studentRepo}
}

// validateGrade enforces the score bounds the aggregators rely on. Scores
// that pass here always produce a percentage in [0, 100].
func (s *gradeServiceImpl) validateGrade(ctx context.Context, grade models.Grade) error {
	if strings.TrimSpace(grade.Subject) == "" {
		return apperrors.NewValidationError("subject", "subject cannot be empty")
	}
	if grade.Score < 0 {
		return apperrors.NewValidationError("score", "score cannot be negative")
	}
	if grade.MaxScore <= 0 {
		return apperrors.NewValidationError("maxScore", "max score must be positive")
	}
	if grade.Score > grade.MaxScore {
		return apperrors.NewValidationError("score", "score cannot exceed max score")
	}
	if !models.IsValidTerm(grade.Term) {
		return apperrors.NewValidationError("term", fmt.Sprintf("unknown term %q", grade.Term))
	}
	if !validation.IsISODate(grade.Date) {
		return apperrors.NewValidationError("date", "date must be yyyy-mm-dd")
	}
	if _, err := s.studentRepo.GetByID(ctx, grade.StudentID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidationError("studentId", fmt.Sprintf("student %d does not exist", grade.StudentID))
		}
		return fmt.Errorf("error checking student %d: %w", grade.StudentID, err)
	}
	return nil
}

// GetAllGrades retrieves the full grade book.
func (s *gradeServiceImpl) GetAllGrades(ctx context.Context) ([]models.Grade, error) {
	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}

// GetGradeByID retrieves a single grade.
func (s *gradeServiceImpl) GetGradeByID(ctx context.Context, id int64) (models.Grade, error) {
	return s.gradeRepo.GetByID(ctx, id)
}

// CreateGrade validates and stores a new grade.
func (s *gradeServiceImpl) CreateGrade(ctx context.Context, grade models.Grade) (models.Grade, error) {
	if err := s.validateGrade(ctx, grade); err != nil {
		return models.Grade{}, err
	}
	created, err := s.gradeRepo.Create(ctx, grade)
	if err != nil {
		return models.Grade{}, fmt.Errorf("error creating grade: %w", err)
	}
	return created, nil
}

// UpdateGrade applies a partial update, validating the merged record.
func (s *gradeServiceImpl) UpdateGrade(ctx context.Context, id int64, patch models.GradePatch) (models.Grade, error) {
	current, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return models.Grade{}, err
	}
	if err := s.validateGrade(ctx, patch.Apply(current)); err != nil {
		return models.Grade{}, err
	}
	return s.gradeRepo.Update(ctx, id, patch)
}

// DeleteGrade removes a grade and returns the removed record.
func (s *gradeServiceImpl) DeleteGrade(ctx context.Context, id int64) (models.Grade, error) {
	return s.gradeRepo.Delete(ctx, id)
}

// GetGradesByStudent lists every grade recorded for a student.
func (s *gradeServiceImpl) GetGradesByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	grades, err := s.gradeRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades by student: %w", err)
	}
	return grades, nil
}

// GetGradesBySubject lists every grade recorded for a subject. Subject
// names compare case-sensitively.
func (s *gradeServiceImpl) GetGradesBySubject(ctx context.Context, subject string) ([]models.Grade, error) {
	grades, err := s.gradeRepo.GetBySubject(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades by subject: %w", err)
	}
	return grades, nil
}

// GetStats aggregates the whole grade book.
func (s *gradeServiceImpl) GetStats(ctx context.Context) (grading.Stats, error) {
	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return grading.Stats{}, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grading.Compute(grades), nil
}

// GetStudentStats aggregates one student's grades.
func (s *gradeServiceImpl) GetStudentStats(ctx context.Context, studentID int64) (grading.Stats, error) {
	grades, err := s.gradeRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return grading.Stats{}, fmt.Errorf("error retrieving grades by student: %w", err)
	}
	return grading.Compute(grades), nil
}
