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

// ParentService defines the interface for parent and guardian contact
// operations.
type ParentService interface {
	GetAllParents(ctx context.Context) ([]models.Parent, error)
	GetParentByID(ctx context.Context, id int64) (models.Parent, error)
	CreateParent(ctx context.Context, parent models.Parent) (models.Parent, error)
	UpdateParent(ctx context.Context, id int64, patch models.ParentPatch) (models.Parent, error)
	DeleteParent(ctx context.Context, id int64) (models.Parent, error)
	GetParentsByStudent(ctx context.Context, studentID int64) ([]models.Parent, error)
}

// parentServiceImpl implements ParentService
type parentServiceImpl struct {
	parentRepo  repositories.ParentRepository
	studentRepo repositories.StudentRepository
}

// NewParentService creates a new ParentService
func NewParentService(parentRepo repositories.ParentRepository, studentRepo repositories.StudentRepository) ParentService {
	return &parentServiceImpl{parentRepo: parentRepo, studentRepo: studentRepo}
}

func (s *parentServiceImpl) validateParent(ctx context.Context, parent models.Parent) error {
	if strings.TrimSpace(parent.FirstName) == "" {
		return apperrors.NewValidationError("firstName", "first name cannot be empty")
	}
	if strings.TrimSpace(parent.LastName) == "" {
		return apperrors.NewValidationError("lastName", "last name cannot be empty")
	}
	if !models.IsValidRelationship(parent.Relationship) {
		return apperrors.NewValidationError("relationship", fmt.Sprintf("unknown relationship %q", parent.Relationship))
	}
	if parent.Email != "" && !validation.IsEmail(parent.Email) {
		return apperrors.NewValidationError("email", "invalid email format")
	}
	if len(parent.StudentIDs) == 0 {
		return apperrors.NewValidationError("studentIds", "at least one student is required")
	}
	for _, studentID := range parent.StudentIDs {
		if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
			if apperrors.IsNotFound(err) {
				return apperrors.NewValidationError("studentIds", fmt.Sprintf("student %d does not exist", studentID))
			}
			return fmt.Errorf("error checking student %d: %w", studentID, err)
		}
	}
	return nil
}

// GetAllParents retrieves all parent contacts.
func (s *parentServiceImpl) GetAllParents(ctx context.Context) ([]models.Parent, error) {
	parents, err := s.parentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving parents: %w", err)
	}
	return parents, nil
}

// GetParentByID retrieves a single parent.
func (s *parentServiceImpl) GetParentByID(ctx context.Context, id int64) (models.Parent, error) {
	return s.parentRepo.GetByID(ctx, id)
}

// CreateParent validates and stores a new parent. Every linked student
// must already exist.
func (s *parentServiceImpl) CreateParent(ctx context.Context, parent models.Parent) (models.Parent, error) {
	if err := s.validateParent(ctx, parent); err != nil {
		return models.Parent{}, err
	}
	created, err := s.parentRepo.Create(ctx, parent)
	if err != nil {
		return models.Parent{}, fmt.Errorf("error creating parent: %w", err)
	}
	return created, nil
}

// UpdateParent applies a partial update, validating the merged record.
func (s *parentServiceImpl) UpdateParent(ctx context.Context, id int64, patch models.ParentPatch) (models.Parent, error) {
	current, err := s.parentRepo.GetByID(ctx, id)
	if err != nil {
		return models.Parent{}, err
	}
	if err := s.validateParent(ctx, patch.Apply(current)); err != nil {
		return models.Parent{}, err
	}
	return s.parentRepo.Update(ctx, id, patch)
}

// DeleteParent removes a parent and returns the removed record.
func (s *parentServiceImpl) DeleteParent(ctx context.Context, id int64) (models.Parent, error) {
	return s.parentRepo.Delete(ctx, id)
}

// GetParentsByStudent lists the parents linked to a student.
func (s *parentServiceImpl) GetParentsByStudent(ctx context.Context, studentID int64) ([]models.Parent, error) {
	parents, err := s.parentRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving parents by student: %w", err)
	}
	return parents, nil
}
