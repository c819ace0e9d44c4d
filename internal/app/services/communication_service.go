package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
	"github.com/scholarhub/scholarhub/internal/pkg/validation"
)

// CommunicationService defines the interface for the parent communication
// log.
type CommunicationService interface {
	GetAllCommunications(ctx context.Context) ([]models.Communication, error)
	GetCommunicationByID(ctx context.Context, id int64) (models.Communication, error)
	CreateCommunication(ctx context.Context, comm models.Communication) (models.Communication, error)
	UpdateCommunication(ctx context.Context, id int64, patch models.CommunicationPatch) (models.Communication, error)
	DeleteCommunication(ctx context.Context, id int64) (models.Communication, error)
	GetCommunicationsByParent(ctx context.Context, parentID int64) ([]models.Communication, error)
}

// communicationServiceImpl implements CommunicationService
type communicationServiceImpl struct {
	commRepo   repositories.CommunicationRepository
	parentRepo repositories.ParentRepository
	now        func() time.Time
}

// NewCommunicationService creates a new CommunicationService
func NewCommunicationService(commRepo repositories.CommunicationRepository, parentRepo repositories.ParentRepository) CommunicationService {
	return &communicationServiceImpl{
		commRepo:   commRepo,
		parentRepo: parentRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *communicationServiceImpl) validateCommunication(ctx context.Context, comm models.Communication) error {
	if strings.TrimSpace(comm.Subject) == "" {
		return apperrors.NewValidationError("subject", "subject cannot be empty")
	}
	if comm.FollowUpRequired && comm.FollowUpDate == "" {
		return apperrors.NewValidationError("followUpDate", "follow-up date is required when follow-up is requested")
	}
	if comm.FollowUpDate != "" && !validation.IsISODate(comm.FollowUpDate) {
		return apperrors.NewValidationError("followUpDate", "date must be yyyy-mm-dd")
	}

	parent, err := s.parentRepo.GetByID(ctx, comm.ParentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidationError("parentId", fmt.Sprintf("parent %d does not exist", comm.ParentID))
		}
		return fmt.Errorf("error checking parent %d: %w", comm.ParentID, err)
	}

	linked := make(map[int64]bool, len(parent.StudentIDs))
	for _, id := range parent.StudentIDs {
		linked[id] = true
	}
	for _, studentID := range comm.StudentIDs {
		if !linked[studentID] {
			return apperrors.NewValidationError("studentIds",
				fmt.Sprintf("student %d is not linked to parent %d", studentID, comm.ParentID))
		}
	}
	return nil
}

// GetAllCommunications retrieves the full communication log.
func (s *communicationServiceImpl) GetAllCommunications(ctx context.Context) ([]models.Communication, error) {
	comms, err := s.commRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving communications: %w", err)
	}
	return comms, nil
}

// GetCommunicationByID retrieves a single communication.
func (s *communicationServiceImpl) GetCommunicationByID(ctx context.Context, id int64) (models.Communication, error) {
	return s.commRepo.GetByID(ctx, id)
}

// CreateCommunication validates and stores a new log entry. Timestamps are
// assigned server-side.
func (s *communicationServiceImpl) CreateCommunication(ctx context.Context, comm models.Communication) (models.Communication, error) {
	if err := s.validateCommunication(ctx, comm); err != nil {
		return models.Communication{}, err
	}
	now := s.now()
	comm.CreatedAt = now
	comm.UpdatedAt = now
	created, err := s.commRepo.Create(ctx, comm)
	if err != nil {
		return models.Communication{}, fmt.Errorf("error creating communication: %w", err)
	}
	return created, nil
}

// UpdateCommunication applies a partial update, validating the merged
// record. The updated timestamp is refreshed by the repository.
func (s *communicationServiceImpl) UpdateCommunication(ctx context.Context, id int64, patch models.CommunicationPatch) (models.Communication, error) {
	current, err := s.commRepo.GetByID(ctx, id)
	if err != nil {
		return models.Communication{}, err
	}
	if err := s.validateCommunication(ctx, patch.Apply(current)); err != nil {
		return models.Communication{}, err
	}
	return s.commRepo.Update(ctx, id, patch)
}

// DeleteCommunication removes a log entry and returns the removed record.
func (s *communicationServiceImpl) DeleteCommunication(ctx context.Context, id int64) (models.Communication, error) {
	return s.commRepo.Delete(ctx, id)
}

// GetCommunicationsByParent lists the log entries for one parent.
func (s *communicationServiceImpl) GetCommunicationsByParent(ctx context.Context, parentID int64) ([]models.Communication, error) {
	comms, err := s.commRepo.GetByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving communications by parent: %w", err)
	}
	return comms, nil
}
