package memory

import (
	"context"
	"time"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

// CommunicationRepository is the in-memory communication log store.
type CommunicationRepository struct {
	c *collection[models.Communication]
}

// NewCommunicationRepository creates an empty in-memory communication repository.
func NewCommunicationRepository() *CommunicationRepository {
	return &CommunicationRepository{
		c: newCollection(
			func(cm models.Communication) int64 { return cm.ID },
			func(cm models.Communication, id int64) models.Communication { cm.ID = id; return cm },
			func(cm models.Communication) models.Communication {
				cm.StudentIDs = append([]int64(nil), cm.StudentIDs...)
				return cm
			},
		),
	}
}

// GetAll returns a snapshot of all communications in insertion order.
func (r *CommunicationRepository) GetAll(ctx context.Context) ([]models.Communication, error) {
	return r.c.getAll(), nil
}

// GetByID retrieves a communication by id.
func (r *CommunicationRepository) GetByID(ctx context.Context, id int64) (models.Communication, error) {
	cm, ok := r.c.getByID(id)
	if !ok {
		return models.Communication{}, apperrors.ErrCommunicationNotFound
	}
	return cm, nil
}

// Create stores a new communication and returns it with its assigned id.
func (r *CommunicationRepository) Create(ctx context.Context, comm models.Communication) (models.Communication, error) {
	return r.c.create(comm), nil
}

// Update merges the patch onto the stored communication and refreshes
// its updated timestamp.
func (r *CommunicationRepository) Update(ctx context.Context, id int64, patch models.CommunicationPatch) (models.Communication, error) {
	cm, ok := r.c.update(id, func(cm models.Communication) models.Communication {
		cm = patch.Apply(cm)
		cm.UpdatedAt = time.Now().UTC()
		return cm
	})
	if !ok {
		return models.Communication{}, apperrors.ErrCommunicationNotFound
	}
	return cm, nil
}

// Delete removes a communication and returns the removed record.
func (r *CommunicationRepository) Delete(ctx context.Context, id int64) (models.Communication, error) {
	cm, ok := r.c.delete(id)
	if !ok {
		return models.Communication{}, apperrors.ErrCommunicationNotFound
	}
	return cm, nil
}

// GetByParent returns every communication logged for the given parent.
func (r *CommunicationRepository) GetByParent(ctx context.Context, parentID int64) ([]models.Communication, error) {
	return r.c.filter(func(cm models.Communication) bool { return cm.ParentID == parentID }), nil
}

// NewRepositories wires one in-memory repository per entity collection.
func NewRepositories() *repositories.Repositories {
	return &repositories.Repositories{
		Students:       NewStudentRepository(),
		Parents:        NewParentRepository(),
		Grades:         NewGradeRepository(),
		Attendance:     NewAttendanceRepository(),
		Communications: NewCommunicationRepository(),
	}
}
