package memory

import (
	"context"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

// ParentRepository is the in-memory parent contact store.
type ParentRepository struct {
	c *collection[models.Parent]
}

// NewParentRepository creates an empty in-memory parent repository.
func NewParentRepository() *ParentRepository {
	return &ParentRepository{
		c: newCollection(
			func(p models.Parent) int64 { return p.ID },
			func(p models.Parent, id int64) models.Parent { p.ID = id; return p },
			func(p models.Parent) models.Parent {
				p.StudentIDs = append([]int64(nil), p.StudentIDs...)
				return p
			},
		),
	}
}

// GetAll returns a snapshot of all parents in insertion order.
func (r *ParentRepository) GetAll(ctx context.Context) ([]models.Parent, error) {
	return r.c.getAll(), nil
}

// GetByID retrieves a parent by id.
func (r *ParentRepository) GetByID(ctx context.Context, id int64) (models.Parent, error) {
	p, ok := r.c.getByID(id)
	if !ok {
		return models.Parent{}, apperrors.ErrParentNotFound
	}
	return p, nil
}

// Create stores a new parent and returns it with its assigned id.
func (r *ParentRepository) Create(ctx context.Context, parent models.Parent) (models.Parent, error) {
	return r.c.create(parent), nil
}

// Update merges the patch onto the stored parent.
func (r *ParentRepository) Update(ctx context.Context, id int64, patch models.ParentPatch) (models.Parent, error) {
	p, ok := r.c.update(id, patch.Apply)
	if !ok {
		return models.Parent{}, apperrors.ErrParentNotFound
	}
	return p, nil
}

// Delete removes a parent and returns the removed record.
func (r *ParentRepository) Delete(ctx context.Context, id int64) (models.Parent, error) {
	p, ok := r.c.delete(id)
	if !ok {
		return models.Parent{}, apperrors.ErrParentNotFound
	}
	return p, nil
}

// GetByStudent returns every parent linked to the given student.
func (r *ParentRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Parent, error) {
	return r.c.filter(func(p models.Parent) bool {
		for _, id := range p.StudentIDs {
			if id == studentID {
				return true
			}
		}
		return false
	}), nil
}
