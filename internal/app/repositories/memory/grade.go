package memory

import (
	"context"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

// GradeRepository is the in-memory grade store.
type GradeRepository struct {
	c *collection[models.Grade]
}

// NewGradeRepository creates an empty in-memory grade repository.
func NewGradeRepository() *GradeRepository {
	return &GradeRepository{
		c: newCollection(
			func(g models.Grade) int64 { return g.ID },
			func(g models.Grade, id int64) models.Grade { g.ID = id; return g },
			nil,
		),
	}
}

// GetAll returns a snapshot of all grades in insertion order.
func (r *GradeRepository) GetAll(ctx context.Context) ([]models.Grade, error) {
	return r.c.getAll(), nil
}

// GetByID retrieves a grade by id.
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (models.Grade, error) {
	g, ok := r.c.getByID(id)
	if !ok {
		return models.Grade{}, apperrors.ErrGradeNotFound
	}
	return g, nil
}

// Create stores a new grade and returns it with its assigned id.
func (r *GradeRepository) Create(ctx context.Context, grade models.Grade) (models.Grade, error) {
	return r.c.create(grade), nil
}

// Update merges the patch onto the stored grade.
func (r *GradeRepository) Update(ctx context.Context, id int64, patch models.GradePatch) (models.Grade, error) {
	g, ok := r.c.update(id, patch.Apply)
	if !ok {
		return models.Grade{}, apperrors.ErrGradeNotFound
	}
	return g, nil
}

// Delete removes a grade and returns the removed record.
func (r *GradeRepository) Delete(ctx context.Context, id int64) (models.Grade, error) {
	g, ok := r.c.delete(id)
	if !ok {
		return models.Grade{}, apperrors.ErrGradeNotFound
	}
	return g, nil
}

// GetByStudent returns all grades recorded for the given student.
func (r *GradeRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	return r.c.filter(func(g models.Grade) bool { return g.StudentID == studentID }), nil
}

// GetBySubject returns all grades for a subject. Subjects are case-sensitive.
func (r *GradeRepository) GetBySubject(ctx context.Context, subject string) ([]models.Grade, error) {
	return r.c.filter(func(g models.Grade) bool { return g.Subject == subject }), nil
}
