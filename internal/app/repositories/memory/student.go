package memory

import (
	"context"
	"strings"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

// StudentRepository is the in-memory student store.
type StudentRepository struct {
	c *collection[models.Student]
}

// NewStudentRepository creates an empty in-memory student repository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		c: newCollection(
			func(s models.Student) int64 { return s.ID },
			func(s models.Student, id int64) models.Student { s.ID = id; return s },
			nil,
		),
	}
}

// GetAll returns a snapshot of all students in insertion order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	return r.c.getAll(), nil
}

// GetByID retrieves a student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (models.Student, error) {
	s, ok := r.c.getByID(id)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return s, nil
}

// Create stores a new student and returns it with its assigned id.
func (r *StudentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	return r.c.create(student), nil
}

// Update merges the patch onto the stored student.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error) {
	s, ok := r.c.update(id, patch.Apply)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return s, nil
}

// Delete removes a student and returns the removed record. Dependent grade
// and attendance rows are left alone; references are weak.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (models.Student, error) {
	s, ok := r.c.delete(id)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return s, nil
}

// Search matches query case-insensitively against name, email and grade
// level.
func (r *StudentRepository) Search(ctx context.Context, query string) ([]models.Student, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.c.getAll(), nil
	}
	return r.c.filter(func(s models.Student) bool {
		return strings.Contains(strings.ToLower(s.FirstName), q) ||
			strings.Contains(strings.ToLower(s.LastName), q) ||
			strings.Contains(strings.ToLower(s.Email), q) ||
			strings.Contains(strings.ToLower(s.GradeLevel), q)
	}), nil
}

// GetByGradeLevel returns all students enrolled at the given level.
func (r *StudentRepository) GetByGradeLevel(ctx context.Context, level string) ([]models.Student, error) {
	return r.c.filter(func(s models.Student) bool { return s.GradeLevel == level }), nil
}
