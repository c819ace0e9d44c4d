package memory

import (
	"context"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

// AttendanceRepository is the in-memory attendance store.
type AttendanceRepository struct {
	c *collection[models.AttendanceRecord]
}

// NewAttendanceRepository creates an empty in-memory attendance repository.
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		c: newCollection(
			func(a models.AttendanceRecord) int64 { return a.ID },
			func(a models.AttendanceRecord, id int64) models.AttendanceRecord { a.ID = id; return a },
			nil,
		),
	}
}

// GetAll returns a snapshot of all attendance records in insertion order.
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	return r.c.getAll(), nil
}

// GetByID retrieves an attendance record by id.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (models.AttendanceRecord, error) {
	rec, ok := r.c.getByID(id)
	if !ok {
		return models.AttendanceRecord{}, apperrors.ErrAttendanceNotFound
	}
	return rec, nil
}

// Create stores a new attendance record and returns it with its assigned id.
// A record already covering the same (studentID, date) key is a conflict.
func (r *AttendanceRepository) Create(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error) {
	rec, ok := r.c.createUnique(func(existing models.AttendanceRecord) bool {
		return existing.StudentID == record.StudentID && existing.Date == record.Date
	}, record)
	if !ok {
		return models.AttendanceRecord{}, apperrors.NewConflictError("attendance already recorded for this student and day")
	}
	return rec, nil
}

// Update merges the patch onto the stored record.
func (r *AttendanceRepository) Update(ctx context.Context, id int64, patch models.AttendancePatch) (models.AttendanceRecord, error) {
	rec, ok := r.c.update(id, patch.Apply)
	if !ok {
		return models.AttendanceRecord{}, apperrors.ErrAttendanceNotFound
	}
	return rec, nil
}

// Delete removes an attendance record and returns the removed record.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (models.AttendanceRecord, error) {
	rec, ok := r.c.delete(id)
	if !ok {
		return models.AttendanceRecord{}, apperrors.ErrAttendanceNotFound
	}
	return rec, nil
}

// Upsert replaces status and notes on the record keyed by
// (record.StudentID, record.Date), keeping its id, or creates the record
// when the key is unseen. The collection lock makes the lookup and write one
// step, so the (studentID, date) key stays unique under concurrent marks.
func (r *AttendanceRepository) Upsert(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error) {
	rec := r.c.upsert(
		func(existing models.AttendanceRecord) bool {
			return existing.StudentID == record.StudentID && existing.Date == record.Date
		},
		func(existing models.AttendanceRecord) models.AttendanceRecord {
			existing.Status = record.Status
			existing.Notes = record.Notes
			return existing
		},
		record,
	)
	return rec, nil
}

// GetByDate returns all records for one calendar day.
func (r *AttendanceRepository) GetByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	return r.c.filter(func(a models.AttendanceRecord) bool { return a.Date == date }), nil
}

// GetByStudent returns all records for the given student.
func (r *AttendanceRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.AttendanceRecord, error) {
	return r.c.filter(func(a models.AttendanceRecord) bool { return a.StudentID == studentID }), nil
}

// GetByRange returns records inside the inclusive [start, end] date range.
// ISO date strings compare lexically in chronological order.
func (r *AttendanceRepository) GetByRange(ctx context.Context, start, end string) ([]models.AttendanceRecord, error) {
	return r.c.filter(func(a models.AttendanceRecord) bool {
		if start != "" && a.Date < start {
			return false
		}
		if end != "" && a.Date > end {
			return false
		}
		return true
	}), nil
}
