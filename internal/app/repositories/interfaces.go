// Package repositories defines the persistence contract each entity
// collection satisfies. Every repository follows the same shape: GetAll
// returns a snapshot, GetByID/Update/Delete fail with the entity's not-found
// sentinel, Create assigns a monotonically increasing id starting at 1 that
// is never reused, and Update is a shallow merge of a patch onto the stored
// record. Implementations live in the postgres and memory subpackages.
package repositories

import (
	"context"

	"github.com/scholarhub/scholarhub/internal/app/models"
)

// StudentRepository handles persistence for student roster records.
type StudentRepository interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (models.Student, error)
	Create(ctx context.Context, student models.Student) (models.Student, error)
	Update(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error)
	Delete(ctx context.Context, id int64) (models.Student, error)
	Search(ctx context.Context, query string) ([]models.Student, error)
	GetByGradeLevel(ctx context.Context, level string) ([]models.Student, error)
}

// ParentRepository handles persistence for parent/guardian contacts,
// including the parent-student links.
type ParentRepository interface {
	GetAll(ctx context.Context) ([]models.Parent, error)
	GetByID(ctx context.Context, id int64) (models.Parent, error)
	Create(ctx context.Context, parent models.Parent) (models.Parent, error)
	Update(ctx context.Context, id int64, patch models.ParentPatch) (models.Parent, error)
	Delete(ctx context.Context, id int64) (models.Parent, error)
	GetByStudent(ctx context.Context, studentID int64) ([]models.Parent, error)
}

// GradeRepository handles persistence for scored assessments.
type GradeRepository interface {
	GetAll(ctx context.Context) ([]models.Grade, error)
	GetByID(ctx context.Context, id int64) (models.Grade, error)
	Create(ctx context.Context, grade models.Grade) (models.Grade, error)
	Update(ctx context.Context, id int64, patch models.GradePatch) (models.Grade, error)
	Delete(ctx context.Context, id int64) (models.Grade, error)
	GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error)
	GetBySubject(ctx context.Context, subject string) ([]models.Grade, error)
}

// AttendanceRepository handles persistence for daily attendance records.
//
// Upsert is keyed on the (studentID, date) natural key: it must replace the
// existing record in place (same id) or create a new one, and two concurrent
// calls for the same key must never leave two records behind.
type AttendanceRepository interface {
	GetAll(ctx context.Context) ([]models.AttendanceRecord, error)
	GetByID(ctx context.Context, id int64) (models.AttendanceRecord, error)
	Create(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error)
	Update(ctx context.Context, id int64, patch models.AttendancePatch) (models.AttendanceRecord, error)
	Delete(ctx context.Context, id int64) (models.AttendanceRecord, error)
	Upsert(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error)
	GetByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
	GetByStudent(ctx context.Context, studentID int64) ([]models.AttendanceRecord, error)
	GetByRange(ctx context.Context, start, end string) ([]models.AttendanceRecord, error)
}

// CommunicationRepository handles persistence for logged parent-teacher
// interactions, including the communication-student links.
type CommunicationRepository interface {
	GetAll(ctx context.Context) ([]models.Communication, error)
	GetByID(ctx context.Context, id int64) (models.Communication, error)
	Create(ctx context.Context, comm models.Communication) (models.Communication, error)
	Update(ctx context.Context, id int64, patch models.CommunicationPatch) (models.Communication, error)
	Delete(ctx context.Context, id int64) (models.Communication, error)
	GetByParent(ctx context.Context, parentID int64) ([]models.Communication, error)
}

// Repositories holds one repository per entity collection.
type Repositories struct {
	Students       StudentRepository
	Parents        ParentRepository
	Grades         GradeRepository
	Attendance     AttendanceRepository
	Communications CommunicationRepository
}
