package services

import (
	"context"
	"fmt"

	"github.com/scholarhub/scholarhub/internal/app/attendance"
	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/repositories"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
	"github.com/scholarhub/scholarhub/internal/pkg/validation"
)

// AttendanceService defines the interface for daily attendance operations.
type AttendanceService interface {
	GetAllRecords(ctx context.Context) ([]models.AttendanceRecord, error)
	GetRecordByID(ctx context.Context, id int64) (models.AttendanceRecord, error)
	UpdateRecord(ctx context.Context, id int64, patch models.AttendancePatch) (models.AttendanceRecord, error)
	DeleteRecord(ctx context.Context, id int64) (models.AttendanceRecord, error)
	GetRecordsByStudent(ctx context.Context, studentID int64) ([]models.AttendanceRecord, error)
	GetRecordsByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
	Mark(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error)
	GetStats(ctx context.Context, dateRange *attendance.Range) (attendance.Stats, error)
	GetStudentStats(ctx context.Context, studentID int64, dateRange *attendance.Range) (attendance.Stats, error)
}

// attendanceServiceImpl implements AttendanceService
type attendanceServiceImpl struct {
	attendanceRepo repositories.AttendanceRepository
	studentRepo    repositories.StudentRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo repositories.AttendanceRepository, studentRepo repositories.StudentRepository) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo, studentRepo: studentRepo}
}

func (s *attendanceServiceImpl) validateRecord(ctx context.Context, record models.AttendanceRecord) error {
	if !validation.IsISODate(record.Date) {
		return apperrors.NewValidationError("date", "date must be yyyy-mm-dd")
	}
	if !models.IsValidAttendanceStatus(record.Status) {
		return apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", record.Status))
	}
	if _, err := s.studentRepo.GetByID(ctx, record.StudentID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidationError("studentId", fmt.Sprintf("student %d does not exist", record.StudentID))
		}
		return fmt.Errorf("error checking student %d: %w", record.StudentID, err)
	}
	return nil
}

// GetAllRecords retrieves every attendance record.
func (s *attendanceServiceImpl) GetAllRecords(ctx context.Context) ([]models.AttendanceRecord, error) {
	records, err := s.attendanceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}
	return records, nil
}

// GetRecordByID retrieves a single attendance record.
func (s *attendanceServiceImpl) GetRecordByID(ctx context.Context, id int64) (models.AttendanceRecord, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// UpdateRecord applies a partial update, validating the merged record.
func (s *attendanceServiceImpl) UpdateRecord(ctx context.Context, id int64, patch models.AttendancePatch) (models.AttendanceRecord, error) {
	current, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	if err := s.validateRecord(ctx, patch.Apply(current)); err != nil {
		return models.AttendanceRecord{}, err
	}
	return s.attendanceRepo.Update(ctx, id, patch)
}

// DeleteRecord removes an attendance record and returns the removed row.
func (s *attendanceServiceImpl) DeleteRecord(ctx context.Context, id int64) (models.AttendanceRecord, error) {
	return s.attendanceRepo.Delete(ctx, id)
}

// GetRecordsByStudent lists a student's attendance history.
func (s *attendanceServiceImpl) GetRecordsByStudent(ctx context.Context, studentID int64) ([]models.AttendanceRecord, error) {
	records, err := s.attendanceRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records by student: %w", err)
	}
	return records, nil
}

// GetRecordsByDate lists attendance for a single calendar day.
func (s *attendanceServiceImpl) GetRecordsByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	if !validation.IsISODate(date) {
		return nil, apperrors.NewValidationError("date", "date must be yyyy-mm-dd")
	}
	records, err := s.attendanceRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records by date: %w", err)
	}
	return records, nil
}

// Mark records attendance for a student on a day. Marking the same student
// and day again overwrites the status and notes of the existing record
// instead of adding a second one, so the operation is safe to repeat.
func (s *attendanceServiceImpl) Mark(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error) {
	if err := s.validateRecord(ctx, record); err != nil {
		return models.AttendanceRecord{}, err
	}
	marked, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("error marking attendance: %w", err)
	}
	return marked, nil
}

func validateRange(dateRange *attendance.Range) error {
	if dateRange == nil {
		return nil
	}
	if dateRange.Start != "" && !validation.IsISODate(dateRange.Start) {
		return apperrors.NewValidationError("startDate", "date must be yyyy-mm-dd")
	}
	if dateRange.End != "" && !validation.IsISODate(dateRange.End) {
		return apperrors.NewValidationError("endDate", "date must be yyyy-mm-dd")
	}
	return nil
}

// GetStats aggregates attendance across the school, optionally restricted
// to an inclusive date range. The range is pushed down to storage so the
// aggregator only sees matching records.
func (s *attendanceServiceImpl) GetStats(ctx context.Context, dateRange *attendance.Range) (attendance.Stats, error) {
	if err := validateRange(dateRange); err != nil {
		return attendance.Stats{}, err
	}
	var (
		records []models.AttendanceRecord
		err     error
	)
	if dateRange != nil {
		records, err = s.attendanceRepo.GetByRange(ctx, dateRange.Start, dateRange.End)
	} else {
		records, err = s.attendanceRepo.GetAll(ctx)
	}
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("error retrieving attendance records: %w", err)
	}
	return attendance.Compute(records, nil), nil
}

// GetStudentStats aggregates one student's attendance, optionally
// restricted to an inclusive date range.
func (s *attendanceServiceImpl) GetStudentStats(ctx context.Context, studentID int64, dateRange *attendance.Range) (attendance.Stats, error) {
	if err := validateRange(dateRange); err != nil {
		return attendance.Stats{}, err
	}
	records, err := s.attendanceRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("error retrieving attendance records by student: %w", err)
	}
	return attendance.Compute(records, dateRange), nil
}
