package models

// AttendanceStatus is the recorded presence state for one student on one day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// IsValidAttendanceStatus reports whether s is a known attendance status.
func IsValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceRecord defines one status per (student, date) pair based on the
// 'attendance_records' table. The pair is the natural key; the marking
// workflow upserts on it and the table carries a unique index to back that up.
type AttendanceRecord struct {
	ID        int64            `json:"id" db:"id" example:"1"`
	StudentID int64            `json:"studentId" db:"student_id" binding:"required" example:"1"`
	Date      string           `json:"date" db:"date" binding:"required,datetime=2006-01-02" example:"2024-10-03"`
	Status    AttendanceStatus `json:"status" db:"status" binding:"required,oneof=present absent late excused" example:"present"`
	Notes     string           `json:"notes" db:"notes" example:"arrived 10 minutes late"`
}

// AttendancePatch carries the fields of a partial attendance update.
type AttendancePatch struct {
	StudentID *int64            `json:"studentId"`
	Date      *string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status    *AttendanceStatus `json:"status" binding:"omitempty,oneof=present absent late excused"`
	Notes     *string           `json:"notes"`
}

// Apply merges the patch onto r, leaving nil fields untouched.
func (p AttendancePatch) Apply(r AttendanceRecord) AttendanceRecord {
	if p.StudentID != nil {
		r.StudentID = *p.StudentID
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	return r
}
