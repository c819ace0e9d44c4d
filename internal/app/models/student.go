package models

// StudentStatus is the enrollment state of a student record.
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
)

// GradeLevels lists the thirteen levels a student can be enrolled in,
// in school order.
var GradeLevels = []string{
	"Kindergarten",
	"1st Grade",
	"2nd Grade",
	"3rd Grade",
	"4th Grade",
	"5th Grade",
	"6th Grade",
	"7th Grade",
	"8th Grade",
	"9th Grade",
	"10th Grade",
	"11th Grade",
	"12th Grade",
}

// IsValidGradeLevel reports whether level is one of the enumerated grade levels.
func IsValidGradeLevel(level string) bool {
	for _, l := range GradeLevels {
		if l == level {
			return true
		}
	}
	return false
}

// IsValidStudentStatus reports whether s is a known student status.
func IsValidStudentStatus(s StudentStatus) bool {
	switch s {
	case StudentStatusActive, StudentStatusInactive, StudentStatusGraduated:
		return true
	}
	return false
}

// Student defines the student roster model based on the 'students' table.
// Date fields are ISO "YYYY-MM-DD" strings so lexical comparison matches
// chronological order.
type Student struct {
	ID                           int64         `json:"id" db:"id" example:"1"`
	FirstName                    string        `json:"firstName" db:"first_name" binding:"required" example:"Emma"`
	LastName                     string        `json:"lastName" db:"last_name" binding:"required" example:"Johnson"`
	DateOfBirth                  string        `json:"dateOfBirth" db:"date_of_birth" binding:"required,datetime=2006-01-02" example:"2012-04-17"`
	GradeLevel                   string        `json:"grade" db:"grade_level" binding:"required" example:"6th Grade"`
	EnrollmentDate               string        `json:"enrollmentDate" db:"enrollment_date" binding:"required,datetime=2006-01-02" example:"2024-08-26"`
	Email                        string        `json:"email" db:"email" binding:"omitempty,email" example:"emma.johnson@example.com"`
	Phone                        string        `json:"phone" db:"phone" example:"555-0142"`
	Address                      string        `json:"address" db:"address" example:"14 Maple Street"`
	GuardianName                 string        `json:"guardianName" db:"guardian_name" binding:"required" example:"Sarah Johnson"`
	GuardianPhone                string        `json:"guardianPhone" db:"guardian_phone" binding:"required" example:"555-0143"`
	GuardianEmail                string        `json:"guardianEmail" db:"guardian_email" binding:"omitempty,email" example:"sarah.johnson@example.com"`
	EmergencyContactName         string        `json:"emergencyContactName" db:"emergency_contact_name" binding:"required" example:"Mark Johnson"`
	EmergencyContactPhone        string        `json:"emergencyContactPhone" db:"emergency_contact_phone" binding:"required" example:"555-0144"`
	EmergencyContactRelationship string        `json:"emergencyContactRelationship" db:"emergency_contact_relationship" binding:"required" example:"Parent"`
	Status                       StudentStatus `json:"status" db:"status" binding:"omitempty,oneof=active inactive graduated" example:"active"`
}

// StudentPatch carries the fields of a partial student update.
// Nil fields keep their stored values.
type StudentPatch struct {
	FirstName                    *string        `json:"firstName"`
	LastName                     *string        `json:"lastName"`
	DateOfBirth                  *string        `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	GradeLevel                   *string        `json:"grade"`
	EnrollmentDate               *string        `json:"enrollmentDate" binding:"omitempty,datetime=2006-01-02"`
	Email                        *string        `json:"email" binding:"omitempty,email"`
	Phone                        *string        `json:"phone"`
	Address                      *string        `json:"address"`
	GuardianName                 *string        `json:"guardianName"`
	GuardianPhone                *string        `json:"guardianPhone"`
	GuardianEmail                *string        `json:"guardianEmail" binding:"omitempty,email"`
	EmergencyContactName         *string        `json:"emergencyContactName"`
	EmergencyContactPhone        *string        `json:"emergencyContactPhone"`
	EmergencyContactRelationship *string        `json:"emergencyContactRelationship"`
	Status                       *StudentStatus `json:"status" binding:"omitempty,oneof=active inactive graduated"`
}

// Apply merges the patch onto s, leaving nil fields untouched.
func (p StudentPatch) Apply(s Student) Student {
	if p.FirstName != nil {
		s.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		s.LastName = *p.LastName
	}
	if p.DateOfBirth != nil {
		s.DateOfBirth = *p.DateOfBirth
	}
	if p.GradeLevel != nil {
		s.GradeLevel = *p.GradeLevel
	}
	if p.EnrollmentDate != nil {
		s.EnrollmentDate = *p.EnrollmentDate
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.GuardianName != nil {
		s.GuardianName = *p.GuardianName
	}
	if p.GuardianPhone != nil {
		s.GuardianPhone = *p.GuardianPhone
	}
	if p.GuardianEmail != nil {
		s.GuardianEmail = *p.GuardianEmail
	}
	if p.EmergencyContactName != nil {
		s.EmergencyContactName = *p.EmergencyContactName
	}
	if p.EmergencyContactPhone != nil {
		s.EmergencyContactPhone = *p.EmergencyContactPhone
	}
	if p.EmergencyContactRelationship != nil {
		s.EmergencyContactRelationship = *p.EmergencyContactRelationship
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	return s
}
