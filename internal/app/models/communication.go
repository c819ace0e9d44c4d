package models

import "time"

// CommunicationType classifies a logged parent-teacher interaction.
type CommunicationType string

const (
	CommunicationMeeting CommunicationType = "meeting"
	CommunicationPhone   CommunicationType = "phone"
	CommunicationEmail   CommunicationType = "email"
	CommunicationOther   CommunicationType = "other"
)

// Communication defines a logged parent-teacher interaction based on the
// 'communications' table. StudentIDs is persisted in
// 'communication_students' and should be a subset of the parent's students.
type Communication struct {
	ID               int64             `json:"id" db:"id" example:"1"`
	ParentID         int64             `json:"parentId" db:"parent_id" binding:"required" example:"1"`
	TeacherID        int64             `json:"teacherId" db:"teacher_id" binding:"required" example:"7"`
	StudentIDs       []int64           `json:"studentIds" example:"1"`
	Type             CommunicationType `json:"type" db:"type" binding:"required,oneof=meeting phone email other" example:"meeting"`
	Subject          string            `json:"subject" db:"subject" binding:"required" example:"Progress review"`
	Notes            string            `json:"notes" db:"notes" example:"Discussed recent math scores"`
	FollowUpRequired bool              `json:"followUpRequired" db:"follow_up_required" example:"true"`
	FollowUpDate     string            `json:"followUpDate" db:"follow_up_date" binding:"omitempty,datetime=2006-01-02" example:"2024-10-17"`
	CreatedAt        time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time         `json:"updatedAt" db:"updated_at"`
}

// CommunicationPatch carries the fields of a partial communication update.
type CommunicationPatch struct {
	ParentID         *int64             `json:"parentId"`
	TeacherID        *int64             `json:"teacherId"`
	StudentIDs       []int64            `json:"studentIds"`
	Type             *CommunicationType `json:"type" binding:"omitempty,oneof=meeting phone email other"`
	Subject          *string            `json:"subject"`
	Notes            *string            `json:"notes"`
	FollowUpRequired *bool              `json:"followUpRequired"`
	FollowUpDate     *string            `json:"followUpDate" binding:"omitempty,datetime=2006-01-02"`
}

// Apply merges the patch onto c, leaving nil fields untouched.
func (p CommunicationPatch) Apply(c Communication) Communication {
	if p.ParentID != nil {
		c.ParentID = *p.ParentID
	}
	if p.TeacherID != nil {
		c.TeacherID = *p.TeacherID
	}
	if p.StudentIDs != nil {
		c.StudentIDs = append([]int64(nil), p.StudentIDs...)
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.FollowUpRequired != nil {
		c.FollowUpRequired = *p.FollowUpRequired
	}
	if p.FollowUpDate != nil {
		c.FollowUpDate = *p.FollowUpDate
	}
	return c
}
