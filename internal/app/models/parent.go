package models

// Relationship describes how a parent contact relates to a student.
type Relationship string

const (
	RelationshipMother      Relationship = "mother"
	RelationshipFather      Relationship = "father"
	RelationshipStepmother  Relationship = "stepmother"
	RelationshipStepfather  Relationship = "stepfather"
	RelationshipGrandmother Relationship = "grandmother"
	RelationshipGrandfather Relationship = "grandfather"
	RelationshipAunt        Relationship = "aunt"
	RelationshipUncle       Relationship = "uncle"
	RelationshipGuardian    Relationship = "guardian"
	RelationshipOther       Relationship = "other"
)

// IsValidRelationship reports whether r is a known relationship.
func IsValidRelationship(r Relationship) bool {
	switch r {
	case RelationshipMother, RelationshipFather, RelationshipStepmother,
		RelationshipStepfather, RelationshipGrandmother, RelationshipGrandfather,
		RelationshipAunt, RelationshipUncle, RelationshipGuardian, RelationshipOther:
		return true
	}
	return false
}

// Parent defines a parent/guardian contact based on the 'parents' table.
// StudentIDs is a many-to-many link persisted in 'parent_students'; the ids
// are weak references to students, checked on write but never cascaded.
type Parent struct {
	ID               int64        `json:"id" db:"id" example:"1"`
	FirstName        string       `json:"firstName" db:"first_name" binding:"required" example:"Sarah"`
	LastName         string       `json:"lastName" db:"last_name" binding:"required" example:"Johnson"`
	Email            string       `json:"email" db:"email" binding:"required,email" example:"sarah.johnson@example.com"`
	Phone            string       `json:"phone" db:"phone" binding:"required" example:"555-0143"`
	Address          string       `json:"address" db:"address" example:"14 Maple Street"`
	Relationship     Relationship `json:"relationship" db:"relationship" binding:"required,oneof=mother father stepmother stepfather grandmother grandfather aunt uncle guardian other" example:"mother"`
	Occupation       string       `json:"occupation" db:"occupation" example:"Architect"`
	WorkPhone        string       `json:"workPhone" db:"work_phone" example:"555-0199"`
	StudentIDs       []int64      `json:"studentIds" binding:"required,min=1" example:"1,2"`
	IsPrimary        bool         `json:"isPrimary" db:"is_primary" example:"true"`
	EmergencyContact bool         `json:"emergencyContact" db:"emergency_contact" example:"false"`
}

// ParentPatch carries the fields of a partial parent update.
type ParentPatch struct {
	FirstName        *string       `json:"firstName"`
	LastName         *string       `json:"lastName"`
	Email            *string       `json:"email" binding:"omitempty,email"`
	Phone            *string       `json:"phone"`
	Address          *string       `json:"address"`
	Relationship     *Relationship `json:"relationship" binding:"omitempty,oneof=mother father stepmother stepfather grandmother grandfather aunt uncle guardian other"`
	Occupation       *string       `json:"occupation"`
	WorkPhone        *string       `json:"workPhone"`
	StudentIDs       []int64       `json:"studentIds" binding:"omitempty,min=1"`
	IsPrimary        *bool         `json:"isPrimary"`
	EmergencyContact *bool         `json:"emergencyContact"`
}

// Apply merges the patch onto p, leaving nil fields untouched. A non-nil
// StudentIDs replaces the link set wholesale.
func (pp ParentPatch) Apply(p Parent) Parent {
	if pp.FirstName != nil {
		p.FirstName = *pp.FirstName
	}
	if pp.LastName != nil {
		p.LastName = *pp.LastName
	}
	if pp.Email != nil {
		p.Email = *pp.Email
	}
	if pp.Phone != nil {
		p.Phone = *pp.Phone
	}
	if pp.Address != nil {
		p.Address = *pp.Address
	}
	if pp.Relationship != nil {
		p.Relationship = *pp.Relationship
	}
	if pp.Occupation != nil {
		p.Occupation = *pp.Occupation
	}
	if pp.WorkPhone != nil {
		p.WorkPhone = *pp.WorkPhone
	}
	if pp.StudentIDs != nil {
		p.StudentIDs = append([]int64(nil), pp.StudentIDs...)
	}
	if pp.IsPrimary != nil {
		p.IsPrimary = *pp.IsPrimary
	}
	if pp.EmergencyContact != nil {
		p.EmergencyContact = *pp.EmergencyContact
	}
	return p
}
