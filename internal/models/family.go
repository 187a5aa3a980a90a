package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Family groups members and tasks.
type Family struct {
	DefaultModel
	Name string `json:"name" example:"Tanaka"`
}

func (f *Family) BeforeSave(_ *gorm.DB) error {
	f.Name = normalizeName(f.Name)
	return nil
}

// MemberRole is the role of a member in a family.
type MemberRole string

const (
	RoleParent MemberRole = "parent"
	RoleChild  MemberRole = "child"
)

// Member is a person in a family. Children earn money by completing tasks.
type Member struct {
	DefaultModel
	Family   Family     `json:"-"`
	FamilyID uuid.UUID  `json:"familyId" gorm:"type:uuid;uniqueIndex:member_family_name"`
	Name     string     `json:"name" gorm:"uniqueIndex:member_family_name" example:"Hana"`
	Role     MemberRole `json:"role" gorm:"check:member_role_valid,role IN ('parent', 'child')" example:"child"`
}

func (m *Member) BeforeSave(_ *gorm.DB) error {
	m.Name = normalizeName(m.Name)
	if m.Role == "" {
		m.Role = RoleChild
	}

	return nil
}

// AfterCreate creates the zeroed balance and goal savings rows every member has.
func (m *Member) AfterCreate(tx *gorm.DB) error {
	err := tx.Create(&Balance{FamilyID: m.FamilyID, MemberID: m.ID}).Error
	if err != nil {
		return err
	}

	return tx.Create(&GoalSavings{FamilyID: m.FamilyID, MemberID: m.ID}).Error
}

// Scope returns the ledger scope of the member.
func (m Member) Scope() MemberScope {
	return MemberScope{FamilyID: m.FamilyID, MemberID: m.ID}
}
