package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all ledger records.
type DefaultModel struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2025-08-03T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2025-08-17T20:14:01.048145Z"` // Last time the resource was updated
}

// MemberScope ties a record to one member of one family. All ledger
// queries filter on both IDs.
type MemberScope struct {
	FamilyID uuid.UUID `json:"familyId" gorm:"type:uuid;index:,composite:member_scope" example:"0b4b5b3e-1c5c-4f4b-9d3a-3f1c6c0f2a11"`
	MemberID uuid.UUID `json:"memberId" gorm:"type:uuid;index:,composite:member_scope" example:"4e3b1f5a-6a7d-4c1f-8e2b-9d7c0a1b2c3d"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// normalizeName trims whitespace and applies NFKC so that full-width and
// half-width variants of a name are stored the same way.
func normalizeName(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
