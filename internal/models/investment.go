package models

import (
	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"gorm.io/gorm"
)

// InvestmentSource is where an investment came from.
type InvestmentSource string

const (
	InvestmentFromAllocation InvestmentSource = "allocation"
	InvestmentFromImport     InvestmentSource = "import"
)

// InvestmentRecord is one contribution to the simulated investment bucket.
// The investment balance is the sum of all records.
type InvestmentRecord struct {
	DefaultModel
	MemberScope
	Amount        int64            `json:"amount" gorm:"check:investment_amount_positive,amount > 0" example:"20"`
	InvestedDate  types.Date       `json:"investedDate" example:"2025-09-26"`
	InvestedMonth types.Month      `json:"investedMonth" gorm:"index" example:"2025-09"`
	Source        InvestmentSource `json:"source" example:"allocation"`
	SourceID      *uuid.UUID       `json:"sourceId" gorm:"type:uuid"` // The allocation this contribution belongs to
}

func (i *InvestmentRecord) BeforeSave(_ *gorm.DB) error {
	i.InvestedMonth = i.InvestedDate.Month()
	return nil
}
