package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
)

// Allocation is the audit record of one allocation of eligible money.
type Allocation struct {
	DefaultModel
	MemberScope
	AllocatedOn    types.Date `json:"allocatedOn" example:"2025-09-26"`
	EligibleAmount int64      `json:"eligibleAmount" example:"50"`
	Goal           int64      `json:"goal" example:"30"`
	Cash           int64      `json:"cash" example:"20"`
	Investment     int64      `json:"investment" example:"0"`
	GoalID         *uuid.UUID `json:"goalId" gorm:"type:uuid"` // The goal that received the goal part, nil if it went to goal savings
	GoalApplied    int64      `json:"goalApplied" example:"30"`
	GoalForfeited  int64      `json:"goalForfeited" example:"0"` // Goal money above the goal's target that was dropped
	Months         string     `json:"months" example:"2025-07,2025-08"`
}

// SetMonths stores the allocated months.
func (a *Allocation) SetMonths(months []types.Month) {
	s := make([]string, 0, len(months))
	for _, m := range months {
		s = append(s, m.String())
	}
	a.Months = strings.Join(s, ",")
}

// MonthList returns the allocated months.
func (a Allocation) MonthList() ([]types.Month, error) {
	if a.Months == "" {
		return nil, nil
	}

	var months []types.Month
	for _, s := range strings.Split(a.Months, ",") {
		m, err := types.ParseMonth(s)
		if err != nil {
			return nil, err
		}
		months = append(months, m)
	}

	return months, nil
}
