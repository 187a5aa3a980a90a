package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target of a member.
//
// CurrentAmount never exceeds TargetAmount. The money held by a goal is part
// of the member's allocated bucket.
type Goal struct {
	DefaultModel
	MemberScope
	Name          string     `json:"name" example:"New bicycle"`
	Icon          string     `json:"icon" example:"🚲"`
	TargetAmount  int64      `json:"targetAmount" gorm:"check:goal_target_positive,target_amount > 0" example:"5000"`
	CurrentAmount int64      `json:"currentAmount" gorm:"check:goal_current_in_range,current_amount >= 0 AND current_amount <= target_amount" example:"1200"`
	IsActive      bool       `json:"isActive" example:"true"`
	IsCompleted   bool       `json:"isCompleted" example:"false"`
	CompletedAt   *time.Time `json:"completedAt"`
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = normalizeName(g.Name)
	return nil
}

// Remaining returns how much is missing until the target is reached.
func (g Goal) Remaining() int64 {
	return max(0, g.TargetAmount-g.CurrentAmount)
}

// Contribute adds up to amount, capped at the target, and returns how much
// was accepted.
func (g *Goal) Contribute(amount int64) int64 {
	accepted := min(max(0, amount), g.Remaining())
	g.CurrentAmount += accepted
	return accepted
}

// Progress returns the progress towards the target in percent, capped at 100
// and rounded to one decimal place.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount <= 0 {
		return decimal.Zero
	}

	p := decimal.NewFromInt(g.CurrentAmount).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(g.TargetAmount)).
		Round(1)

	return decimal.Min(p, decimal.NewFromInt(100))
}

// GoalSavings holds goal money of a member while there is no active goal.
type GoalSavings struct {
	DefaultModel
	FamilyID uuid.UUID `json:"familyId" gorm:"type:uuid;index"`
	Member   Member    `json:"-"`
	MemberID uuid.UUID `json:"memberId" gorm:"type:uuid;uniqueIndex"`
	Amount   int64     `json:"amount" example:"30"`
}

// TableName keeps the table name singular, "goal_savingses" reads badly.
func (GoalSavings) TableName() string {
	return "goal_savings"
}
