package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"gorm.io/gorm"
)

// EarningSource is where an earning came from.
type EarningSource string

const (
	SourceTaskCompletion EarningSource = "task_completion"
	SourceBonus          EarningSource = "bonus"
	SourceManual         EarningSource = "manual"
)

// Valid reports if the source is known.
func (s EarningSource) Valid() bool {
	switch s {
	case SourceTaskCompletion, SourceBonus, SourceManual:
		return true
	}
	return false
}

// EarningStatus is the allocation state of an earning.
type EarningStatus string

const (
	EarningPending   EarningStatus = "pending"
	EarningAllocated EarningStatus = "allocated"
	EarningExpired   EarningStatus = "expired"
)

// EarningRecord is one reward-earning event.
//
// PendingAmount is the part of Amount that has not been allocated yet. It is
// the only place pending money is stored: monthly pending totals and the
// total pending counter are sums over it.
type EarningRecord struct {
	DefaultModel
	MemberScope
	Amount        int64         `json:"amount" gorm:"check:earning_amount_positive,amount > 0" example:"50"`
	PendingAmount int64         `json:"pendingAmount" gorm:"check:earning_pending_in_range,pending_amount >= 0 AND pending_amount <= amount" example:"50"`
	EarnedDate    types.Date    `json:"earnedDate" example:"2025-08-03"`
	EarnedMonth   types.Month   `json:"earnedMonth" gorm:"index" example:"2025-08"`
	Source        EarningSource `json:"source" example:"task_completion"`
	SourceID      *uuid.UUID    `json:"sourceId" gorm:"type:uuid;index"`
	Status        EarningStatus `json:"status" gorm:"index" example:"pending"`
	AllocatedAt   *time.Time    `json:"allocatedAt"`
	AllocationID  *uuid.UUID    `json:"allocationId" gorm:"type:uuid"` // Last allocation that consumed from this record
}

// BeforeSave keeps the month in line with the date.
func (e *EarningRecord) BeforeSave(_ *gorm.DB) error {
	e.EarnedMonth = e.EarnedDate.Month()
	return nil
}

// Consume takes up to amount from the pending part of the record and returns
// how much was taken. The record switches to allocated once nothing is
// pending any more.
func (e *EarningRecord) Consume(amount int64, allocationID uuid.UUID, at time.Time) int64 {
	if amount <= 0 || e.Status != EarningPending {
		return 0
	}

	taken := min(amount, e.PendingAmount)
	e.PendingAmount -= taken
	e.AllocationID = &allocationID

	if e.PendingAmount == 0 {
		e.Status = EarningAllocated
		e.AllocatedAt = &at
	}

	return taken
}

// Expire drops whatever is still pending. A record that was partly
// allocated before counts as allocated from at, all others expire.
func (e *EarningRecord) Expire(at time.Time) {
	if e.Status != EarningPending {
		return
	}

	consumed := e.PendingAmount < e.Amount
	e.PendingAmount = 0

	if consumed {
		e.Status = EarningAllocated
		e.AllocatedAt = &at
		return
	}

	e.Status = EarningExpired
}
