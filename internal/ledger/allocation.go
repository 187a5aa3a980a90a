package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/eligibility"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Split is how the allocatable money is distributed.
type Split struct {
	Goal       int64 `json:"goal" example:"30"`
	Cash       int64 `json:"cash" example:"20"`
	Investment int64 `json:"investment" example:"0"`
}

// Total returns the sum of all parts.
func (s Split) Total() int64 {
	return s.Goal + s.Cash + s.Investment
}

// AllocationStatus describes what a member can allocate today.
type AllocationStatus struct {
	Today              types.Date               `json:"today" example:"2025-09-26"`
	AllocatableAmount  int64                    `json:"allocatableAmount" example:"50"`
	CanAllocateNow     bool                     `json:"canAllocateNow" example:"true"`
	NextAllocationDate *types.Date              `json:"nextAllocationDate" example:"2025-10-25"` // Nil when the previous month is already open
	EligibleMonths     []types.Month            `json:"eligibleMonths"`
	PendingByMonth     []eligibility.MonthTotal `json:"pendingByMonth"`
	LegacyPendingTotal int64                    `json:"legacyPendingTotal" example:"120"` // Pending money of all months
}

// AllocatableAmount returns the pending money of all eligible months.
func (s *Service) AllocatableAmount(ctx context.Context, scope Scope) (int64, error) {
	status, err := s.AllocationStatus(ctx, scope)
	return status.AllocatableAmount, err
}

// CanAllocateNow reports whether there is eligible money.
func (s *Service) CanAllocateNow(ctx context.Context, scope Scope) (bool, error) {
	status, err := s.AllocationStatus(ctx, scope)
	return status.CanAllocateNow, err
}

// NextAllocationDate returns when the previous month becomes eligible, or nil
// if it already is.
func (s *Service) NextAllocationDate() *types.Date {
	return s.policy.NextAllocationDate(s.Today())
}

// AllocationStatus evaluates the eligibility policy for today against the
// member's pending money.
func (s *Service) AllocationStatus(ctx context.Context, scope Scope) (AllocationStatus, error) {
	today := s.Today()
	status := AllocationStatus{
		Today:              today,
		NextAllocationDate: s.policy.NextAllocationDate(today),
	}

	pending, err := s.PendingByMonth(ctx, scope)
	if err != nil {
		return status, err
	}

	r := s.policy.Allocatable(today, pending)

	status.AllocatableAmount = r.Amount
	status.CanAllocateNow = r.Amount > 0
	status.EligibleMonths = r.Months
	status.PendingByMonth = pending
	for _, p := range pending {
		status.LegacyPendingTotal += p.Amount
	}

	return status, nil
}

// SubmitAllocation distributes all eligible money according to split.
//
// The split must add up to the eligible amount exactly. The goal part goes to
// the oldest active goal, capped at its target, or to the goal savings when
// there is no active goal. Cash becomes available money and the investment
// part is recorded as an investment. All eligible months are fully consumed.
func (s *Service) SubmitAllocation(ctx context.Context, scope Scope, split Split) (models.Allocation, error) {
	if split.Goal < 0 || split.Cash < 0 || split.Investment < 0 {
		return models.Allocation{}, ErrInvalidAmount
	}

	var allocation models.Allocation
	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		today := s.Today()
		now := s.now().UTC()

		// Eligibility is evaluated again inside the transaction so that the
		// split is checked against what is actually pending
		pending, err := pendingByMonth(tx, scope)
		if err != nil {
			return nil, err
		}

		r := s.policy.Allocatable(today, pending)
		if r.Amount <= 0 {
			return nil, ErrNothingToAllocate
		}

		if split.Total() != r.Amount {
			return nil, fmt.Errorf("%w: %d + %d + %d != %d", ErrSplitMismatch, split.Goal, split.Cash, split.Investment, r.Amount)
		}

		balance, err := loadBalance(tx, scope)
		if err != nil {
			return nil, err
		}

		allocation = models.Allocation{
			DefaultModel:   models.DefaultModel{ID: uuid.New()},
			MemberScope:    scope,
			AllocatedOn:    today,
			EligibleAmount: r.Amount,
			Goal:           split.Goal,
			Cash:           split.Cash,
			Investment:     split.Investment,
		}
		allocation.SetMonths(r.Months)

		events := []Event{{Kind: EventMoneyAllocated, ResourceID: &allocation.ID, Amount: r.Amount}}

		balance.Total += r.Amount
		balance.Available += split.Cash

		if split.Goal > 0 {
			applied, goalID, err := applyGoalMoney(tx, scope, split.Goal)
			if err != nil {
				return nil, err
			}

			allocation.GoalID = goalID
			allocation.GoalApplied = applied
			allocation.GoalForfeited = split.Goal - applied
			balance.Allocated += applied

			if allocation.GoalForfeited > 0 {
				log.Info().
					Str("family", scope.FamilyID.String()).
					Str("member", scope.MemberID.String()).
					Int64("forfeited", allocation.GoalForfeited).
					Msg("goal money above the target was dropped")
			}

			events = append(events, Event{Kind: EventGoalUpdated, ResourceID: goalID, Amount: applied})
		}

		if err := tx.Create(&allocation).Error; err != nil {
			return nil, err
		}

		if split.Investment > 0 {
			investment := models.InvestmentRecord{
				MemberScope:  scope,
				Amount:       split.Investment,
				InvestedDate: today,
				Source:       models.InvestmentFromAllocation,
				SourceID:     &allocation.ID,
			}
			if err := tx.Create(&investment).Error; err != nil {
				return nil, err
			}

			events = append(events, Event{Kind: EventInvestmentUpdated, ResourceID: &investment.ID, Amount: split.Investment})
		}

		totals := make(map[string]int64, len(pending))
		for _, p := range pending {
			totals[p.Month.String()] += p.Amount
		}

		for _, month := range r.Months {
			if err := consumeMonth(tx, scope, month, totals[month.String()], allocation.ID, now); err != nil {
				return nil, err
			}
		}

		if err := balance.SaveVersioned(tx); err != nil {
			return nil, err
		}

		allocationsCommitted.Inc()
		allocatedAmount.WithLabelValues("goal").Add(float64(allocation.GoalApplied))
		allocatedAmount.WithLabelValues("cash").Add(float64(split.Cash))
		allocatedAmount.WithLabelValues("investment").Add(float64(split.Investment))

		return append(events, Event{Kind: EventBalanceUpdated}), nil
	})

	return allocation, err
}

// applyGoalMoney puts amount into the oldest active goal, or into the goal
// savings if there is none. It returns how much was kept and the goal that
// received it.
func applyGoalMoney(tx *gorm.DB, scope Scope, amount int64) (int64, *uuid.UUID, error) {
	var goals []models.Goal
	err := scoped(tx, scope).
		Where("is_active = ? AND is_completed = ?", true, false).
		Order("created_at ASC").
		Limit(1).
		Find(&goals).Error
	if err != nil {
		return 0, nil, err
	}

	if len(goals) == 1 {
		goal := goals[0]
		applied := goal.Contribute(amount)
		if err := tx.Save(&goal).Error; err != nil {
			return 0, nil, err
		}

		return applied, &goal.ID, nil
	}

	var savings models.GoalSavings
	if err := scoped(tx, scope).First(&savings).Error; err != nil {
		return 0, nil, err
	}

	savings.Amount += amount
	if err := tx.Save(&savings).Error; err != nil {
		return 0, nil, err
	}

	return amount, nil, nil
}

// Allocations returns the allocation history of the member, newest first.
func (s *Service) Allocations(ctx context.Context, scope Scope) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db, scope).Order("created_at DESC").Find(&allocations).Error
	})
	if err != nil {
		logReadFailure(scope, "allocations", err)
		return nil, err
	}

	return allocations, nil
}
