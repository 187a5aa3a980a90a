package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GoalInput is what is needed to create a goal.
type GoalInput struct {
	Name         string `json:"name" example:"New bicycle"`
	Icon         string `json:"icon" example:"🚲"`
	TargetAmount int64  `json:"targetAmount" example:"5000"`
}

// AddGoal creates an active goal.
func (s *Service) AddGoal(ctx context.Context, scope Scope, in GoalInput) (models.Goal, error) {
	if in.TargetAmount <= 0 {
		return models.Goal{}, ErrInvalidAmount
	}

	goal := models.Goal{
		MemberScope:  scope,
		Name:         in.Name,
		Icon:         in.Icon,
		TargetAmount: in.TargetAmount,
		IsActive:     true,
	}

	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		if err := tx.Create(&goal).Error; err != nil {
			return nil, err
		}

		return []Event{{Kind: EventGoalUpdated, ResourceID: &goal.ID}}, nil
	})

	return goal, err
}

func loadGoal(tx *gorm.DB, scope Scope, id uuid.UUID) (models.Goal, error) {
	var goal models.Goal
	err := scoped(tx, scope).Where("id = ?", id).First(&goal).Error
	return goal, err
}

// DeleteGoal deletes a goal. Money saved in an active goal goes back to
// available.
func (s *Service) DeleteGoal(ctx context.Context, scope Scope, id uuid.UUID) error {
	return s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		goal, err := loadGoal(tx, scope, id)
		if err != nil {
			return nil, err
		}

		events := []Event{{Kind: EventGoalUpdated, ResourceID: &goal.ID}}

		if !goal.IsCompleted && goal.CurrentAmount > 0 {
			balance, err := loadBalance(tx, scope)
			if err != nil {
				return nil, err
			}

			returned := goal.CurrentAmount
			if balance.Allocated < returned {
				log.Warn().
					Str("family", scope.FamilyID.String()).
					Str("member", scope.MemberID.String()).
					Str("field", "allocated").
					Int64("allocated", balance.Allocated).
					Int64("goal", returned).
					Msg("goal holds more than the allocated bucket, clamping to zero")
				balance.Allocated = returned
			}

			if err := balance.Deallocate(returned); err != nil {
				return nil, err
			}

			if err := balance.SaveVersioned(tx); err != nil {
				return nil, err
			}

			events = append(events, Event{Kind: EventBalanceUpdated, Amount: returned})
		}

		if err := tx.Delete(&goal).Error; err != nil {
			return nil, err
		}

		return events, nil
	})
}

// CompleteGoal marks a goal that reached its target as completed. The saved
// money counts as spent.
func (s *Service) CompleteGoal(ctx context.Context, scope Scope, id uuid.UUID) (models.Goal, error) {
	var goal models.Goal
	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		var err error
		goal, err = loadGoal(tx, scope, id)
		if err != nil {
			return nil, err
		}

		if !goal.IsActive || goal.IsCompleted {
			return nil, ErrGoalInactive
		}

		if goal.CurrentAmount < goal.TargetAmount {
			return nil, fmt.Errorf("%w: %d of %d saved", ErrGoalNotCompletable, goal.CurrentAmount, goal.TargetAmount)
		}

		balance, err := loadBalance(tx, scope)
		if err != nil {
			return nil, err
		}

		if err := balance.MoveAllocatedToSpent(goal.CurrentAmount); err != nil {
			return nil, err
		}

		if err := balance.SaveVersioned(tx); err != nil {
			return nil, err
		}

		now := s.now().UTC()
		goal.IsActive = false
		goal.IsCompleted = true
		goal.CompletedAt = &now

		if err := tx.Save(&goal).Error; err != nil {
			return nil, err
		}

		return []Event{
			{Kind: EventGoalUpdated, ResourceID: &goal.ID},
			{Kind: EventBalanceUpdated, Amount: goal.CurrentAmount},
		}, nil
	})

	return goal, err
}

// AllocateToGoal moves up to amount from available into the goal. Only what
// is missing to the target is moved.
func (s *Service) AllocateToGoal(ctx context.Context, scope Scope, id uuid.UUID, amount int64) (models.Goal, error) {
	if amount <= 0 {
		return models.Goal{}, ErrInvalidAmount
	}

	var goal models.Goal
	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		var err error
		goal, err = loadGoal(tx, scope, id)
		if err != nil {
			return nil, err
		}

		if !goal.IsActive || goal.IsCompleted {
			return nil, ErrGoalInactive
		}

		accepted := min(amount, goal.Remaining())
		if accepted == 0 {
			return nil, ErrGoalFull
		}

		balance, err := loadBalance(tx, scope)
		if err != nil {
			return nil, err
		}

		if err := balance.Allocate(accepted); err != nil {
			return nil, err
		}

		goal.Contribute(accepted)

		if err := tx.Save(&goal).Error; err != nil {
			return nil, err
		}

		if err := balance.SaveVersioned(tx); err != nil {
			return nil, err
		}

		return []Event{
			{Kind: EventGoalUpdated, ResourceID: &goal.ID, Amount: accepted},
			{Kind: EventBalanceUpdated},
		}, nil
	})

	return goal, err
}

// WithdrawFromGoal moves amount from the goal back to available.
func (s *Service) WithdrawFromGoal(ctx context.Context, scope Scope, id uuid.UUID, amount int64) (models.Goal, error) {
	if amount <= 0 {
		return models.Goal{}, ErrInvalidAmount
	}

	var goal models.Goal
	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		var err error
		goal, err = loadGoal(tx, scope, id)
		if err != nil {
			return nil, err
		}

		if !goal.IsActive || goal.IsCompleted {
			return nil, ErrGoalInactive
		}

		if goal.CurrentAmount < amount {
			return nil, fmt.Errorf("%w: goal holds %d, need %d", ErrInsufficientFunds, goal.CurrentAmount, amount)
		}

		balance, err := loadBalance(tx, scope)
		if err != nil {
			return nil, err
		}

		if err := balance.Deallocate(amount); err != nil {
			return nil, err
		}

		goal.CurrentAmount -= amount

		if err := tx.Save(&goal).Error; err != nil {
			return nil, err
		}

		if err := balance.SaveVersioned(tx); err != nil {
			return nil, err
		}

		return []Event{
			{Kind: EventGoalUpdated, ResourceID: &goal.ID, Amount: -amount},
			{Kind: EventBalanceUpdated},
		}, nil
	})

	return goal, err
}

// Goals returns all goals of the member, oldest first.
func (s *Service) Goals(ctx context.Context, scope Scope) ([]models.Goal, error) {
	return s.goals(ctx, scope, "goals", func(db *gorm.DB) *gorm.DB { return db })
}

// ActiveGoals returns the goals that still accept money, oldest first.
func (s *Service) ActiveGoals(ctx context.Context, scope Scope) ([]models.Goal, error) {
	return s.goals(ctx, scope, "active goals", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ? AND is_completed = ?", true, false)
	})
}

func (s *Service) goals(ctx context.Context, scope Scope, op string, filter func(*gorm.DB) *gorm.DB) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.read(ctx, func(db *gorm.DB) error {
		return filter(scoped(db, scope)).Order("created_at ASC").Find(&goals).Error
	})
	if err != nil {
		logReadFailure(scope, op, err)
		return nil, err
	}

	return goals, nil
}

// GoalSavings returns the goal money that is not bound to a goal.
func (s *Service) GoalSavings(ctx context.Context, scope Scope) (int64, error) {
	var savings models.GoalSavings
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db, scope).First(&savings).Error
	})
	if err != nil {
		logReadFailure(scope, "goal savings", err)
		return 0, err
	}

	return savings.Amount, nil
}
