package ledger

import (
	"context"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Summary is the balance of a member together with derived figures.
type Summary struct {
	models.Balance
	GoalSavings       int64           `json:"goalSavings" example:"30"`
	InvestmentBalance int64           `json:"investmentBalance" example:"100"`
	SavingsRate       decimal.Decimal `json:"savingsRate" example:"42.5"`  // (available + allocated) / total in percent
	SpendingRate      decimal.Decimal `json:"spendingRate" example:"57.5"` // spent / total in percent
}

// Balance returns the money buckets of the member.
func (s *Service) Balance(ctx context.Context, scope Scope) (models.Balance, error) {
	var b models.Balance
	err := s.read(ctx, func(db *gorm.DB) error {
		var err error
		b, err = loadBalance(db, scope)
		return err
	})
	if err != nil {
		logReadFailure(scope, "balance", err)
		return models.Balance{}, err
	}

	return b, nil
}

// BalanceSummary returns the balance with goal savings, investment balance
// and the savings and spending rates.
func (s *Service) BalanceSummary(ctx context.Context, scope Scope) (Summary, error) {
	b, err := s.Balance(ctx, scope)
	if err != nil {
		return Summary{}, err
	}

	savings, err := s.GoalSavings(ctx, scope)
	if err != nil {
		return Summary{}, err
	}

	invested, err := s.InvestmentBalance(ctx, scope)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Balance:           b,
		GoalSavings:       savings,
		InvestmentBalance: invested,
		SavingsRate:       rate(b.Available+b.Allocated, b.Total),
		SpendingRate:      rate(b.Spent, b.Total),
	}, nil
}

func rate(part, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(1)
}

// updateBalance applies op to the member's balance and stores it.
func (s *Service) updateBalance(ctx context.Context, scope Scope, op func(*models.Balance) error) (models.Balance, error) {
	var b models.Balance
	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		var err error
		b, err = loadBalance(tx, scope)
		if err != nil {
			return nil, err
		}

		if err := op(&b); err != nil {
			return nil, err
		}

		if err := b.SaveVersioned(tx); err != nil {
			return nil, err
		}

		return []Event{{Kind: EventBalanceUpdated}}, nil
	})
	if err != nil {
		return models.Balance{}, err
	}

	return b, nil
}

// AddMoney adds amount to available and total.
func (s *Service) AddMoney(ctx context.Context, scope Scope, amount int64) (models.Balance, error) {
	return s.updateBalance(ctx, scope, func(b *models.Balance) error {
		return b.Add(amount)
	})
}

// SpendMoney moves amount from available to spent.
func (s *Service) SpendMoney(ctx context.Context, scope Scope, amount int64) (models.Balance, error) {
	return s.updateBalance(ctx, scope, func(b *models.Balance) error {
		return b.Spend(amount)
	})
}

// AllocateMoney moves amount from available to allocated.
func (s *Service) AllocateMoney(ctx context.Context, scope Scope, amount int64) (models.Balance, error) {
	return s.updateBalance(ctx, scope, func(b *models.Balance) error {
		return b.Allocate(amount)
	})
}

// DeallocateMoney moves amount from allocated to available.
func (s *Service) DeallocateMoney(ctx context.Context, scope Scope, amount int64) (models.Balance, error) {
	return s.updateBalance(ctx, scope, func(b *models.Balance) error {
		return b.Deallocate(amount)
	})
}

// MoveAllocatedToSpent moves amount from allocated to spent.
func (s *Service) MoveAllocatedToSpent(ctx context.Context, scope Scope, amount int64) (models.Balance, error) {
	return s.updateBalance(ctx, scope, func(b *models.Balance) error {
		return b.MoveAllocatedToSpent(amount)
	})
}

// ResetBalance zeroes all buckets.
func (s *Service) ResetBalance(ctx context.Context, scope Scope) (models.Balance, error) {
	return s.updateBalance(ctx, scope, func(b *models.Balance) error {
		b.Reset()
		return nil
	})
}
