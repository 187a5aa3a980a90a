package ledger

import (
	"context"
	"time"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/eligibility"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"gorm.io/gorm"
)

// InvestmentHistory returns the investments of the member, newest first.
func (s *Service) InvestmentHistory(ctx context.Context, scope Scope) ([]models.InvestmentRecord, error) {
	var records []models.InvestmentRecord
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db, scope).Order("invested_date DESC, created_at DESC").Find(&records).Error
	})
	if err != nil {
		logReadFailure(scope, "investment history", err)
		return nil, err
	}

	return records, nil
}

// InvestmentBalance returns the sum of all investments.
func (s *Service) InvestmentBalance(ctx context.Context, scope Scope) (int64, error) {
	var total int64
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db.Model(&models.InvestmentRecord{}), scope).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error
	})
	if err != nil {
		logReadFailure(scope, "investment balance", err)
		return 0, err
	}

	return total, nil
}

// MonthlyInvestments returns the invested sum per month, oldest first.
func (s *Service) MonthlyInvestments(ctx context.Context, scope Scope) ([]eligibility.MonthTotal, error) {
	var totals []eligibility.MonthTotal
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db.Model(&models.InvestmentRecord{}), scope).
			Select("invested_month AS month, SUM(amount) AS amount").
			Group("invested_month").
			Order("invested_month ASC").
			Scan(&totals).Error
	})
	if err != nil {
		logReadFailure(scope, "monthly investments", err)
		return nil, err
	}

	return totals, nil
}

// FirstInvestmentDate returns the date of the oldest investment, nil if there
// is none.
func (s *Service) FirstInvestmentDate(ctx context.Context, scope Scope) (*types.Date, error) {
	var records []models.InvestmentRecord
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db, scope).Order("invested_date ASC").Limit(1).Find(&records).Error
	})
	if err != nil {
		logReadFailure(scope, "first investment date", err)
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}

	return &records[0].InvestedDate, nil
}

// InvestmentDurationDays returns the number of days since the first
// investment, 0 if there is none.
func (s *Service) InvestmentDurationDays(ctx context.Context, scope Scope) (int, error) {
	first, err := s.FirstInvestmentDate(ctx, scope)
	if err != nil || first == nil {
		return 0, err
	}

	days := s.Today().Time(time.UTC).Sub(first.Time(time.UTC)).Hours() / 24
	return max(0, int(days)), nil
}
