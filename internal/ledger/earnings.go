package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/eligibility"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"gorm.io/gorm"
)

// RecordEarning appends a pending earning dated today.
func (s *Service) RecordEarning(ctx context.Context, scope Scope, amount int64, source models.EarningSource, sourceID *uuid.UUID) (models.EarningRecord, error) {
	if amount <= 0 {
		return models.EarningRecord{}, ErrInvalidAmount
	}

	if !source.Valid() {
		return models.EarningRecord{}, ErrInvalidSource
	}

	var record models.EarningRecord
	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		var err error
		record, err = recordEarning(tx, scope, amount, source, sourceID, s.Today())
		if err != nil {
			return nil, err
		}

		return []Event{{Kind: EventEarningRecorded, ResourceID: &record.ID, Amount: amount}}, nil
	})

	return record, err
}

func recordEarning(tx *gorm.DB, scope Scope, amount int64, source models.EarningSource, sourceID *uuid.UUID, date types.Date) (models.EarningRecord, error) {
	if amount <= 0 {
		return models.EarningRecord{}, ErrInvalidAmount
	}

	record := models.EarningRecord{
		MemberScope:   scope,
		Amount:        amount,
		PendingAmount: amount,
		EarnedDate:    date,
		Source:        source,
		SourceID:      sourceID,
		Status:        models.EarningPending,
	}

	if err := tx.Create(&record).Error; err != nil {
		return models.EarningRecord{}, err
	}

	earningsRecorded.WithLabelValues(string(source)).Inc()
	earnedAmount.Add(float64(amount))

	return record, nil
}

// PendingByMonth returns the pending total of every month that has pending
// money, oldest first.
func (s *Service) PendingByMonth(ctx context.Context, scope Scope) ([]eligibility.MonthTotal, error) {
	var totals []eligibility.MonthTotal
	err := s.read(ctx, func(db *gorm.DB) error {
		var err error
		totals, err = pendingByMonth(db, scope)
		return err
	})
	if err != nil {
		logReadFailure(scope, "pending by month", err)
		return nil, err
	}

	return totals, nil
}

func pendingByMonth(tx *gorm.DB, scope Scope) ([]eligibility.MonthTotal, error) {
	var totals []eligibility.MonthTotal

	err := scoped(tx.Model(&models.EarningRecord{}), scope).
		Select("earned_month AS month, SUM(pending_amount) AS amount").
		Where("status = ?", models.EarningPending).
		Group("earned_month").
		Having("SUM(pending_amount) > 0").
		Order("earned_month ASC").
		Scan(&totals).Error

	return totals, err
}

// LegacyPendingTotal returns the total pending money of the member over all
// months.
func (s *Service) LegacyPendingTotal(ctx context.Context, scope Scope) (int64, error) {
	var total int64
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db.Model(&models.EarningRecord{}), scope).
			Select("COALESCE(SUM(pending_amount), 0)").
			Where("status = ?", models.EarningPending).
			Scan(&total).Error
	})
	if err != nil {
		logReadFailure(scope, "legacy pending total", err)
		return 0, err
	}

	return total, nil
}

// AllocatableEarnings returns the pending records earned in month, in the
// order they were recorded.
func (s *Service) AllocatableEarnings(ctx context.Context, scope Scope, month types.Month) ([]models.EarningRecord, error) {
	var records []models.EarningRecord
	err := s.read(ctx, func(db *gorm.DB) error {
		var err error
		records, err = pendingRecords(db, scope, month)
		return err
	})
	if err != nil {
		logReadFailure(scope, "allocatable earnings", err)
		return nil, err
	}

	return records, nil
}

// AllocatableEarningAmount returns the pending money earned in month.
func (s *Service) AllocatableEarningAmount(ctx context.Context, scope Scope, month types.Month) (int64, error) {
	records, err := s.AllocatableEarnings(ctx, scope, month)
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, r := range records {
		sum += r.PendingAmount
	}

	return sum, nil
}

func pendingRecords(tx *gorm.DB, scope Scope, month types.Month) ([]models.EarningRecord, error) {
	var records []models.EarningRecord

	err := scoped(tx, scope).
		Where("earned_month = ? AND status = ?", month, models.EarningPending).
		Order("created_at ASC").
		Order("rowid ASC").
		Find(&records).Error

	return records, err
}

// AllocateEarnings marks amount of the pending money of month as allocated,
// oldest records first. The last record touched may be consumed partially.
// Nothing changes if amount exceeds what is pending for the month.
func (s *Service) AllocateEarnings(ctx context.Context, scope Scope, month types.Month, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		allocationID := uuid.New()
		if err := consumeMonth(tx, scope, month, amount, allocationID, s.now().UTC()); err != nil {
			return nil, err
		}

		return []Event{{Kind: EventMoneyAllocated, Amount: amount}}, nil
	})
}

// consumeMonth takes amount from the pending records of month.
func consumeMonth(tx *gorm.DB, scope Scope, month types.Month, amount int64, allocationID uuid.UUID, at time.Time) error {
	records, err := pendingRecords(tx, scope, month)
	if err != nil {
		return err
	}

	var pending int64
	for _, r := range records {
		pending += r.PendingAmount
	}

	if amount > pending {
		return fmt.Errorf("%w: %d requested, %d pending in %s", ErrInsufficientEarnings, amount, pending, month)
	}

	remaining := amount
	for i := range records {
		if remaining == 0 {
			break
		}

		remaining -= records[i].Consume(remaining, allocationID, at)
		if err := tx.Save(&records[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

// EarningHistory returns all earnings of the member, newest first.
func (s *Service) EarningHistory(ctx context.Context, scope Scope) ([]models.EarningRecord, error) {
	var records []models.EarningRecord
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db, scope).Order("earned_date DESC, created_at DESC").Find(&records).Error
	})
	if err != nil {
		logReadFailure(scope, "earning history", err)
		return nil, err
	}

	return records, nil
}

// TodayEarnings returns the sum of everything earned today.
func (s *Service) TodayEarnings(ctx context.Context, scope Scope) (int64, error) {
	var total int64
	err := s.read(ctx, func(db *gorm.DB) error {
		return scoped(db.Model(&models.EarningRecord{}), scope).
			Select("COALESCE(SUM(amount), 0)").
			Where("earned_date = ? AND status <> ?", s.Today(), models.EarningExpired).
			Scan(&total).Error
	})
	if err != nil {
		logReadFailure(scope, "today earnings", err)
		return 0, err
	}

	return total, nil
}
