package importer

import (
	"cmp"
	"fmt"

	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/importer/helpers"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Create writes the resources into the empty ledger of the member in scope.
// tx must be a transaction, nothing is written if an error is returned.
//
// Monthly pending totals are authoritative for pending money. Pending
// earnings of a month are trimmed or topped up with a synthetic record until
// they match the month's total. What the legacy total pending counter holds
// beyond the monthly totals becomes a synthetic record in the month of today.
func Create(tx *gorm.DB, scope models.MemberScope, resources ParsedResources, today types.Date) (Result, error) {
	var result Result

	balance, err := emptyLedger(tx, scope)
	if err != nil {
		return Result{}, err
	}

	balance.Available = resources.Balance.Available
	balance.Allocated = resources.Balance.Allocated
	balance.Spent = resources.Balance.Spent
	balance.Total = resources.Balance.Total
	if err := balance.SaveVersioned(tx); err != nil {
		return Result{}, err
	}
	result.Total = balance.Total

	err = tx.Model(&models.GoalSavings{}).
		Where("family_id = ? AND member_id = ?", scope.FamilyID, scope.MemberID).
		Update("amount", max(0, resources.GoalSavings)).Error
	if err != nil {
		return Result{}, err
	}

	for _, g := range resources.Goals {
		goal := g.Model
		goal.ID = helpers.StableID(scope.MemberID, "goal:"+g.LegacyID)
		goal.MemberScope = scope

		if err := tx.Create(&goal).Error; err != nil {
			return Result{}, fmt.Errorf("goal '%s': %w", goal.Name, err)
		}
		result.Goals++
	}

	earnings, synthetic := reconcilePending(resources, today)
	for _, e := range earnings {
		record := e.Model
		record.ID = helpers.StableID(scope.MemberID, "earning:"+e.LegacyID)
		record.MemberScope = scope

		if err := tx.Create(&record).Error; err != nil {
			return Result{}, fmt.Errorf("earning %s: %w", e.LegacyID, err)
		}
		result.Earnings++
		result.Pending += record.PendingAmount
	}

	for _, record := range synthetic {
		record.MemberScope = scope

		if err := tx.Create(&record).Error; err != nil {
			return Result{}, fmt.Errorf("pending money of %s: %w", record.EarnedMonth, err)
		}
		result.SyntheticEarnings++
		result.Pending += record.PendingAmount
	}

	var invested int64
	for _, i := range resources.Investments {
		record := i.Model
		record.ID = helpers.StableID(scope.MemberID, "investment:"+i.LegacyID)
		record.MemberScope = scope

		if err := tx.Create(&record).Error; err != nil {
			return Result{}, fmt.Errorf("investment %s: %w", i.LegacyID, err)
		}
		invested += record.Amount
		result.Investments++
	}

	switch {
	case resources.InvestmentBalance > invested:
		record := models.InvestmentRecord{
			MemberScope:  scope,
			Amount:       resources.InvestmentBalance - invested,
			InvestedDate: today,
			Source:       models.InvestmentFromImport,
		}
		if err := tx.Create(&record).Error; err != nil {
			return Result{}, fmt.Errorf("investment balance: %w", err)
		}
		result.Investments++
	case resources.InvestmentBalance < invested:
		log.Warn().
			Str("member", scope.MemberID.String()).
			Int64("balance", resources.InvestmentBalance).
			Int64("records", invested).
			Msg("legacy investment balance is lower than its records, using the records")
	}

	return result, nil
}

// emptyLedger returns the balance of the member if nothing has been recorded
// for it yet.
func emptyLedger(tx *gorm.DB, scope models.MemberScope) (models.Balance, error) {
	var balance models.Balance
	err := tx.Where("family_id = ? AND member_id = ?", scope.FamilyID, scope.MemberID).First(&balance).Error
	if err != nil {
		return models.Balance{}, err
	}

	if balance.Version != 0 || balance.Total != 0 || balance.Available != 0 || balance.Allocated != 0 || balance.Spent != 0 {
		return models.Balance{}, ErrLedgerNotEmpty
	}

	for _, model := range []any{&models.EarningRecord{}, &models.Goal{}, &models.InvestmentRecord{}, &models.TaskCompletion{}} {
		var count int64
		err := tx.Model(model).Where("family_id = ? AND member_id = ?", scope.FamilyID, scope.MemberID).Count(&count).Error
		if err != nil {
			return models.Balance{}, err
		}

		if count > 0 {
			return models.Balance{}, ErrLedgerNotEmpty
		}
	}

	return balance, nil
}

// reconcilePending aligns the pending amounts of the earnings with the
// monthly pending totals and returns the synthetic records that carry
// pending money without history.
func reconcilePending(resources ParsedResources, today types.Date) ([]Earning, []models.EarningRecord) {
	earnings := slices.Clone(resources.Earnings)

	byMonth := make(map[types.Month][]int)
	for i, e := range earnings {
		if e.Model.Status == models.EarningPending {
			m := e.Model.EarnedDate.Month()
			byMonth[m] = append(byMonth[m], i)
		}
	}

	monthly := resources.MonthlyPending
	if len(monthly) == 0 {
		// Snapshots written before monthly totals existed
		monthly = make(map[types.Month]int64)
		for m, idx := range byMonth {
			for _, i := range idx {
				monthly[m] += earnings[i].Model.PendingAmount
			}
		}
	}

	months := make([]types.Month, 0, len(monthly)+len(byMonth))
	for m := range monthly {
		months = append(months, m)
	}
	for m := range byMonth {
		if _, ok := monthly[m]; !ok {
			months = append(months, m)
		}
	}
	slices.SortFunc(months, func(a, b types.Month) int { return a.Compare(b) })

	var synthetic []models.EarningRecord
	var monthlySum int64

	for _, m := range months {
		want := monthly[m]
		monthlySum += want

		idx := byMonth[m]
		var have int64
		for _, i := range idx {
			have += earnings[i].Model.PendingAmount
		}

		switch {
		case have < want:
			synthetic = append(synthetic, syntheticEarning(want-have, m.FirstDay()))
		case have > want:
			// Newest first, the oldest money stays pending the longest
			slices.SortStableFunc(idx, func(a, b int) int {
				return cmp.Compare(earnings[b].Model.CreatedAt.UnixNano(), earnings[a].Model.CreatedAt.UnixNano())
			})

			excess := have - want
			for _, i := range idx {
				if excess == 0 {
					break
				}

				e := &earnings[i].Model
				taken := min(excess, e.PendingAmount)
				e.PendingAmount -= taken
				excess -= taken

				if e.PendingAmount == 0 {
					e.Status = models.EarningAllocated
				}
			}
		}
	}

	switch {
	case resources.LegacyPending > monthlySum:
		synthetic = append(synthetic, syntheticEarning(resources.LegacyPending-monthlySum, today))
	case resources.LegacyPending < monthlySum && resources.LegacyPending != 0:
		log.Warn().
			Int64("legacy", resources.LegacyPending).
			Int64("monthly", monthlySum).
			Msg("legacy pending counter is lower than the monthly totals, using the monthly totals")
	}

	return earnings, synthetic
}

func syntheticEarning(amount int64, date types.Date) models.EarningRecord {
	return models.EarningRecord{
		DefaultModel:  models.DefaultModel{ID: uuid.New()},
		Amount:        amount,
		PendingAmount: amount,
		EarnedDate:    date,
		Source:        models.SourceManual,
		Status:        models.EarningPending,
	}
}
