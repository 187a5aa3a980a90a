// Package eligibility decides which calendar months of earned money may be
// allocated on a given day.
//
// Money earned in month M becomes allocatable on the cutoff day of month M+1.
// Before the cutoff day only months two or more months back are open.
package eligibility

import (
	"fmt"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"golang.org/x/exp/slices"
)

// DefaultCutoffDay is the day of the month on which the previous month opens.
const DefaultCutoffDay = 25

// MonthTotal is the pending amount of one calendar month.
type MonthTotal struct {
	Month  types.Month `json:"month" example:"2025-08"`
	Amount int64       `json:"amount" example:"50"`
}

// Result is what Allocatable computed for a day.
type Result struct {
	Amount int64         // Sum of all eligible months
	Months []types.Month // Eligible months with a positive total, oldest first
}

// Policy is the allocation eligibility rule. The zero value is not usable,
// use New.
type Policy struct {
	CutoffDay int
}

// New returns a Policy with the given cutoff day.
func New(cutoffDay int) (Policy, error) {
	if cutoffDay < 1 || cutoffDay > 28 {
		return Policy{}, fmt.Errorf("cutoff day must be between 1 and 28, got %d", cutoffDay)
	}

	return Policy{CutoffDay: cutoffDay}, nil
}

// LatestEligibleMonth returns the newest month that is open on today.
// All months before it are open as well.
func (p Policy) LatestEligibleMonth(today types.Date) types.Month {
	if today.Day() >= p.CutoffDay {
		return today.Month().AddDate(0, -1)
	}

	return today.Month().AddDate(0, -2)
}

// IsEligible reports whether money earned in month may be allocated on today.
func (p Policy) IsEligible(month types.Month, today types.Date) bool {
	return !month.After(p.LatestEligibleMonth(today))
}

// NextAllocationDate returns nil when the previous month is already open,
// otherwise the cutoff day of the current month.
func (p Policy) NextAllocationDate(today types.Date) *types.Date {
	if today.Day() >= p.CutoffDay {
		return nil
	}

	m := today.Month()
	next := m.FirstDay().AddDays(p.CutoffDay - 1)
	return &next
}

// Allocatable sums the pending totals of every eligible month. There is no
// look-back limit. Negative totals count as zero.
func (p Policy) Allocatable(today types.Date, pending []MonthTotal) Result {
	var r Result

	for _, mt := range pending {
		if mt.Amount <= 0 || !p.IsEligible(mt.Month, today) {
			continue
		}

		r.Amount += mt.Amount
		if !slices.ContainsFunc(r.Months, mt.Month.Equal) {
			r.Months = append(r.Months, mt.Month)
		}
	}

	slices.SortFunc(r.Months, func(a, b types.Month) int {
		return a.Compare(b)
	})

	return r
}

// CanAllocate reports whether anything is allocatable on today.
func (p Policy) CanAllocate(today types.Date, pending []MonthTotal) bool {
	return p.Allocatable(today, pending).Amount > 0
}
