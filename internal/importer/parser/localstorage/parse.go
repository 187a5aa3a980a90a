// Package localstorage parses snapshots of the key-value store the family
// helper app kept in the browser before it had a backend.
package localstorage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/importer"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

var ErrInvalidSnapshot = errors.New("the snapshot is not valid")

// Parse reads the records of one member from snapshot. familyID and memberID
// are the IDs the legacy store used in its keys.
func Parse(familyID, memberID string, snapshot map[string]string) (importer.ParsedResources, error) {
	if familyID == "" || memberID == "" {
		return importer.ParsedResources{}, fmt.Errorf("%w: family and member ID are required", ErrInvalidSnapshot)
	}

	key := func(prefix string) string {
		return fmt.Sprintf("%s-%s-%s", prefix, familyID, memberID)
	}

	resources := importer.ParsedResources{
		MonthlyPending: make(map[types.Month]int64),
	}

	var b balance
	if _, err := decode(snapshot, key("balance"), &b); err != nil {
		return importer.ParsedResources{}, err
	}
	resources.Balance = importer.Balance{
		Available: int64(b.Available),
		Allocated: int64(b.Allocated),
		Spent:     int64(b.Spent),
		Total:     int64(b.Total),
	}

	var err error
	if resources.LegacyPending, err = scalar(snapshot, key("pendingMoney")); err != nil {
		return importer.ParsedResources{}, err
	}

	if resources.GoalSavings, err = scalar(snapshot, key("goalSavings")); err != nil {
		return importer.ParsedResources{}, err
	}

	if resources.InvestmentBalance, err = scalar(snapshot, key("investment")); err != nil {
		return importer.ParsedResources{}, err
	}

	if err := parseMonthlyPending(&resources, snapshot, key("pendingMoney")); err != nil {
		return importer.ParsedResources{}, err
	}

	var earnings []earning
	if _, err := decode(snapshot, key("earnings"), &earnings); err != nil {
		return importer.ParsedResources{}, err
	}
	if err := parseEarnings(&resources, earnings); err != nil {
		return importer.ParsedResources{}, err
	}

	var goals []goal
	if _, err := decode(snapshot, key("goals"), &goals); err != nil {
		return importer.ParsedResources{}, err
	}
	if err := parseGoals(&resources, goals); err != nil {
		return importer.ParsedResources{}, err
	}

	var investments []investment
	if _, err := decode(snapshot, key("investmentRecords"), &investments); err != nil {
		return importer.ParsedResources{}, err
	}
	if err := parseInvestments(&resources, investments); err != nil {
		return importer.ParsedResources{}, err
	}

	return resources, nil
}

// scalar reads an integer value. Missing keys read as 0.
func scalar(snapshot map[string]string, key string) (int64, error) {
	var a amount
	if _, err := decode(snapshot, key, &a); err != nil {
		return 0, err
	}

	return int64(a), nil
}

// parseMonthlyPending reads all "<prefix>-YYYY-MM" keys.
func parseMonthlyPending(resources *importer.ParsedResources, snapshot map[string]string, prefix string) error {
	pattern := prefix + "-*"

	for k := range snapshot {
		if !glob.Glob(pattern, k) {
			continue
		}

		// Member IDs may share a prefix, keys of other members do not end in a month
		month, err := types.ParseMonth(strings.TrimPrefix(k, prefix+"-"))
		if err != nil {
			log.Debug().Str("key", k).Msg("ignoring key that does not end in a month")
			continue
		}

		v, err := scalar(snapshot, k)
		if err != nil {
			return err
		}

		if v < 0 {
			log.Warn().Str("key", k).Int64("value", v).Msg("negative monthly pending total read as zero")
			v = 0
		}

		resources.MonthlyPending[month] += v
	}

	return nil
}

func parseEarnings(resources *importer.ParsedResources, earnings []earning) error {
	for i, e := range earnings {
		if e.Amount <= 0 {
			log.Warn().Str("id", e.ID).Int64("amount", int64(e.Amount)).Msg("skipping earning without a positive amount")
			continue
		}

		date, err := types.ParseDate(e.EarnedDate)
		if err != nil {
			return fmt.Errorf("%w: earning %d (%s) has no valid date: %w", ErrInvalidSnapshot, i, e.ID, err)
		}

		source := models.EarningSource(e.Source)
		if !source.Valid() {
			return fmt.Errorf("%w: earning %d (%s) has the unknown source '%s'", ErrInvalidSnapshot, i, e.ID, e.Source)
		}

		status := models.EarningStatus(e.Status)
		pending := int64(0)
		switch status {
		case models.EarningPending:
			pending = int64(e.Amount)
		case models.EarningAllocated, models.EarningExpired:
		default:
			return fmt.Errorf("%w: earning %d (%s) has the unknown status '%s'", ErrInvalidSnapshot, i, e.ID, e.Status)
		}

		model := models.EarningRecord{
			Amount:        int64(e.Amount),
			PendingAmount: pending,
			EarnedDate:    date,
			Source:        source,
			Status:        status,
			AllocatedAt:   utc(e.AllocatedAt),
		}
		if e.CreatedAt != nil {
			model.CreatedAt = e.CreatedAt.UTC()
		}

		resources.Earnings = append(resources.Earnings, importer.Earning{
			LegacyID: legacyID(e.ID, "earning", i),
			Model:    model,
		})
	}

	return nil
}

func parseGoals(resources *importer.ParsedResources, goals []goal) error {
	for i, g := range goals {
		name := g.Name
		if name == "" {
			name = g.Title
		}

		if g.TargetAmount <= 0 {
			return fmt.Errorf("%w: goal %d (%s) has no positive target amount", ErrInvalidSnapshot, i, name)
		}

		current := int64(g.CurrentAmount)
		if current > int64(g.TargetAmount) {
			log.Warn().Str("goal", name).Int64("current", current).Int64("target", int64(g.TargetAmount)).Msg("goal holds more than its target, capping")
			current = int64(g.TargetAmount)
		}

		completed := g.IsCompleted || g.Status == "achieved"
		active := !completed && g.Status != "paused"
		if g.IsActive != nil && !*g.IsActive {
			active = false
		}

		model := models.Goal{
			Name:          name,
			Icon:          g.Icon,
			TargetAmount:  int64(g.TargetAmount),
			CurrentAmount: max(0, current),
			IsActive:      active,
			IsCompleted:   completed,
			CompletedAt:   utc(g.CompletedAt),
		}
		if g.CreatedAt != nil {
			model.CreatedAt = g.CreatedAt.UTC()
		}

		resources.Goals = append(resources.Goals, importer.Goal{
			LegacyID: legacyID(g.ID, "goal", i),
			Model:    model,
		})
	}

	return nil
}

func parseInvestments(resources *importer.ParsedResources, investments []investment) error {
	for i, r := range investments {
		if r.Amount <= 0 {
			log.Warn().Str("id", r.ID).Int64("amount", int64(r.Amount)).Msg("skipping investment without a positive amount")
			continue
		}

		date, err := types.ParseDate(r.InvestedDate)
		if err != nil {
			return fmt.Errorf("%w: investment %d (%s) has no valid date: %w", ErrInvalidSnapshot, i, r.ID, err)
		}

		model := models.InvestmentRecord{
			Amount:       int64(r.Amount),
			InvestedDate: date,
			Source:       models.InvestmentFromImport,
		}
		if r.CreatedAt != nil {
			model.CreatedAt = r.CreatedAt.UTC()
		}

		resources.Investments = append(resources.Investments, importer.Investment{
			LegacyID: legacyID(r.ID, "investment", i),
			Model:    model,
		})
	}

	return nil
}

// legacyID falls back to the position for records the legacy store wrote
// without an ID.
func legacyID(id, kind string, idx int) string {
	if id != "" {
		return id
	}

	return fmt.Sprintf("%s-%d", kind, idx)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	u := t.UTC()
	return &u
}
