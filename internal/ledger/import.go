package ledger

import (
	"context"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/importer"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/importer/parser/localstorage"
	"gorm.io/gorm"
)

// ImportSnapshot imports the legacy key-value snapshot of one member into the
// empty ledger of the member in scope. legacyFamilyID and legacyMemberID are
// the IDs used in the snapshot keys and default to the IDs of scope.
func (s *Service) ImportSnapshot(ctx context.Context, scope Scope, legacyFamilyID, legacyMemberID string, snapshot map[string]string) (importer.Result, error) {
	if legacyFamilyID == "" {
		legacyFamilyID = scope.FamilyID.String()
	}

	if legacyMemberID == "" {
		legacyMemberID = scope.MemberID.String()
	}

	resources, err := localstorage.Parse(legacyFamilyID, legacyMemberID, snapshot)
	if err != nil {
		return importer.Result{}, err
	}

	var result importer.Result
	err = s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		var err error
		result, err = importer.Create(tx, scope, resources, s.Today())
		if err != nil {
			return nil, err
		}

		return []Event{
			{Kind: EventEarningRecorded, Amount: result.Pending},
			{Kind: EventGoalUpdated},
			{Kind: EventInvestmentUpdated},
			{Kind: EventBalanceUpdated},
		}, nil
	})

	return result, err
}
