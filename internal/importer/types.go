package importer

import (
	"errors"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
)

var ErrLedgerNotEmpty = errors.New("the member already has ledger data, snapshots can only be imported into an empty ledger")

// ParsedResources is everything read from a legacy snapshot of one member.
//
// Records keep their legacy IDs in LegacyID until the creator derives
// stable IDs for them.
type ParsedResources struct {
	Balance           Balance
	LegacyPending     int64                 // The total pending counter
	MonthlyPending    map[types.Month]int64 // Pending totals per month
	Earnings          []Earning
	Goals             []Goal
	GoalSavings       int64
	InvestmentBalance int64
	Investments       []Investment
}

// Balance holds the legacy money buckets. Total is kept as is.
type Balance struct {
	Available int64
	Allocated int64
	Spent     int64
	Total     int64
}

type Earning struct {
	LegacyID string
	Model    models.EarningRecord
}

type Goal struct {
	LegacyID string
	Model    models.Goal
}

type Investment struct {
	LegacyID string
	Model    models.InvestmentRecord
}

// Result summarizes what an import created.
type Result struct {
	Earnings          int   `json:"earnings" example:"42"`         // Earning records imported from the history
	SyntheticEarnings int   `json:"syntheticEarnings" example:"2"` // Earning records created to carry pending money without history
	Goals             int   `json:"goals" example:"1"`             // Goals imported
	Investments       int   `json:"investments" example:"3"`       // Investment records imported, including a synthetic one for an unexplained balance
	Total             int64 `json:"total" example:"1200"`          // Lifetime total carried over
	Pending           int64 `json:"pending" example:"300"`         // Pending money after the import
}
