package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/nsdayo12311231-cmyk/family-helper-app/internal/controllers/v1"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) getAllocationStatus(m models.Member) ledger.AllocationStatus {
	recorder := suite.request(http.MethodGet, memberURL(m, "/allocation"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[ledger.AllocationStatus]
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}

// earnInJuneAndJuly records 80 in June and 50 in July and moves the clock
// to 2025-08-03. At that day, only June is eligible.
func (suite *TestSuiteStandard) earnInJuneAndJuly(m models.Member) {
	suite.setDay(2025, time.June, 10)
	suite.recordEarning(m, 50, models.SourceBonus)
	suite.recordEarning(m, 30, models.SourceManual)

	suite.setDay(2025, time.July, 5)
	suite.recordEarning(m, 50, models.SourceBonus)

	suite.setDay(2025, time.August, 3)
}

func (suite *TestSuiteStandard) TestAllocationStatus() {
	m := suite.createTestChild("Hana")
	suite.earnInJuneAndJuly(m)

	status := suite.getAllocationStatus(m)
	suite.Assert().Equal("2025-08-03", status.Today.String())
	suite.Assert().Equal(int64(80), status.AllocatableAmount)
	suite.Assert().True(status.CanAllocateNow)
	suite.Require().NotNil(status.NextAllocationDate)
	suite.Assert().Equal("2025-08-25", status.NextAllocationDate.String())
	suite.Assert().Equal(int64(130), status.LegacyPendingTotal)

	suite.Require().Len(status.EligibleMonths, 1)
	suite.Assert().Equal("2025-06", status.EligibleMonths[0].String())

	suite.Require().Len(status.PendingByMonth, 2)
	suite.Assert().Equal("2025-06", status.PendingByMonth[0].Month.String())
	suite.Assert().Equal(int64(80), status.PendingByMonth[0].Amount)
	suite.Assert().Equal("2025-07", status.PendingByMonth[1].Month.String())
	suite.Assert().Equal(int64(50), status.PendingByMonth[1].Amount)
}

// TestAllocationStatusAfterCutoff verifies that the previous month opens on the cutoff day.
func (suite *TestSuiteStandard) TestAllocationStatusAfterCutoff() {
	m := suite.createTestChild("Hana")
	suite.earnInJuneAndJuly(m)

	suite.setDay(2025, time.August, 25)
	status := suite.getAllocationStatus(m)
	suite.Assert().Equal(int64(130), status.AllocatableAmount)
	suite.Assert().Nil(status.NextAllocationDate)
	suite.Assert().Len(status.EligibleMonths, 2)
}

func (suite *TestSuiteStandard) TestAllocationStatusNothingPending() {
	m := suite.createTestChild("Hana")

	status := suite.getAllocationStatus(m)
	suite.Assert().Equal(int64(0), status.AllocatableAmount)
	suite.Assert().False(status.CanAllocateNow)
	suite.Assert().Equal(int64(0), status.LegacyPendingTotal)
}

func (suite *TestSuiteStandard) TestSubmitAllocation() {
	m := suite.createTestChild("Hana")
	suite.earnInJuneAndJuly(m)

	recorder := suite.request(http.MethodPost, memberURL(m, "/allocation"), ledger.Split{Goal: 30, Cash: 40, Investment: 10})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.Response[models.Allocation]
	test.DecodeResponse(suite.T(), &recorder, &response)
	allocation := response.Data

	suite.Assert().Equal(int64(80), allocation.EligibleAmount)
	suite.Assert().Equal(int64(30), allocation.GoalApplied)
	suite.Assert().Equal(int64(0), allocation.GoalForfeited)
	suite.Assert().Nil(allocation.GoalID, "without an active goal, goal money goes to the goal savings")
	suite.Assert().Equal("2025-06", allocation.Months)

	balance := suite.getBalance(m)
	suite.Assert().Equal(int64(40), balance.Available)
	suite.Assert().Equal(int64(30), balance.Allocated)
	suite.Assert().Equal(int64(0), balance.Spent)
	suite.Assert().Equal(int64(80), balance.Total)
	suite.Assert().Equal(int64(30), balance.GoalSavings)
	suite.Assert().Equal(int64(10), balance.InvestmentBalance)

	// June is consumed, July is still pending
	status := suite.getAllocationStatus(m)
	suite.Assert().Equal(int64(0), status.AllocatableAmount)
	suite.Assert().Equal(int64(50), status.LegacyPendingTotal)

	recorder = suite.request(http.MethodGet, memberURL(m, "/allocations"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var history v1.Response[[]models.Allocation]
	test.DecodeResponse(suite.T(), &recorder, &history)
	suite.Require().Len(history.Data, 1)
	suite.Assert().Equal(allocation.ID, history.Data[0].ID)
}

func (suite *TestSuiteStandard) TestSubmitAllocationToGoal() {
	m := suite.createTestChild("Hana")
	goal := suite.createGoal(m, ledger.GoalInput{Name: "Book", TargetAmount: 20})
	suite.earnInJuneAndJuly(m)

	recorder := suite.request(http.MethodPost, memberURL(m, "/allocation"), ledger.Split{Goal: 30, Cash: 50})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.Response[models.Allocation]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data.GoalID)
	suite.Assert().Equal(goal.ID, *response.Data.GoalID)
	suite.Assert().Equal(int64(20), response.Data.GoalApplied, "the goal is capped at its target")
	suite.Assert().Equal(int64(10), response.Data.GoalForfeited)

	balance := suite.getBalance(m)
	suite.Assert().Equal(int64(50), balance.Available)
	suite.Assert().Equal(int64(20), balance.Allocated)
	suite.Assert().Equal(int64(80), balance.Total)
}

func (suite *TestSuiteStandard) TestSubmitAllocationFails() {
	m := suite.createTestChild("Hana")
	suite.earnInJuneAndJuly(m)

	tests := []struct {
		name  string
		split any
		err   error
	}{
		{"Sum too small", ledger.Split{Cash: 70}, ledger.ErrSplitMismatch},
		{"Sum too large", ledger.Split{Cash: 130}, ledger.ErrSplitMismatch},
		{"Negative part", ledger.Split{Goal: -10, Cash: 90}, ledger.ErrInvalidAmount},
		{"Broken body", `{"cash": "eighty"}`, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, memberURL(m, "/allocation"), tt.split)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			if tt.err != nil {
				var response struct {
					Error string `json:"error"`
				}
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, response.Error, tt.err.Error())
			}
		})
	}

	// Nothing was changed by the failed requests
	status := suite.getAllocationStatus(m)
	suite.Assert().Equal(int64(80), status.AllocatableAmount)
	suite.Assert().Equal(int64(0), suite.getBalance(m).Total)
}

func (suite *TestSuiteStandard) TestSubmitAllocationNothingEligible() {
	m := suite.createTestChild("Hana")
	suite.recordEarning(m, 50, models.SourceBonus)

	recorder := suite.request(http.MethodPost, memberURL(m, "/allocation"), ledger.Split{Cash: 50})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(recorder.Body.String(), ledger.ErrNothingToAllocate.Error())
}

func (suite *TestSuiteStandard) TestAllocationsEmpty() {
	m := suite.createTestChild("Hana")

	recorder := suite.request(http.MethodGet, memberURL(m, "/allocations"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"error":null,"data":[]}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestAllocationDBError() {
	m := suite.createTestChild("Hana")
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, memberURL(m, "/allocation"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
