package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/nsdayo12311231-cmyk/family-helper-app/internal/controllers/v1"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/test"
)

func (suite *TestSuiteStandard) getInvestments(m models.Member) v1.Investments {
	recorder := suite.request(http.MethodGet, memberURL(m, "/investments"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Investments]
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestInvestments() {
	m := suite.createTestChild("Hana")
	suite.earnInJuneAndJuly(m)

	recorder := suite.request(http.MethodPost, memberURL(m, "/allocation"), ledger.Split{Cash: 60, Investment: 20})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var allocation v1.Response[models.Allocation]
	test.DecodeResponse(suite.T(), &recorder, &allocation)

	suite.setDay(2025, time.August, 13)
	investments := suite.getInvestments(m)

	suite.Assert().Equal(int64(20), investments.Balance)
	suite.Require().NotNil(investments.FirstDate)
	suite.Assert().Equal("2025-08-03", investments.FirstDate.String())
	suite.Assert().Equal(10, investments.DurationDays)

	suite.Require().Len(investments.Monthly, 1)
	suite.Assert().Equal("2025-08", investments.Monthly[0].Month.String())
	suite.Assert().Equal(int64(20), investments.Monthly[0].Amount)

	suite.Require().Len(investments.History, 1)
	record := investments.History[0]
	suite.Assert().Equal(models.InvestmentFromAllocation, record.Source)
	suite.Require().NotNil(record.SourceID)
	suite.Assert().Equal(allocation.Data.ID, *record.SourceID)

	suite.Assert().Equal(int64(20), suite.getBalance(m).InvestmentBalance)
}

func (suite *TestSuiteStandard) TestInvestmentsEmpty() {
	m := suite.createTestChild("Hana")

	recorder := suite.request(http.MethodGet, memberURL(m, "/investments"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"error":null,"data":{"balance":0,"firstDate":null,"durationDays":0,"monthly":[],"history":[]}}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestInvestmentsDBError() {
	m := suite.createTestChild("Hana")
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, memberURL(m, "/investments"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
