package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/nsdayo12311231-cmyk/family-helper-app/internal/controllers/v1"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/test"
)

func (suite *TestSuiteStandard) recordEarning(m models.Member, amount int64, source models.EarningSource) models.EarningRecord {
	recorder := suite.request(http.MethodPost, memberURL(m, "/earnings"), v1.EarningEditable{Amount: amount, Source: source})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.Response[models.EarningRecord]
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestRecordEarning() {
	m := suite.createTestChild("Hana")

	suite.setDay(2025, time.July, 31)
	suite.recordEarning(m, 30, models.SourceManual)

	suite.setDay(2025, time.August, 3)
	record := suite.recordEarning(m, 100, models.SourceBonus)

	suite.Assert().Equal(int64(100), record.Amount)
	suite.Assert().Equal(int64(100), record.PendingAmount)
	suite.Assert().Equal(models.EarningPending, record.Status)
	suite.Assert().Equal("2025-08-03", record.EarnedDate.String())
	suite.Assert().Equal("2025-08", record.EarnedMonth.String())

	earnings := suite.getEarnings(m)
	suite.Assert().Equal(int64(100), earnings.Today, "only today's earnings count")
	suite.Require().Len(earnings.History, 2)
	suite.Assert().Equal(record.ID, earnings.History[0].ID, "history must be newest first")
}

func (suite *TestSuiteStandard) TestGetEarningsEmpty() {
	m := suite.createTestChild("Hana")

	recorder := suite.request(http.MethodGet, memberURL(m, "/earnings"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"error":null,"data":{"today":0,"history":[]}}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestRecordEarningFails() {
	m := suite.createTestChild("Hana")

	tests := []struct {
		name string
		body any
	}{
		{"Task completion source", v1.EarningEditable{Amount: 50, Source: models.SourceTaskCompletion}},
		{"Unknown source", v1.EarningEditable{Amount: 50, Source: "allowance"}},
		{"Zero amount", v1.EarningEditable{Amount: 0, Source: models.SourceBonus}},
		{"Negative amount", v1.EarningEditable{Amount: -5, Source: models.SourceBonus}},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, memberURL(m, "/earnings"), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().Len(suite.getEarnings(m).History, 0, "failed requests must not create earnings")
}

func (suite *TestSuiteStandard) TestEarningsMemberNotFound() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/members/2f9b0b07-2bd6-4c7a-8e70-5b6d7b0cbe5d/earnings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
