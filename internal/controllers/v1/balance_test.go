package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/nsdayo12311231-cmyk/family-helper-app/internal/controllers/v1"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBalanceOperations() {
	m := suite.createTestChild("Hana")

	tests := []struct {
		operation string
		amount    int64
		available int64
		allocated int64
		spent     int64
		total     int64
	}{
		{"add", 200, 200, 0, 0, 200},
		{"spend", 50, 150, 0, 50, 200},
		{"allocate", 100, 50, 100, 50, 200},
		{"deallocate", 30, 80, 70, 50, 200},
		{"move-to-spent", 20, 80, 50, 70, 200},
	}

	for _, tt := range tests {
		suite.T().Run(tt.operation, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, memberURL(m, "/balance/"+tt.operation), v1.AmountEditable{Amount: tt.amount})
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[models.Balance]
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.available, response.Data.Available, "available")
			assert.Equal(t, tt.allocated, response.Data.Allocated, "allocated")
			assert.Equal(t, tt.spent, response.Data.Spent, "spent")
			assert.Equal(t, tt.total, response.Data.Total, "total")
		})
	}

	summary := suite.getBalance(m)
	suite.Assert().True(decimal.NewFromFloat(65).Equal(summary.SavingsRate), "savings rate is %s", summary.SavingsRate)
	suite.Assert().True(decimal.NewFromFloat(35).Equal(summary.SpendingRate), "spending rate is %s", summary.SpendingRate)
}

func (suite *TestSuiteStandard) TestBalanceRatesWithoutMoney() {
	summary := suite.getBalance(suite.createTestChild("Hana"))

	suite.Assert().True(summary.SavingsRate.IsZero())
	suite.Assert().True(summary.SpendingRate.IsZero())
}

func (suite *TestSuiteStandard) TestBalanceOperationsFail() {
	m := suite.createTestChild("Hana")
	suite.addMoney(m, 100)

	tests := []struct {
		name      string
		operation string
		body      any
		err       error
	}{
		{"Spend more than available", "spend", v1.AmountEditable{Amount: 101}, models.ErrInsufficientFunds},
		{"Allocate more than available", "allocate", v1.AmountEditable{Amount: 150}, models.ErrInsufficientFunds},
		{"Deallocate with nothing allocated", "deallocate", v1.AmountEditable{Amount: 1}, models.ErrInsufficientFunds},
		{"Move with nothing allocated", "move-to-spent", v1.AmountEditable{Amount: 1}, models.ErrInsufficientFunds},
		{"Zero amount", "add", v1.AmountEditable{Amount: 0}, models.ErrInvalidAmount},
		{"Negative amount", "spend", v1.AmountEditable{Amount: -10}, models.ErrInvalidAmount},
		{"Empty body", "add", "", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, memberURL(m, "/balance/"+tt.operation), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			if tt.err != nil {
				assert.Contains(t, recorder.Body.String(), tt.err.Error())
			}
		})
	}

	balance := suite.getBalance(m)
	suite.Assert().Equal(int64(100), balance.Available, "failed operations must not change the balance")
	suite.Assert().Equal(int64(100), balance.Total)
}

func (suite *TestSuiteStandard) TestBalanceUnknownOperation() {
	m := suite.createTestChild("Hana")

	recorder := suite.request(http.MethodPost, memberURL(m, "/balance/steal"), v1.AmountEditable{Amount: 10})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestResetBalance() {
	m := suite.createTestChild("Hana")
	suite.addMoney(m, 100)

	recorder := suite.request(http.MethodPost, memberURL(m, "/balance/reset"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[models.Balance]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(int64(0), response.Data.Available)
	suite.Assert().Equal(int64(0), response.Data.Total)
}

func (suite *TestSuiteStandard) TestBalanceDBError() {
	m := suite.createTestChild("Hana")
	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/balance", ""},
		{http.MethodPost, "/balance/add", v1.AmountEditable{Amount: 10}},
		{http.MethodPost, "/balance/reset", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := suite.request(tt.method, memberURL(m, tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}
