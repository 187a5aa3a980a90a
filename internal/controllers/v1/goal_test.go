package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/nsdayo12311231-cmyk/family-helper-app/internal/controllers/v1"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createGoal(m models.Member, in ledger.GoalInput) models.Goal {
	recorder := suite.request(http.MethodPost, memberURL(m, "/goals"), in)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.Response[v1.Goal]
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data.Goal
}

func (suite *TestSuiteStandard) getGoals(m models.Member, query string) v1.Goals {
	recorder := suite.request(http.MethodGet, memberURL(m, "/goals"+query), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Goals]
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}

func goalURL(m models.Member, g models.Goal, path string) string {
	return memberURL(m, fmt.Sprintf("/goals/%s%s", g.ID, path))
}

// moveGoalMoney deposits to or withdraws from a goal and returns the response.
func (suite *TestSuiteStandard) moveGoalMoney(m models.Member, g models.Goal, operation string, amount int64) v1.Goal {
	recorder := suite.request(http.MethodPost, goalURL(m, g, "/"+operation), v1.AmountEditable{Amount: amount})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Goal]
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestCreateGoal() {
	m := suite.createTestChild("Hana")

	goal := suite.createGoal(m, ledger.GoalInput{Name: "  New bicycle ", Icon: "🚲", TargetAmount: 5000})
	suite.Assert().Equal("New bicycle", goal.Name)
	suite.Assert().Equal("🚲", goal.Icon)
	suite.Assert().Equal(int64(5000), goal.TargetAmount)
	suite.Assert().Equal(int64(0), goal.CurrentAmount)
	suite.Assert().True(goal.IsActive)
	suite.Assert().False(goal.IsCompleted)
	suite.Assert().Nil(goal.CompletedAt)
}

func (suite *TestSuiteStandard) TestCreateGoalFails() {
	m := suite.createTestChild("Hana")

	tests := []struct {
		name string
		body any
	}{
		{"Zero target", ledger.GoalInput{Name: "Book", TargetAmount: 0}},
		{"Negative target", ledger.GoalInput{Name: "Book", TargetAmount: -100}},
		{"Broken body", `{"targetAmount": "a lot"}`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, memberURL(m, "/goals"), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().Len(suite.getGoals(m, "").Goals, 0)
}

func (suite *TestSuiteStandard) TestGetGoals() {
	m := suite.createTestChild("Hana")
	suite.addMoney(m, 100)

	book := suite.createGoal(m, ledger.GoalInput{Name: "Book", TargetAmount: 20})
	suite.createGoal(m, ledger.GoalInput{Name: "Bicycle", TargetAmount: 5000})

	suite.moveGoalMoney(m, book, "deposit", 20)
	recorder := suite.request(http.MethodPost, goalURL(m, book, "/complete"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	all := suite.getGoals(m, "")
	suite.Require().Len(all.Goals, 2)
	suite.Assert().Equal("Book", all.Goals[0].Name, "goals must be sorted oldest first")
	suite.Assert().Equal(int64(0), all.GoalSavings)

	active := suite.getGoals(m, "?active=true")
	suite.Require().Len(active.Goals, 1)
	suite.Assert().Equal("Bicycle", active.Goals[0].Name)
}

func (suite *TestSuiteStandard) TestGetGoalsEmpty() {
	m := suite.createTestChild("Hana")

	recorder := suite.request(http.MethodGet, memberURL(m, "/goals"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"error":null,"data":{"goals":[],"goalSavings":0}}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestGetGoalsInvalidQuery() {
	m := suite.createTestChild("Hana")

	recorder := suite.request(http.MethodGet, memberURL(m, "/goals?active=perhaps"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDepositAndWithdraw() {
	m := suite.createTestChild("Hana")
	suite.addMoney(m, 200)
	goal := suite.createGoal(m, ledger.GoalInput{Name: "Game", TargetAmount: 100})

	deposited := suite.moveGoalMoney(m, goal, "deposit", 40)
	suite.Assert().Equal(int64(40), deposited.CurrentAmount)
	suite.Assert().True(decimal.NewFromInt(40).Equal(deposited.Progress), "progress is %s", deposited.Progress)

	// Only the missing amount is accepted
	capped := suite.moveGoalMoney(m, goal, "deposit", 150)
	suite.Assert().Equal(int64(100), capped.CurrentAmount)
	suite.Assert().True(decimal.NewFromInt(100).Equal(capped.Progress))

	balance := suite.getBalance(m)
	suite.Assert().Equal(int64(100), balance.Available)
	suite.Assert().Equal(int64(100), balance.Allocated)

	withdrawn := suite.moveGoalMoney(m, goal, "withdraw", 30)
	suite.Assert().Equal(int64(70), withdrawn.CurrentAmount)

	balance = suite.getBalance(m)
	suite.Assert().Equal(int64(130), balance.Available)
	suite.Assert().Equal(int64(70), balance.Allocated)
	suite.Assert().Equal(int64(200), balance.Total)
}

func (suite *TestSuiteStandard) TestCompleteGoal() {
	m := suite.createTestChild("Hana")
	suite.addMoney(m, 100)
	goal := suite.createGoal(m, ledger.GoalInput{Name: "Book", TargetAmount: 60})

	// An unfinished goal cannot be completed
	recorder := suite.request(http.MethodPost, goalURL(m, goal, "/complete"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(recorder.Body.String(), ledger.ErrGoalNotCompletable.Error())

	suite.moveGoalMoney(m, goal, "deposit", 60)

	recorder = suite.request(http.MethodPost, goalURL(m, goal, "/complete"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Goal]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.IsCompleted)
	suite.Assert().False(response.Data.IsActive)
	suite.Require().NotNil(response.Data.CompletedAt)
	suite.Assert().True(suite.now.Equal(*response.Data.CompletedAt))

	balance := suite.getBalance(m)
	suite.Assert().Equal(int64(40), balance.Available)
	suite.Assert().Equal(int64(0), balance.Allocated)
	suite.Assert().Equal(int64(60), balance.Spent, "the goal money is spent")

	// A completed goal does not accept further operations
	tests := []struct {
		path string
		body any
	}{
		{"/complete", ""},
		{"/deposit", v1.AmountEditable{Amount: 10}},
		{"/withdraw", v1.AmountEditable{Amount: 10}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, goalURL(m, goal, tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, recorder.Body.String(), ledger.ErrGoalInactive.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	m := suite.createTestChild("Hana")
	suite.addMoney(m, 100)
	goal := suite.createGoal(m, ledger.GoalInput{Name: "Game", TargetAmount: 80})
	suite.moveGoalMoney(m, goal, "deposit", 50)

	recorder := suite.request(http.MethodDelete, goalURL(m, goal, ""), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	balance := suite.getBalance(m)
	suite.Assert().Equal(int64(100), balance.Available, "the money of the goal goes back to available")
	suite.Assert().Equal(int64(0), balance.Allocated)
	suite.Assert().Len(suite.getGoals(m, "").Goals, 0)

	recorder = suite.request(http.MethodDelete, goalURL(m, goal, ""), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalOperationsFail() {
	m := suite.createTestChild("Hana")
	suite.addMoney(m, 50)
	goal := suite.createGoal(m, ledger.GoalInput{Name: "Game", TargetAmount: 80})
	full := suite.createGoal(m, ledger.GoalInput{Name: "Sticker", TargetAmount: 10})
	suite.moveGoalMoney(m, full, "deposit", 10)

	sibling := suite.createTestChild("Yuki")

	tests := []struct {
		name   string
		url    string
		body   any
		status int
		err    error
	}{
		{"Deposit more than available", goalURL(m, goal, "/deposit"), v1.AmountEditable{Amount: 60}, http.StatusBadRequest, ledger.ErrInsufficientFunds},
		{"Deposit to full goal", goalURL(m, full, "/deposit"), v1.AmountEditable{Amount: 5}, http.StatusBadRequest, ledger.ErrGoalFull},
		{"Deposit zero", goalURL(m, goal, "/deposit"), v1.AmountEditable{Amount: 0}, http.StatusBadRequest, ledger.ErrInvalidAmount},
		{"Withdraw more than saved", goalURL(m, goal, "/withdraw"), v1.AmountEditable{Amount: 1}, http.StatusBadRequest, ledger.ErrInsufficientFunds},
		{"Goal of another member", goalURL(sibling, goal, "/deposit"), v1.AmountEditable{Amount: 10}, http.StatusNotFound, nil},
		{"Goal does not exist", memberURL(m, "/goals/2f9b0b07-2bd6-4c7a-8e70-5b6d7b0cbe5d/deposit"), v1.AmountEditable{Amount: 10}, http.StatusNotFound, nil},
		{"Not a UUID", memberURL(m, "/goals/bicycle/withdraw"), v1.AmountEditable{Amount: 10}, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, tt.url, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.err != nil {
				assert.Contains(t, recorder.Body.String(), tt.err.Error())
			}
		})
	}

	balance := suite.getBalance(m)
	suite.Assert().Equal(int64(40), balance.Available)
	suite.Assert().Equal(int64(10), balance.Allocated)
}

func (suite *TestSuiteStandard) TestGoalDBError() {
	m := suite.createTestChild("Hana")
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, memberURL(m, "/goals"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
