package ledger_test

import (
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
)

func (suite *TestSuiteStandard) TestInvestments() {
	scope := suite.createTestMember("Hana")

	first, err := suite.svc.FirstInvestmentDate(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Nil(first)

	days, err := suite.svc.InvestmentDurationDays(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Equal(0, days)

	suite.setDay(2025, 1, 10)
	suite.earn(scope, 100)
	suite.setDay(2025, 2, 10)
	suite.earn(scope, 40)

	suite.setDay(2025, 2, 25)
	_, err = suite.svc.SubmitAllocation(suite.ctx, scope, ledger.Split{Cash: 60, Investment: 40})
	suite.Require().Nil(err)

	suite.setDay(2025, 3, 25)
	_, err = suite.svc.SubmitAllocation(suite.ctx, scope, ledger.Split{Investment: 40})
	suite.Require().Nil(err)

	suite.setDay(2025, 4, 4)

	history, err := suite.svc.InvestmentHistory(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Require().Len(history, 2)
	suite.Assert().Equal("2025-03-25", history[0].InvestedDate.String(), "newest first")
	suite.Assert().NotNil(history[0].SourceID)

	balance, err := suite.svc.InvestmentBalance(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(80), balance)

	monthly, err := suite.svc.MonthlyInvestments(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Require().Len(monthly, 2)
	suite.Assert().Equal("2025-02", monthly[0].Month.String())
	suite.Assert().Equal(int64(40), monthly[0].Amount)

	first, err = suite.svc.FirstInvestmentDate(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Require().NotNil(first)
	suite.Assert().Equal("2025-02-25", first.String())

	days, err = suite.svc.InvestmentDurationDays(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Equal(38, days)
}
