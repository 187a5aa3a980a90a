package ledger_test

import (
	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
)

func (suite *TestSuiteStandard) TestGoalLifecycle() {
	scope := suite.createTestMember("Hana")

	_, err := suite.svc.AddMoney(suite.ctx, scope, 100)
	suite.Require().Nil(err)

	goal, err := suite.svc.AddGoal(suite.ctx, scope, ledger.GoalInput{Name: "Book", Icon: "📚", TargetAmount: 60})
	suite.Require().Nil(err)
	suite.Assert().True(goal.IsActive)

	goal, err = suite.svc.AllocateToGoal(suite.ctx, scope, goal.ID, 80)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(60), goal.CurrentAmount, "only the missing amount is moved")

	balance, err := suite.svc.Balance(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(40), balance.Available)
	suite.Assert().Equal(int64(60), balance.Allocated)

	_, err = suite.svc.AllocateToGoal(suite.ctx, scope, goal.ID, 1)
	suite.Assert().ErrorIs(err, ledger.ErrGoalFull)

	goal, err = suite.svc.CompleteGoal(suite.ctx, scope, goal.ID)
	suite.Require().Nil(err)
	suite.Assert().True(goal.IsCompleted)
	suite.Assert().False(goal.IsActive)
	suite.Assert().NotNil(goal.CompletedAt)

	balance, err = suite.svc.Balance(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), balance.Allocated)
	suite.Assert().Equal(int64(60), balance.Spent)
	suite.Assert().Equal(int64(100), balance.Total)

	active, err := suite.svc.ActiveGoals(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Len(active, 0)

	_, err = suite.svc.CompleteGoal(suite.ctx, scope, goal.ID)
	suite.Assert().ErrorIs(err, ledger.ErrGoalInactive)
}

func (suite *TestSuiteStandard) TestCompleteGoalBeforeTarget() {
	scope := suite.createTestMember("Sora")

	goal, err := suite.svc.AddGoal(suite.ctx, scope, ledger.GoalInput{Name: "Game", TargetAmount: 60})
	suite.Require().Nil(err)

	_, err = suite.svc.CompleteGoal(suite.ctx, scope, goal.ID)
	suite.Assert().ErrorIs(err, ledger.ErrGoalNotCompletable)
}

func (suite *TestSuiteStandard) TestDeleteGoalReturnsMoney() {
	scope := suite.createTestMember("Ren")

	_, err := suite.svc.AddMoney(suite.ctx, scope, 50)
	suite.Require().Nil(err)

	goal, err := suite.svc.AddGoal(suite.ctx, scope, ledger.GoalInput{Name: "Lego", TargetAmount: 200})
	suite.Require().Nil(err)

	_, err = suite.svc.AllocateToGoal(suite.ctx, scope, goal.ID, 30)
	suite.Require().Nil(err)

	suite.Require().Nil(suite.svc.DeleteGoal(suite.ctx, scope, goal.ID))

	balance, err := suite.svc.Balance(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(50), balance.Available)
	suite.Assert().Equal(int64(0), balance.Allocated)

	goals, err := suite.svc.Goals(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Len(goals, 0)

	err = suite.svc.DeleteGoal(suite.ctx, scope, goal.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestWithdrawFromGoal() {
	scope := suite.createTestMember("Mio")

	_, err := suite.svc.AddMoney(suite.ctx, scope, 50)
	suite.Require().Nil(err)

	goal, err := suite.svc.AddGoal(suite.ctx, scope, ledger.GoalInput{Name: "Shoes", TargetAmount: 100})
	suite.Require().Nil(err)

	_, err = suite.svc.AllocateToGoal(suite.ctx, scope, goal.ID, 40)
	suite.Require().Nil(err)

	_, err = suite.svc.WithdrawFromGoal(suite.ctx, scope, goal.ID, 41)
	suite.Assert().ErrorIs(err, ledger.ErrInsufficientFunds)

	goal, err = suite.svc.WithdrawFromGoal(suite.ctx, scope, goal.ID, 15)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(25), goal.CurrentAmount)

	balance, err := suite.svc.Balance(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(25), balance.Available)
	suite.Assert().Equal(int64(25), balance.Allocated)
}

func (suite *TestSuiteStandard) TestAllocateToGoalInsufficientAvailable() {
	scope := suite.createTestMember("Kai")

	goal, err := suite.svc.AddGoal(suite.ctx, scope, ledger.GoalInput{Name: "Kite", TargetAmount: 100})
	suite.Require().Nil(err)

	_, err = suite.svc.AllocateToGoal(suite.ctx, scope, goal.ID, 10)
	suite.Assert().ErrorIs(err, ledger.ErrInsufficientFunds)

	goals, err := suite.svc.Goals(suite.ctx, scope)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), goals[0].CurrentAmount)
}

func (suite *TestSuiteStandard) TestGoalValidation() {
	scope := suite.createTestMember("Yui")

	_, err := suite.svc.AddGoal(suite.ctx, scope, ledger.GoalInput{Name: "Nothing"})
	suite.Assert().ErrorIs(err, ledger.ErrInvalidAmount)

	_, err = suite.svc.AllocateToGoal(suite.ctx, scope, uuid.New(), 10)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	other := suite.createTestMember("Other")
	goal, err := suite.svc.AddGoal(suite.ctx, other, ledger.GoalInput{Name: "Not yours", TargetAmount: 10})
	suite.Require().Nil(err)

	err = suite.svc.DeleteGoal(suite.ctx, scope, goal.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "goals of other members are not reachable")
}
