package ledger_test

import (
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
)

func (suite *TestSuiteStandard) TestNotifierDeliversAfterCommit() {
	scope := suite.createTestMember("Hana")

	var events []ledger.Event
	unsubscribe := suite.svc.Notifier().Subscribe(scope, func(e ledger.Event) {
		// Subscribers may read the ledger, the change is visible already
		b, err := suite.svc.Balance(suite.ctx, scope)
		suite.Require().Nil(err)
		suite.Assert().Equal(int64(70), b.Available)

		events = append(events, e)
	})

	_, err := suite.svc.AddMoney(suite.ctx, scope, 70)
	suite.Require().Nil(err)

	suite.Require().Len(events, 1)
	suite.Assert().Equal(ledger.EventBalanceUpdated, events[0].Kind)
	suite.Assert().Equal(scope.MemberID, events[0].MemberID)
	suite.Assert().Equal(scope.FamilyID, events[0].FamilyID)
	suite.Assert().True(suite.now.Equal(events[0].At))

	unsubscribe()

	_, err = suite.svc.SpendMoney(suite.ctx, scope, 10)
	suite.Require().Nil(err)
	suite.Assert().Len(events, 1, "no events after unsubscribing")
}

func (suite *TestSuiteStandard) TestNotifierNoEventOnFailure() {
	scope := suite.createTestMember("Sora")

	var count int
	unsubscribe := suite.svc.Notifier().SubscribeAll(func(ledger.Event) { count++ })
	defer unsubscribe()

	_, err := suite.svc.SpendMoney(suite.ctx, scope, 10)
	suite.Assert().ErrorIs(err, ledger.ErrInsufficientFunds)
	suite.Assert().Equal(0, count)
}

func (suite *TestSuiteStandard) TestNotifierScopes() {
	hana := suite.createTestMember("Hana")
	sora := suite.createTestMember("Sora")

	var hanaEvents, allEvents []ledger.Event
	defer suite.svc.Notifier().Subscribe(hana, func(e ledger.Event) { hanaEvents = append(hanaEvents, e) })()
	defer suite.svc.Notifier().SubscribeAll(func(e ledger.Event) { allEvents = append(allEvents, e) })()

	_, err := suite.svc.RecordEarning(suite.ctx, sora, 30, models.SourceBonus, nil)
	suite.Require().Nil(err)

	task := suite.createTestTask(hana, models.Task{Reward: 20})
	_, err = suite.svc.CompleteTask(suite.ctx, hana, task.ID)
	suite.Require().Nil(err)

	suite.Require().Len(hanaEvents, 1)
	suite.Assert().Equal(ledger.EventTaskCompleted, hanaEvents[0].Kind)
	suite.Assert().Equal(int64(20), hanaEvents[0].Amount)

	suite.Require().Len(allEvents, 2)
	suite.Assert().Equal(ledger.EventEarningRecorded, allEvents[0].Kind)
	suite.Assert().Equal(sora.MemberID, allEvents[0].MemberID)
}
