package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/nsdayo12311231-cmyk/family-helper-app/internal/controllers/v1"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestFamilyCreateGet() {
	family := suite.createTestFamily("Tanaka")
	suite.Assert().NotEqual(uuid.Nil, family.ID)

	recorder := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s", family.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[models.Family]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Tanaka", response.Data.Name)
	suite.Assert().Nil(response.Error)
}

func (suite *TestSuiteStandard) TestFamilyCreateFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "name": 2`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, "http://example.com/v1/families", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestFamilyGetFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
		{"Does not exist", "2f9b0b07-2bd6-4c7a-8e70-5b6d7b0cbe5d", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMembers() {
	family := suite.createTestFamily("Tanaka")
	suite.createTestMember(family, "Yuki")
	hana := suite.createTestMember(family, "Hana")

	suite.Assert().Equal(models.RoleChild, hana.Role, "Role must default to child")
	suite.Assert().Equal(family.ID, hana.FamilyID)

	recorder := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s/members", family.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[[]models.Member]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Hana", response.Data[0].Name, "Members must be sorted by name")
	suite.Assert().Equal("Yuki", response.Data[1].Name, "Members must be sorted by name")

	// A new member starts with an empty ledger
	balance := suite.getBalance(hana)
	suite.Assert().Equal(int64(0), balance.Total)
	suite.Assert().Equal(int64(0), balance.Available)
	suite.Assert().Equal(int64(0), balance.GoalSavings)
}

func (suite *TestSuiteStandard) TestMembersEmpty() {
	family := suite.createTestFamily("Tanaka")

	recorder := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s/members", family.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"error":null,"data":[]}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestMemberCreateFails() {
	family := suite.createTestFamily("Tanaka")
	suite.createTestMember(family, "Hana")

	tests := []struct {
		name     string
		familyID string
		body     any
		status   int
	}{
		{"Duplicate name", family.ID.String(), v1.MemberEditable{Name: "Hana"}, http.StatusBadRequest},
		{"Invalid role", family.ID.String(), v1.MemberEditable{Name: "Kenji", Role: "grandparent"}, http.StatusBadRequest},
		{"Family does not exist", "2f9b0b07-2bd6-4c7a-8e70-5b6d7b0cbe5d", v1.MemberEditable{Name: "Kenji"}, http.StatusNotFound},
		{"Broken body", family.ID.String(), `{"name": }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, fmt.Sprintf("http://example.com/v1/families/%s/members", tt.familyID), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetMember() {
	m := suite.createTestChild("Hana")

	recorder := suite.request(http.MethodGet, memberURL(m, ""), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[models.Member]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(m.ID, response.Data.ID)
	suite.Assert().Equal("Hana", response.Data.Name)
}

func (suite *TestSuiteStandard) TestTasks() {
	family := suite.createTestFamily("Tanaka")
	hana := suite.createTestMember(family, "Hana")

	suite.createTestTask(family, v1.TaskEditable{Name: "Water the plants", Reward: 30})
	assigned := suite.createTestTask(family, v1.TaskEditable{Name: "Feed the cat", Reward: 50, DailyLimit: 2, MemberID: &hana.ID})

	suite.Assert().Equal(2, assigned.DailyLimit)
	suite.Require().NotNil(assigned.MemberID)
	suite.Assert().Equal(hana.ID, *assigned.MemberID)

	recorder := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s/tasks", family.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[[]models.Task]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Feed the cat", response.Data[0].Name)
	suite.Assert().Equal(1, response.Data[1].DailyLimit, "Daily limit must default to 1")
}

func (suite *TestSuiteStandard) TestTaskCreateFails() {
	family := suite.createTestFamily("Tanaka")
	other := suite.createTestChild("Kenji")
	suite.createTestTask(family, v1.TaskEditable{Name: "Feed the cat"})

	tests := []struct {
		name   string
		body   v1.TaskEditable
		status int
		err    string
	}{
		{"Duplicate name", v1.TaskEditable{Name: "Feed the cat", Reward: 10}, http.StatusBadRequest, models.ErrTaskNameNotUnique.Error()},
		{"Negative reward", v1.TaskEditable{Name: "Dishes", Reward: -10}, http.StatusBadRequest, ""},
		{"Member of another family", v1.TaskEditable{Name: "Dishes", Reward: 10, MemberID: &other.ID}, http.StatusBadRequest, "the member does not belong to this family"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, fmt.Sprintf("http://example.com/v1/families/%s/tasks", family.ID), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.err != "" {
				var response struct {
					Error string `json:"error"`
				}
				test.DecodeResponse(t, &recorder, &response)
				assert.Equal(t, tt.err, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestFamilyDBError() {
	family := suite.createTestFamily("Tanaka")
	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "http://example.com/v1/families", v1.FamilyEditable{Name: "Sato"}},
		{http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s", family.ID), ""},
		{http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s/members", family.ID), ""},
		{http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s/tasks", family.ID), ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := suite.request(tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}
