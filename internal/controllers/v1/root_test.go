package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/nsdayo12311231-cmyk/family-helper-app/internal/controllers/v1"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/v1/families", response.Links.Families)
	suite.Assert().Equal("http://example.com/v1/members", response.Links.Members)
}

func (suite *TestSuiteStandard) TestOptions() {
	m := suite.createTestChild("Hana")
	task := suite.createTestTask(suite.createTestFamily("Options"), v1.TaskEditable{})

	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/families", "OPTIONS, POST"},
		{fmt.Sprintf("http://example.com/v1/families/%s", m.FamilyID), "OPTIONS, GET"},
		{fmt.Sprintf("http://example.com/v1/families/%s/members", m.FamilyID), "OPTIONS, GET, POST"},
		{fmt.Sprintf("http://example.com/v1/families/%s/tasks", m.FamilyID), "OPTIONS, GET, POST"},
		{memberURL(m, ""), "OPTIONS, GET"},
		{memberURL(m, fmt.Sprintf("/tasks/%s/complete", task.ID)), "OPTIONS, POST"},
		{memberURL(m, fmt.Sprintf("/tasks/%s/completions", task.ID)), "OPTIONS, PUT"},
		{memberURL(m, "/completions"), "OPTIONS, GET"},
		{memberURL(m, "/earnings"), "OPTIONS, GET, POST"},
		{memberURL(m, "/allocation"), "OPTIONS, GET, POST"},
		{memberURL(m, "/allocations"), "OPTIONS, GET"},
		{memberURL(m, "/balance"), "OPTIONS, GET"},
		{memberURL(m, "/balance/spend"), "OPTIONS, POST"},
		{memberURL(m, "/balance/reset"), "OPTIONS, POST"},
		{memberURL(m, "/goals"), "OPTIONS, GET, POST"},
		{memberURL(m, "/investments"), "OPTIONS, GET"},
		{memberURL(m, "/import"), "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := suite.request(http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsNotFound() {
	tests := []string{
		"http://example.com/v1/families/2f9b0b07-2bd6-4c7a-8e70-5b6d7b0cbe5d",
		"http://example.com/v1/families/2f9b0b07-2bd6-4c7a-8e70-5b6d7b0cbe5d/members",
		"http://example.com/v1/members/2f9b0b07-2bd6-4c7a-8e70-5b6d7b0cbe5d",
		"http://example.com/v1/members/2f9b0b07-2bd6-4c7a-8e70-5b6d7b0cbe5d/balance",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := suite.request(http.MethodOptions, tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsBadRequest() {
	recorder := suite.request(http.MethodOptions, "http://example.com/v1/members/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCleanup() {
	m := suite.createTestChild("Hana")
	task := suite.createTestTask(suite.createTestFamily("Cleanup"), v1.TaskEditable{})
	suite.addMoney(m, 100)

	recorder := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	for _, model := range models.All() {
		var count int64
		err := models.DB.Model(model).Count(&count).Error
		suite.Require().Nil(err)
		suite.Assert().Zero(count, "There are resources left for %T", model)
	}

	recorder = suite.request(http.MethodGet, memberURL(m, ""), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s", task.FamilyID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", ""},
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	recorder := suite.request(http.MethodPatch, "http://example.com/v1/families", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
