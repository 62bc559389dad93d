package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/sitebook/backend/internal/controllers/v1"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOrganizationsCreate() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{
		Name:     "Kowalski Construction",
		Currency: " pln ",
		Locale:   "pl",
	})

	assert.Equal(suite.T(), "PLN", o.Data.Currency)
	assert.Equal(suite.T(), "pl", o.Data.Locale)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/organizations/%s", o.Data.ID), o.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/rollup?organization=%s", o.Data.ID), o.Data.Links.Rollup)
}

func (suite *TestSuiteStandard) TestOrganizationsCreateErrors() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Malformed locale", []v1.OrganizationEditable{{Name: "A", Locale: "!!"}}, http.StatusBadRequest, models.ErrOrganizationLocaleMalformed.Error()},
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest, "name"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/organizations", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.OrganizationCreateResponse
			test.DecodeResponse(t, &r, &response)

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.err)
				return
			}

			require.Len(t, response.Data, 1)
			assert.Contains(t, *response.Data[0].Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestOrganizationsGetFilter() {
	_ = createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Alpha Roofing", Note: "roofs only", Currency: "EUR"})
	_ = createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Beta Build", Currency: "PLN"})
	_ = createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Gamma", Note: "Beta tester", Currency: "PLN"})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"Name", "name=Alpha", 1, 1},
		{"Note", "note=roofs", 1, 1},
		{"Empty note", "note=", 1, 1},
		{"Currency", "currency=PLN", 2, 2},
		{"Search", "search=Beta", 2, 2},
		{"Limit", "limit=2", 2, 3},
		{"Offset", "offset=2", 1, 3},
		{"Nothing", "name=Delta", 0, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/organizations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.OrganizationListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestOrganizationsGetSingle() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", o.Data.ID.String(), http.StatusOK},
		{"Not found", uuid.NewString(), http.StatusNotFound},
		{"Not a UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/organizations/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestOrganizationsUpdate() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Old", Note: "Keep me", Locale: "de"})

	r := test.Request(suite.T(), http.MethodPatch, o.Data.Links.Self, map[string]any{
		"name":   "New",
		"locale": "",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OrganizationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "New", response.Data.Name)
	assert.Equal(suite.T(), "Keep me", response.Data.Note, "fields that are not sent must not change")
	assert.Equal(suite.T(), "", response.Data.Locale, "fields sent with zero values must be updated")
}

func (suite *TestSuiteStandard) TestOrganizationsUpdateFails() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Invalid body", `{ "name": 2 }`, http.StatusBadRequest},
		{"Broken JSON", `{ "name": `, http.StatusBadRequest},
		{"Malformed locale", map[string]any{"locale": "!!"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, o.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestOrganizationsDelete() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	r := test.Request(suite.T(), http.MethodDelete, o.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, o.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, o.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestOrganizationsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestOrganizationsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/organizations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.OrganizationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}
