package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/sitebook/backend/internal/controllers/v1"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetItems(amounts ...int64) []finance.BudgetLineItem {
	items := make([]finance.BudgetLineItem, 0, len(amounts))
	for i, a := range amounts {
		items = append(items, finance.BudgetLineItem{Label: fmt.Sprintf("Item %d", i), Amount: decimal.NewFromInt(a)})
	}

	return items
}

func (suite *TestSuiteStandard) TestSitesCreateBudget() {
	s := createTestSite(suite.T(), v1.SiteEditable{
		BudgetItems: budgetItems(1000, 250),
		VATEnabled:  true,
		VATRate:     decimal.NewFromInt(23),
	})

	assert.Equal(suite.T(), "1250", s.Data.Budget.Subtotal.String())
	assert.Equal(suite.T(), "287.5", s.Data.Budget.VATAmount.String())
	assert.Equal(suite.T(), "1537.5", s.Data.Budget.Total.String())

	require.Len(suite.T(), s.Data.BudgetItems, 2)
	assert.NotEmpty(suite.T(), s.Data.BudgetItems[0].ID, "budget items must get an ID")
	assert.Contains(suite.T(), s.Data.Links.Rollup, fmt.Sprintf("site=%s", s.Data.ID))
}

func (suite *TestSuiteStandard) TestSitesCreateErrors() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	_ = createTestSite(suite.T(), v1.SiteEditable{OrganizationID: o.Data.ID, Name: "Main Street"})

	tests := []struct {
		name string
		site v1.SiteEditable
		err  error
	}{
		{"Duplicate name", v1.SiteEditable{OrganizationID: o.Data.ID, Name: "Main Street"}, models.ErrSiteNameNotUnique},
		{"Unknown organization", v1.SiteEditable{OrganizationID: uuid.New(), Name: "Harbor"}, models.ErrReferenceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/sites", []v1.SiteEditable{tt.site})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SiteCreateResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

// TestSitesCreatePartial verifies that one failing site does not prevent
// the others of the same request from being created.
func (suite *TestSuiteStandard) TestSitesCreatePartial() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/sites", []v1.SiteEditable{
		{OrganizationID: o.Data.ID, Name: "Harbor"},
		{OrganizationID: uuid.New(), Name: "Lost"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SiteCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Harbor", response.Data[0].Data.Name)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestSitesUpdateRecomputesBudget() {
	s := createTestSite(suite.T(), v1.SiteEditable{
		BudgetItems: budgetItems(1000),
		VATEnabled:  true,
		VATRate:     decimal.NewFromInt(8),
	})
	assert.Equal(suite.T(), "1080", s.Data.Budget.Total.String())

	r := test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, map[string]any{"vatEnabled": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SiteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "1000", response.Data.Budget.Total.String())
	assert.Equal(suite.T(), "8", response.Data.VATRate.String(), "the rate must be kept")

	r = test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, map[string]any{"budgetItems": budgetItems(100, 200)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "300", response.Data.Budget.Total.String())

	// The stored budget is what reports use
	var site models.Site
	require.Nil(suite.T(), models.DB.First(&site, s.Data.ID).Error)
	assert.Equal(suite.T(), "300", site.Budget.String())
}

func (suite *TestSuiteStandard) TestSitesGetFilter() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	_ = createTestSite(suite.T(), v1.SiteEditable{OrganizationID: o.Data.ID, Name: "Main Street", Address: "Main Street 12"})
	_ = createTestSite(suite.T(), v1.SiteEditable{OrganizationID: o.Data.ID, Name: "Harbor", VATEnabled: true, VATRate: decimal.NewFromInt(23)})
	_ = createTestSite(suite.T(), v1.SiteEditable{Name: "Elsewhere"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Organization", fmt.Sprintf("organization=%s", o.Data.ID), 2},
		{"Name", "name=Harb", 1},
		{"Address", "address=12", 1},
		{"VAT", "vatEnabled=true", 1},
		{"Search", "search=Street", 1},
		{"All", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/sites?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SiteListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestSitesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No site with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Site exists", createTestSite(suite.T(), v1.SiteEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/sites/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}
