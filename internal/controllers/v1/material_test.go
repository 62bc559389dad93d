package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/sitebook/backend/internal/controllers/v1"
	"github.com/sitebook/backend/internal/types"
	"github.com/sitebook/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMaterialsTotalPrice() {
	tests := []struct {
		name     string
		material v1.MaterialEditable
		total    string
	}{
		{"Derived", v1.MaterialEditable{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(2.335)}, "7.01"},
		{"Explicit", v1.MaterialEditable{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(2), TotalPrice: decimal.NewFromInt(5)}, "5"},
		{"Nothing", v1.MaterialEditable{}, "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			m := createTestMaterial(t, tt.material)
			assert.Equal(t, tt.total, m.Data.TotalPrice.String())
		})
	}
}

func (suite *TestSuiteStandard) TestMaterialsUpdateTotalPrice() {
	m := createTestMaterial(suite.T(), v1.MaterialEditable{Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(10)})
	assert.Equal(suite.T(), "40", m.Data.TotalPrice.String())

	// A total price of 0 is derived from quantity and unit price again
	r := test.Request(suite.T(), http.MethodPatch, m.Data.Links.Self, map[string]any{"quantity": "5", "totalPrice": "0"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MaterialResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "50", response.Data.TotalPrice.String())

	r = test.Request(suite.T(), http.MethodPatch, m.Data.Links.Self, map[string]any{"unitPrice": "-1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMaterialsGetFilter() {
	s := createTestSite(suite.T(), v1.SiteEditable{})
	_ = createTestMaterial(suite.T(), v1.MaterialEditable{SiteID: s.Data.ID, Name: "Cement 25kg", TotalPrice: decimal.NewFromInt(50), PurchaseDate: types.NewDate(2024, time.January, 31)})
	_ = createTestMaterial(suite.T(), v1.MaterialEditable{SiteID: s.Data.ID, Name: "Roof tiles", TotalPrice: decimal.NewFromInt(900), PurchaseDate: types.NewDate(2024, time.March, 2)})
	_ = createTestMaterial(suite.T(), v1.MaterialEditable{Name: "Cement 50kg", PurchaseDate: types.NewDate(2024, time.March, 2)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Site", fmt.Sprintf("site=%s", s.Data.ID), 2},
		{"Organization", fmt.Sprintf("organization=%s", s.Data.OrganizationID), 2},
		{"Name", "name=Cement", 2},
		{"From", "from=2024-02-01", 2},
		{"Until", fmt.Sprintf("site=%s&until=2024-02-01", s.Data.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/materials?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MaterialListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}
