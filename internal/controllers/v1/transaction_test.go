package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/sitebook/backend/internal/controllers/v1"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/internal/types"
	"github.com/sitebook/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   finance.Invoice,
		Amount: decimal.NewFromFloat(1500.5),
		Date:   types.NewDate(2024, time.March, 18),
		IsPaid: true,
		Note:   " Second installment ",
	})

	assert.Equal(suite.T(), "1500.5", tr.Data.Amount.String())
	assert.Equal(suite.T(), "2024-03-18", tr.Data.Date.String())
	assert.Equal(suite.T(), "Second installment", tr.Data.Note)

	// Without date, the transaction is dated today
	tr = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(10)})
	assert.Equal(suite.T(), types.DateOf(time.Now().UTC()).String(), tr.Data.Date.String())
}

func (suite *TestSuiteStandard) TestTransactionsCreateErrors() {
	s := createTestSite(suite.T(), v1.SiteEditable{})

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		err         error
	}{
		{"Unknown type", v1.TransactionEditable{SiteID: s.Data.ID, Type: "refund"}, models.ErrTransactionTypeInvalid},
		{"Negative amount", v1.TransactionEditable{SiteID: s.Data.ID, Type: finance.Expense, Amount: decimal.NewFromInt(-5)}, models.ErrAmountNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.transaction})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	s := createTestSite(suite.T(), v1.SiteEditable{})
	other := createTestSite(suite.T(), v1.SiteEditable{OrganizationID: s.Data.OrganizationID})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{SiteID: s.Data.ID, Type: finance.Invoice, Amount: decimal.NewFromInt(500), IsPaid: true, Date: types.NewDate(2024, time.January, 15), Note: "First"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{SiteID: s.Data.ID, Type: finance.Invoice, Amount: decimal.NewFromInt(700), Date: types.NewDate(2024, time.February, 1)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{SiteID: s.Data.ID, Type: finance.Expense, Amount: decimal.NewFromInt(100), Date: types.NewDate(2024, time.February, 10)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{SiteID: other.Data.ID, Type: finance.Expense, Amount: decimal.NewFromInt(70), Date: types.NewDate(2024, time.February, 11)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Type: finance.Expense, Amount: decimal.NewFromInt(999), Date: types.NewDate(2024, time.February, 11)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Organization", fmt.Sprintf("organization=%s", s.Data.OrganizationID), 4},
		{"Site", fmt.Sprintf("site=%s", s.Data.ID), 3},
		{"Type", fmt.Sprintf("site=%s&type=invoice", s.Data.ID), 2},
		{"Paid", fmt.Sprintf("site=%s&type=invoice&isPaid=true", s.Data.ID), 1},
		{"Unpaid", fmt.Sprintf("site=%s&isPaid=false", s.Data.ID), 2},
		{"Note", "note=Fir", 1},
		{"From", fmt.Sprintf("organization=%s&from=2024-02-01", s.Data.OrganizationID), 3},
		{"Until", fmt.Sprintf("organization=%s&until=2024-02-01", s.Data.OrganizationID), 2},
		{"Single day", "from=2024-02-11&until=2024-02-11", 2},
		{"Amount", "amount=700", 1},
		{"Amount range", "amountMoreOrEqual=100&amountLessOrEqual=500", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, int64(tt.len), response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidDate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?from=yesterday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{Type: finance.Invoice, Amount: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, map[string]any{"isPaid": true, "date": "2024-05-01"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.IsPaid)
	assert.Equal(suite.T(), "2024-05-01", response.Data.Date.String())
	assert.Equal(suite.T(), "100", response.Data.Amount.String())

	r = test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, map[string]any{"type": "gift"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
