package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/internal/types"
	ez_uuid "github.com/sitebook/backend/internal/uuid"
)

type TransactionEditable struct {
	SiteID uuid.UUID               `json:"siteId" example:"1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`                                                    // ID of the site
	Type   finance.TransactionType `json:"type" example:"invoice" enums:"invoice,expense"`                                                           // Invoices are income once paid, expenses are always cost
	Amount decimal.Decimal         `json:"amount" example:"1500.50" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount of the transaction
	Date   types.Date              `json:"date" swaggertype:"string" example:"2024-03-18"`                                                           // Date of the transaction. Defaults to today
	IsPaid bool                    `json:"isPaid" example:"true" default:"false"`                                                                    // If the invoice has been paid. Ignored for expenses
	Note   string                  `json:"note" example:"Second installment" default:""`                                                             // A note on the transaction
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		SiteID: editable.SiteID,
		Type:   editable.Type,
		Amount: editable.Amount,
		Date:   editable.Date,
		IsPaid: editable.IsPaid,
		Note:   editable.Note,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/0b2c0f5e-8b8c-4e2d-9b55-8a6a5f3b4c21"` // The transaction itself
	Site string `json:"site" example:"https://example.com/api/v1/sites/1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`        // The site of the transaction
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			SiteID: model.SiteID,
			Type:   model.Type,
			Amount: model.Amount,
			Date:   model.Date,
			IsPaid: model.IsPaid,
			Note:   model.Note,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Site: fmt.Sprintf("%s/v1/sites/%s", url, model.SiteID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created resources
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	OrganizationID    ez_uuid.UUID            `form:"organization" filterField:"false"`      // By organization ID
	SiteID            ez_uuid.UUID            `form:"site"`                                  // By site ID
	Type              finance.TransactionType `form:"type"`                                  // By type
	IsPaid            bool                    `form:"isPaid"`                                // Is the transaction paid?
	Note              string                  `form:"note" filterField:"false"`              // By the note
	From              types.Date              `form:"from" filterField:"false"`              // On and after this date
	Until             types.Date              `form:"until" filterField:"false"`             // On and before this date
	Amount            decimal.Decimal         `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal         `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal         `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint                    `form:"offset" filterField:"false"`            // The offset of the first transaction returned. Defaults to 0.
	Limit             int                     `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return TransactionEditable{
		SiteID: f.SiteID.UUID,
		Type:   f.Type,
		IsPaid: f.IsPaid,
		Amount: f.Amount,
	}.model()
}
