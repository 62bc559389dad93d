package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/internal/types"
	ez_uuid "github.com/sitebook/backend/internal/uuid"
)

type MaterialEditable struct {
	SiteID       uuid.UUID       `json:"siteId" example:"1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`  // ID of the site
	Name         string          `json:"name" example:"Cement 25kg" default:""`                  // What was bought
	Quantity     decimal.Decimal `json:"quantity" example:"40" minimum:"0" default:"0"`          // Number of units
	UnitPrice    decimal.Decimal `json:"unitPrice" example:"21.99" minimum:"0" default:"0"`      // Price per unit
	TotalPrice   decimal.Decimal `json:"totalPrice" example:"879.60" minimum:"0" default:"0"`    // Price of the purchase. Derived from quantity and unit price when 0
	PurchaseDate types.Date      `json:"purchaseDate" swaggertype:"string" example:"2024-03-18"` // Date of the purchase. Defaults to today
}

// model returns the database resource for the API representation of the editable fields
func (editable MaterialEditable) model() models.Material {
	return models.Material{
		SiteID:       editable.SiteID,
		Name:         editable.Name,
		Quantity:     editable.Quantity,
		UnitPrice:    editable.UnitPrice,
		TotalPrice:   editable.TotalPrice,
		PurchaseDate: editable.PurchaseDate,
	}
}

type MaterialLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/materials/6c1a1c7e-2a4f-4d4e-8f0b-2f1b0b7d9e11"` // The material purchase itself
	Site string `json:"site" example:"https://example.com/api/v1/sites/1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`     // The site of the purchase
}

type Material struct {
	models.DefaultModel
	MaterialEditable
	Links MaterialLinks `json:"links"`
}

// newMaterial returns the API v1 representation of the resource
func newMaterial(c *gin.Context, model models.Material) Material {
	url := c.GetString(string(models.DBContextURL))

	return Material{
		DefaultModel: model.DefaultModel,
		MaterialEditable: MaterialEditable{
			SiteID:       model.SiteID,
			Name:         model.Name,
			Quantity:     model.Quantity,
			UnitPrice:    model.UnitPrice,
			TotalPrice:   model.TotalPrice,
			PurchaseDate: model.PurchaseDate,
		},
		Links: MaterialLinks{
			Self: fmt.Sprintf("%s/v1/materials/%s", url, model.ID),
			Site: fmt.Sprintf("%s/v1/sites/%s", url, model.SiteID),
		},
	}
}

type MaterialListResponse struct {
	Data       []Material  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MaterialCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MaterialResponse `json:"data"`                                                          // List of created resources
}

func (m *MaterialCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MaterialResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MaterialResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Material `json:"data"`                                                          // The resource
}

type MaterialQueryFilter struct {
	OrganizationID ez_uuid.UUID `form:"organization" filterField:"false"` // By organization ID
	SiteID         ez_uuid.UUID `form:"site"`                             // By site ID
	Name           string       `form:"name" filterField:"false"`         // By name
	From           types.Date   `form:"from" filterField:"false"`         // Purchased on and after this date
	Until          types.Date   `form:"until" filterField:"false"`        // Purchased on and before this date
	Offset         uint         `form:"offset" filterField:"false"`       // The offset of the first material purchase returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`        // Maximum number of material purchases to return. Defaults to 50.
}

func (f MaterialQueryFilter) model() models.Material {
	return MaterialEditable{
		SiteID: f.SiteID.UUID,
	}.model()
}
