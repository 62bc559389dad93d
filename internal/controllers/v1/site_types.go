package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/models"
	ez_uuid "github.com/sitebook/backend/internal/uuid"
)

type SiteEditable struct {
	OrganizationID uuid.UUID                `json:"organizationId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                // ID of the organization the site belongs to
	Name           string                   `json:"name" example:"Main Street 12" default:""`                                     // Name of the site
	Note           string                   `json:"note" example:"Attic conversion" default:""`                                   // A longer description of the site
	Address        string                   `json:"address" example:"ul. Długa 12, Kraków" default:""`                            // Postal address of the site
	BudgetItems    []finance.BudgetLineItem `json:"budgetItems"`                                                                  // Line items of the budget
	VATEnabled     bool                     `json:"vatEnabled" example:"true" default:"false"`                                    // If VAT is added to the budget items
	VATRate        decimal.Decimal          `json:"vatRate" example:"23" minimum:"0" maximum:"100" multipleOf:"0.01" default:"0"` // VAT rate in percent
}

// model returns the database resource for the API representation of the editable fields
func (editable SiteEditable) model() models.Site {
	return models.Site{
		OrganizationID: editable.OrganizationID,
		Name:           editable.Name,
		Note:           editable.Note,
		Address:        editable.Address,
		BudgetItems:    editable.BudgetItems,
		VATEnabled:     editable.VATEnabled,
		VATRate:        editable.VATRate,
	}
}

type SiteLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/sites/1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`                                                           // The site itself
	Organization   string `json:"organization" example:"https://example.com/api/v1/organizations/3b1ea324-d438-4419-882a-2fc91d71772f"`                                           // The organization the site belongs to
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions?site=1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`                                       // Transactions of the site
	Materials      string `json:"materials" example:"https://example.com/api/v1/materials?site=1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`                                             // Material purchases of the site
	AttendanceLogs string `json:"attendanceLogs" example:"https://example.com/api/v1/attendance-logs?site=1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`                                  // Attendance logs of the site
	Rollup         string `json:"rollup" example:"https://example.com/api/v1/rollup?organization=3b1ea324-d438-4419-882a-2fc91d71772f&site=1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"` // Rollup of the site
	Series         string `json:"series" example:"https://example.com/api/v1/series?organization=3b1ea324-d438-4419-882a-2fc91d71772f&site=1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"` // Monthly series of the site
}

type Site struct {
	models.DefaultModel
	SiteEditable
	Budget finance.BudgetBreakdown `json:"budget"` // Subtotal, VAT and total of the budget items
	Links  SiteLinks               `json:"links"`
}

// newSite returns the API v1 representation of the resource
func newSite(c *gin.Context, model models.Site) Site {
	url := c.GetString(string(models.DBContextURL))
	scope := fmt.Sprintf("organization=%s&site=%s", model.OrganizationID, model.ID)

	return Site{
		DefaultModel: model.DefaultModel,
		SiteEditable: SiteEditable{
			OrganizationID: model.OrganizationID,
			Name:           model.Name,
			Note:           model.Note,
			Address:        model.Address,
			BudgetItems:    model.BudgetItems,
			VATEnabled:     model.VATEnabled,
			VATRate:        model.VATRate,
		},
		Budget: model.BudgetBreakdown(),
		Links: SiteLinks{
			Self:           fmt.Sprintf("%s/v1/sites/%s", url, model.ID),
			Organization:   fmt.Sprintf("%s/v1/organizations/%s", url, model.OrganizationID),
			Transactions:   fmt.Sprintf("%s/v1/transactions?site=%s", url, model.ID),
			Materials:      fmt.Sprintf("%s/v1/materials?site=%s", url, model.ID),
			AttendanceLogs: fmt.Sprintf("%s/v1/attendance-logs?site=%s", url, model.ID),
			Rollup:         fmt.Sprintf("%s/v1/rollup?%s", url, scope),
			Series:         fmt.Sprintf("%s/v1/series?%s", url, scope),
		},
	}
}

type SiteListResponse struct {
	Data       []Site      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SiteCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SiteResponse `json:"data"`                                                          // List of created resources
}

func (s *SiteCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SiteResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SiteResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Site   `json:"data"`                                                          // The resource
}

type SiteQueryFilter struct {
	OrganizationID ez_uuid.UUID `form:"organization"`                // By organization ID
	Name           string       `form:"name" filterField:"false"`    // By name
	Note           string       `form:"note" filterField:"false"`    // By the note
	Search         string       `form:"search" filterField:"false"`  // By string in name or note
	Address        string       `form:"address" filterField:"false"` // By string in the address
	VATEnabled     bool         `form:"vatEnabled"`                  // Is VAT enabled for the site?
	Offset         uint         `form:"offset" filterField:"false"`  // The offset of the first site returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`   // Maximum number of sites to return. Defaults to 50.
}

func (f SiteQueryFilter) model() models.Site {
	// String fields are handled in the controller
	return SiteEditable{
		OrganizationID: f.OrganizationID.UUID,
		VATEnabled:     f.VATEnabled,
	}.model()
}
