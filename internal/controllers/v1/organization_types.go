package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/models"
)

type OrganizationEditable struct {
	Name     string `json:"name" example:"Kowalski Construction" default:""`            // Name of the organization
	Note     string `json:"note" example:"Renovations in Kraków and around" default:""` // A longer description of the organization
	Currency string `json:"currency" example:"PLN" default:""`                          // ISO 4217 currency code, only used for display
	Locale   string `json:"locale" example:"pl" default:""`                             // BCP 47 language tag for month and day labels. Empty uses the server default
}

// model returns the database resource for the API representation of the editable fields
func (editable OrganizationEditable) model() models.Organization {
	return models.Organization{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
		Locale:   editable.Locale,
	}
}

type OrganizationLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/organizations/3b1ea324-d438-4419-882a-2fc91d71772f"`                         // The organization itself
	Sites        string `json:"sites" example:"https://example.com/api/v1/sites?organization=3b1ea324-d438-4419-882a-2fc91d71772f"`                   // Sites of the organization
	Workers      string `json:"workers" example:"https://example.com/api/v1/workers?organization=3b1ea324-d438-4419-882a-2fc91d71772f"`               // Workers of the organization
	Rollup       string `json:"rollup" example:"https://example.com/api/v1/rollup?organization=3b1ea324-d438-4419-882a-2fc91d71772f"`                 // Rollup of all sites
	Series       string `json:"series" example:"https://example.com/api/v1/series?organization=3b1ea324-d438-4419-882a-2fc91d71772f"`                 // Monthly series of all sites
	WorkerShares string `json:"workerShares" example:"https://example.com/api/v1/worker-breakdown?organization=3b1ea324-d438-4419-882a-2fc91d71772f"` // Labor breakdown per worker
}

type Organization struct {
	models.DefaultModel
	OrganizationEditable
	Links OrganizationLinks `json:"links"`
}

// newOrganization returns the API v1 representation of the resource
func newOrganization(c *gin.Context, model models.Organization) Organization {
	url := c.GetString(string(models.DBContextURL))

	return Organization{
		DefaultModel: model.DefaultModel,
		OrganizationEditable: OrganizationEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
			Locale:   model.Locale,
		},
		Links: OrganizationLinks{
			Self:         fmt.Sprintf("%s/v1/organizations/%s", url, model.ID),
			Sites:        fmt.Sprintf("%s/v1/sites?organization=%s", url, model.ID),
			Workers:      fmt.Sprintf("%s/v1/workers?organization=%s", url, model.ID),
			Rollup:       fmt.Sprintf("%s/v1/rollup?organization=%s", url, model.ID),
			Series:       fmt.Sprintf("%s/v1/series?organization=%s", url, model.ID),
			WorkerShares: fmt.Sprintf("%s/v1/worker-breakdown?organization=%s", url, model.ID),
		},
	}
}

type OrganizationListResponse struct {
	Data       []Organization `json:"data"`                                                          // List of resources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type OrganizationCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []OrganizationResponse `json:"data"`                                                          // List of created resources
}

func (o *OrganizationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	o.Data = append(o.Data, OrganizationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type OrganizationResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Organization `json:"data"`                                                          // The resource
}

type OrganizationQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By the note
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Currency string `form:"currency"`                   // By currency
	Locale   string `form:"locale"`                     // By locale
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first organization returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of organizations to return. Defaults to 50.
}

func (f OrganizationQueryFilter) model() models.Organization {
	// String fields for name and note are handled in the controller
	return OrganizationEditable{
		Currency: f.Currency,
		Locale:   f.Locale,
	}.model()
}
