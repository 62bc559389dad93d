package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/models"
	ez_uuid "github.com/sitebook/backend/internal/uuid"
)

type WorkerEditable struct {
	OrganizationID uuid.UUID           `json:"organizationId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                 // ID of the organization the worker belongs to
	Name           string              `json:"name" example:"Jan Kowalski" default:""`                                        // Name of the worker
	HourlyRate     decimal.NullDecimal `json:"hourlyRate" swaggertype:"string" example:"32.50" minimum:"0" multipleOf:"0.01"` // Current hourly rate. New hourly attendance logs snapshot it
}

// model returns the database resource for the API representation of the editable fields
func (editable WorkerEditable) model() models.Worker {
	return models.Worker{
		OrganizationID: editable.OrganizationID,
		Name:           editable.Name,
		HourlyRate:     editable.HourlyRate,
	}
}

type WorkerLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/workers/4f6a8d53-22c8-4d58-9db2-3a1c6a1d0a10"`                          // The worker itself
	Organization   string `json:"organization" example:"https://example.com/api/v1/organizations/3b1ea324-d438-4419-882a-2fc91d71772f"`            // The organization the worker belongs to
	AttendanceLogs string `json:"attendanceLogs" example:"https://example.com/api/v1/attendance-logs?worker=4f6a8d53-22c8-4d58-9db2-3a1c6a1d0a10"` // Attendance logs of the worker
}

type Worker struct {
	models.DefaultModel
	WorkerEditable
	Links WorkerLinks `json:"links"`
}

// newWorker returns the API v1 representation of the resource
func newWorker(c *gin.Context, model models.Worker) Worker {
	url := c.GetString(string(models.DBContextURL))

	return Worker{
		DefaultModel: model.DefaultModel,
		WorkerEditable: WorkerEditable{
			OrganizationID: model.OrganizationID,
			Name:           model.Name,
			HourlyRate:     model.HourlyRate,
		},
		Links: WorkerLinks{
			Self:           fmt.Sprintf("%s/v1/workers/%s", url, model.ID),
			Organization:   fmt.Sprintf("%s/v1/organizations/%s", url, model.OrganizationID),
			AttendanceLogs: fmt.Sprintf("%s/v1/attendance-logs?worker=%s", url, model.ID),
		},
	}
}

type WorkerListResponse struct {
	Data       []Worker    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type WorkerCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []WorkerResponse `json:"data"`                                                          // List of created resources
}

func (w *WorkerCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	w.Data = append(w.Data, WorkerResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WorkerResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Worker `json:"data"`                                                          // The resource
}

type WorkerQueryFilter struct {
	OrganizationID        ez_uuid.UUID    `form:"organization"`                              // By organization ID
	Name                  string          `form:"name" filterField:"false"`                  // By name
	HourlyRateLessOrEqual decimal.Decimal `form:"hourlyRateLessOrEqual" filterField:"false"` // Hourly rate less than or equal to this
	HourlyRateMoreOrEqual decimal.Decimal `form:"hourlyRateMoreOrEqual" filterField:"false"` // Hourly rate more than or equal to this
	Offset                uint            `form:"offset" filterField:"false"`                // The offset of the first worker returned. Defaults to 0.
	Limit                 int             `form:"limit" filterField:"false"`                 // Maximum number of workers to return. Defaults to 50.
}

func (f WorkerQueryFilter) model() models.Worker {
	return WorkerEditable{
		OrganizationID: f.OrganizationID.UUID,
	}.model()
}
