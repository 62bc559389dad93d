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

type AttendanceLogEditable struct {
	SiteID             uuid.UUID           `json:"siteId" example:"1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`               // ID of the site
	WorkerID           uuid.UUID           `json:"workerId" example:"4f6a8d53-22c8-4d58-9db2-3a1c6a1d0a10"`             // ID of the worker. Must belong to the organization of the site
	Date               types.Date          `json:"date" swaggertype:"string" example:"2024-03-18"`                      // Day of the attendance. Defaults to today
	Hours              decimal.Decimal     `json:"hours" example:"8" minimum:"0" default:"0"`                           // Hours worked
	PaymentType        finance.PaymentType `json:"paymentType" example:"hourly" enums:"hourly,fixed" default:"hourly"`  // Hourly entries cost hours times rate, fixed entries the fixed amount
	HourlyRateSnapshot decimal.NullDecimal `json:"hourlyRateSnapshot" swaggertype:"string" example:"32.50" minimum:"0"` // Rate for this entry. Defaults to the worker's rate at creation
	FixedAmount        decimal.Decimal     `json:"fixedAmount" example:"0" minimum:"0" default:"0"`                     // Amount paid for fixed entries
	Note               string              `json:"note" example:"Roof insulation" default:""`                           // A note on the entry
}

// model returns the database resource for the API representation of the editable fields
func (editable AttendanceLogEditable) model() models.AttendanceLog {
	return models.AttendanceLog{
		SiteID:             editable.SiteID,
		WorkerID:           editable.WorkerID,
		Date:               editable.Date,
		Hours:              editable.Hours,
		PaymentType:        editable.PaymentType,
		HourlyRateSnapshot: editable.HourlyRateSnapshot,
		FixedAmount:        editable.FixedAmount,
		Note:               editable.Note,
	}
}

type AttendanceLogLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/attendance-logs/9d3c4a15-6f0e-4d8b-a1c2-3e4f5a6b7c8d"` // The attendance log itself
	Site   string `json:"site" example:"https://example.com/api/v1/sites/1f9fa2b6-6c2e-4c4b-93a4-4b4c2e7fd5e0"`           // The site of the entry
	Worker string `json:"worker" example:"https://example.com/api/v1/workers/4f6a8d53-22c8-4d58-9db2-3a1c6a1d0a10"`       // The worker of the entry
}

type AttendanceLog struct {
	models.DefaultModel
	AttendanceLogEditable
	Cost  decimal.Decimal    `json:"cost" example:"260"` // Labor cost of the entry
	Links AttendanceLogLinks `json:"links"`
}

// newAttendanceLog returns the API v1 representation of the resource.
//
// The cost of entries without rate snapshot depends on the worker's
// current rate, so the worker is loaded for those.
func newAttendanceLog(c *gin.Context, model models.AttendanceLog) AttendanceLog {
	url := c.GetString(string(models.DBContextURL))

	if model.PaymentType == finance.Hourly && !model.HourlyRateSnapshot.Valid && model.Worker.ID == uuid.Nil {
		_ = models.DB.Unscoped().First(&model.Worker, model.WorkerID).Error
	}

	return AttendanceLog{
		DefaultModel: model.DefaultModel,
		AttendanceLogEditable: AttendanceLogEditable{
			SiteID:             model.SiteID,
			WorkerID:           model.WorkerID,
			Date:               model.Date,
			Hours:              model.Hours,
			PaymentType:        model.PaymentType,
			HourlyRateSnapshot: model.HourlyRateSnapshot,
			FixedAmount:        model.FixedAmount,
			Note:               model.Note,
		},
		Cost: finance.LaborCost(model.Record()),
		Links: AttendanceLogLinks{
			Self:   fmt.Sprintf("%s/v1/attendance-logs/%s", url, model.ID),
			Site:   fmt.Sprintf("%s/v1/sites/%s", url, model.SiteID),
			Worker: fmt.Sprintf("%s/v1/workers/%s", url, model.WorkerID),
		},
	}
}

type AttendanceLogListResponse struct {
	Data       []AttendanceLog `json:"data"`                                                          // List of resources
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type AttendanceLogCreateResponse struct {
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AttendanceLogResponse `json:"data"`                                                          // List of created resources
}

func (a *AttendanceLogCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AttendanceLogResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AttendanceLogResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *AttendanceLog `json:"data"`                                                          // The resource
}

type AttendanceLogQueryFilter struct {
	OrganizationID ez_uuid.UUID        `form:"organization" filterField:"false"` // By organization ID
	SiteID         ez_uuid.UUID        `form:"site"`                             // By site ID
	WorkerID       ez_uuid.UUID        `form:"worker"`                           // By worker ID
	PaymentType    finance.PaymentType `form:"paymentType"`                      // By payment type
	Note           string              `form:"note" filterField:"false"`         // By the note
	From           types.Date          `form:"from" filterField:"false"`         // On and after this date
	Until          types.Date          `form:"until" filterField:"false"`        // On and before this date
	Offset         uint                `form:"offset" filterField:"false"`       // The offset of the first attendance log returned. Defaults to 0.
	Limit          int                 `form:"limit" filterField:"false"`        // Maximum number of attendance logs to return. Defaults to 50.
}

func (f AttendanceLogQueryFilter) model() models.AttendanceLog {
	return AttendanceLogEditable{
		SiteID:      f.SiteID.UUID,
		WorkerID:    f.WorkerID.UUID,
		PaymentType: f.PaymentType,
	}.model()
}
