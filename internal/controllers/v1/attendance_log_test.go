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
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAttendanceLogsCreate() {
	s := createTestSite(suite.T(), v1.SiteEditable{})
	w := createTestWorker(suite.T(), v1.WorkerEditable{OrganizationID: s.Data.OrganizationID, HourlyRate: rate(25)})

	tests := []struct {
		name     string
		log      v1.AttendanceLogEditable
		snapshot string
		cost     string
	}{
		{"Rate snapshot", v1.AttendanceLogEditable{Hours: decimal.NewFromInt(4)}, "25", "100"},
		{"Explicit rate", v1.AttendanceLogEditable{Hours: decimal.NewFromInt(4), HourlyRateSnapshot: rate(30)}, "30", "120"},
		{"Fixed", v1.AttendanceLogEditable{Hours: decimal.NewFromInt(4), PaymentType: finance.Fixed, FixedAmount: decimal.NewFromInt(80)}, "", "80"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.log.SiteID = s.Data.ID
			tt.log.WorkerID = w.Data.ID

			l := createTestAttendanceLog(t, tt.log)
			assert.Equal(t, tt.cost, l.Data.Cost.String())

			if tt.snapshot == "" {
				assert.False(t, l.Data.HourlyRateSnapshot.Valid)
				return
			}
			assert.Equal(t, tt.snapshot, l.Data.HourlyRateSnapshot.Decimal.String())
		})
	}
}

func (suite *TestSuiteStandard) TestAttendanceLogsCreateErrors() {
	s := createTestSite(suite.T(), v1.SiteEditable{})
	w := createTestWorker(suite.T(), v1.WorkerEditable{OrganizationID: s.Data.OrganizationID})
	foreign := createTestWorker(suite.T(), v1.WorkerEditable{})

	tests := []struct {
		name   string
		log    v1.AttendanceLogEditable
		status int
		err    string
	}{
		{"Worker of other organization", v1.AttendanceLogEditable{SiteID: s.Data.ID, WorkerID: foreign.Data.ID}, http.StatusBadRequest, models.ErrWorkerOrganizationMismatch.Error()},
		{"Negative hours", v1.AttendanceLogEditable{SiteID: s.Data.ID, WorkerID: w.Data.ID, Hours: decimal.NewFromInt(-1)}, http.StatusBadRequest, models.ErrHoursNegative.Error()},
		{"Unknown payment type", v1.AttendanceLogEditable{SiteID: s.Data.ID, WorkerID: w.Data.ID, PaymentType: "daily"}, http.StatusBadRequest, models.ErrPaymentTypeInvalid.Error()},
		{"Unknown site", v1.AttendanceLogEditable{WorkerID: w.Data.ID}, http.StatusNotFound, "no site"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/attendance-logs", []v1.AttendanceLogEditable{tt.log})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AttendanceLogCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Contains(t, *response.Data[0].Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestAttendanceLogsGetFilter() {
	s := createTestSite(suite.T(), v1.SiteEditable{})
	anna := createTestWorker(suite.T(), v1.WorkerEditable{OrganizationID: s.Data.OrganizationID, HourlyRate: rate(25)})
	bob := createTestWorker(suite.T(), v1.WorkerEditable{OrganizationID: s.Data.OrganizationID, HourlyRate: rate(30)})

	_ = createTestAttendanceLog(suite.T(), v1.AttendanceLogEditable{SiteID: s.Data.ID, WorkerID: anna.Data.ID, Hours: decimal.NewFromInt(8), Date: types.NewDate(2024, time.February, 1), Note: "Roof"})
	_ = createTestAttendanceLog(suite.T(), v1.AttendanceLogEditable{SiteID: s.Data.ID, WorkerID: bob.Data.ID, Hours: decimal.NewFromInt(6), Date: types.NewDate(2024, time.February, 2)})
	_ = createTestAttendanceLog(suite.T(), v1.AttendanceLogEditable{SiteID: s.Data.ID, WorkerID: bob.Data.ID, PaymentType: finance.Fixed, FixedAmount: decimal.NewFromInt(200), Date: types.NewDate(2024, time.March, 1)})
	_ = createTestAttendanceLog(suite.T(), v1.AttendanceLogEditable{Hours: decimal.NewFromInt(1), Date: types.NewDate(2024, time.February, 1)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Organization", fmt.Sprintf("organization=%s", s.Data.OrganizationID), 3},
		{"Worker", fmt.Sprintf("worker=%s", bob.Data.ID), 2},
		{"Payment type", fmt.Sprintf("site=%s&paymentType=fixed", s.Data.ID), 1},
		{"Note", "note=Roof", 1},
		{"Window", fmt.Sprintf("site=%s&from=2024-02-02&until=2024-02-29", s.Data.ID), 1},
		{"Day", "from=2024-02-01&until=2024-02-01", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/attendance-logs?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AttendanceLogListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestAttendanceLogsUpdate() {
	l := createTestAttendanceLog(suite.T(), v1.AttendanceLogEditable{Hours: decimal.NewFromInt(8)})
	assert.Equal(suite.T(), "160", l.Data.Cost.String())

	r := test.Request(suite.T(), http.MethodPatch, l.Data.Links.Self, map[string]any{"hours": "6.5"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AttendanceLogResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "130", response.Data.Cost.String())

	r = test.Request(suite.T(), http.MethodPatch, l.Data.Links.Self, map[string]any{"paymentType": "fixed", "fixedAmount": "90"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "90", response.Data.Cost.String())

	// Switching the worker to one of another organization is rejected
	foreign := createTestWorker(suite.T(), v1.WorkerEditable{})
	r = test.Request(suite.T(), http.MethodPatch, l.Data.Links.Self, map[string]any{"workerId": foreign.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAttendanceLogsDelete() {
	l := createTestAttendanceLog(suite.T(), v1.AttendanceLogEditable{Hours: decimal.NewFromInt(1)})

	r := test.Request(suite.T(), http.MethodDelete, l.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, l.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
