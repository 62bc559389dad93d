package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	v1 "github.com/sitebook/backend/internal/controllers/v1"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/test"
	"github.com/stretchr/testify/assert"
)

func rate(r int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(r))
}

func (suite *TestSuiteStandard) TestWorkersCreate() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	w := createTestWorker(suite.T(), v1.WorkerEditable{OrganizationID: o.Data.ID, Name: " Anna ", HourlyRate: rate(25)})

	assert.Equal(suite.T(), "Anna", w.Data.Name)
	assert.Equal(suite.T(), "25", w.Data.HourlyRate.Decimal.String())
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/attendance-logs?worker=%s", w.Data.ID), w.Data.Links.AttendanceLogs)

	tests := []struct {
		name   string
		worker v1.WorkerEditable
		err    error
	}{
		{"Duplicate name", v1.WorkerEditable{OrganizationID: o.Data.ID, Name: "Anna"}, models.ErrWorkerNameNotUnique},
		{"Negative rate", v1.WorkerEditable{OrganizationID: o.Data.ID, Name: "Bob", HourlyRate: rate(-1)}, models.ErrRateNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/workers", []v1.WorkerEditable{tt.worker})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.WorkerCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestWorkersCreateNotANumber() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	for _, value := range []string{`"NaN"`, `"Infinity"`, `NaN`} {
		suite.T().Run(value, func(t *testing.T) {
			body := fmt.Sprintf(`[{"organizationId": "%s", "name": "Bob", "hourlyRate": %s}]`, o.Data.ID, value)
			r := test.Request(t, http.MethodPost, "http://example.com/v1/workers", body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestWorkersGetFilter() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	_ = createTestWorker(suite.T(), v1.WorkerEditable{OrganizationID: o.Data.ID, Name: "Anna", HourlyRate: rate(25)})
	_ = createTestWorker(suite.T(), v1.WorkerEditable{OrganizationID: o.Data.ID, Name: "Bartek", HourlyRate: rate(40)})
	_ = createTestWorker(suite.T(), v1.WorkerEditable{Name: "Clara", HourlyRate: rate(30)})

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"Organization", fmt.Sprintf("organization=%s", o.Data.ID), []string{"Anna", "Bartek"}},
		{"Name", "name=art", []string{"Bartek"}},
		{"Rate at most", "hourlyRateLessOrEqual=30", []string{"Anna", "Clara"}},
		{"Rate at least", "hourlyRateMoreOrEqual=30", []string{"Bartek", "Clara"}},
		{"Rate range", "hourlyRateMoreOrEqual=26&hourlyRateLessOrEqual=35", []string{"Clara"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/workers?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.WorkerListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, w := range response.Data {
				names = append(names, w.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestWorkersGetInvalidQuery() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/workers?organization=NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestWorkersUpdateRate verifies that rate changes do not change the cost
// of existing attendance logs.
func (suite *TestSuiteStandard) TestWorkersUpdateRate() {
	s := createTestSite(suite.T(), v1.SiteEditable{})
	w := createTestWorker(suite.T(), v1.WorkerEditable{OrganizationID: s.Data.OrganizationID, HourlyRate: rate(20)})
	l := createTestAttendanceLog(suite.T(), v1.AttendanceLogEditable{SiteID: s.Data.ID, WorkerID: w.Data.ID, Hours: decimal.NewFromInt(8)})
	assert.Equal(suite.T(), "160", l.Data.Cost.String())

	r := test.Request(suite.T(), http.MethodPatch, w.Data.Links.Self, map[string]any{"hourlyRate": "30"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, l.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AttendanceLogResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "160", response.Data.Cost.String())
	assert.Equal(suite.T(), "20", response.Data.HourlyRateSnapshot.Decimal.String())
}
