package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/sitebook/backend/internal/controllers/v1"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/test"
)

func createTestOrganization(t *testing.T, o v1.OrganizationEditable, expectedStatus ...int) v1.OrganizationResponse {
	if o.Name == "" {
		o.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/organizations", []v1.OrganizationEditable{o})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.OrganizationCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.OrganizationResponse{}
}

func createTestSite(t *testing.T, s v1.SiteEditable, expectedStatus ...int) v1.SiteResponse {
	if s.OrganizationID == uuid.Nil {
		s.OrganizationID = createTestOrganization(t, v1.OrganizationEditable{}).Data.ID
	}

	if s.Name == "" {
		s.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/sites", []v1.SiteEditable{s})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.SiteCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.SiteResponse{}
}

func createTestWorker(t *testing.T, w v1.WorkerEditable, expectedStatus ...int) v1.WorkerResponse {
	if w.OrganizationID == uuid.Nil {
		w.OrganizationID = createTestOrganization(t, v1.OrganizationEditable{}).Data.ID
	}

	if w.Name == "" {
		w.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/workers", []v1.WorkerEditable{w})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.WorkerCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.WorkerResponse{}
}

func createTestTransaction(t *testing.T, tr v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if tr.SiteID == uuid.Nil {
		tr.SiteID = createTestSite(t, v1.SiteEditable{}).Data.ID
	}

	if tr.Type == "" {
		tr.Type = finance.Expense
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tr})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.TransactionResponse{}
}

func createTestMaterial(t *testing.T, m v1.MaterialEditable, expectedStatus ...int) v1.MaterialResponse {
	if m.SiteID == uuid.Nil {
		m.SiteID = createTestSite(t, v1.SiteEditable{}).Data.ID
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/materials", []v1.MaterialEditable{m})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.MaterialCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.MaterialResponse{}
}

// createTestAttendanceLog creates an attendance log. If no site is set,
// a site and a worker of one new organization are created.
func createTestAttendanceLog(t *testing.T, a v1.AttendanceLogEditable, expectedStatus ...int) v1.AttendanceLogResponse {
	if a.SiteID == uuid.Nil {
		site := createTestSite(t, v1.SiteEditable{})
		a.SiteID = site.Data.ID

		if a.WorkerID == uuid.Nil {
			a.WorkerID = createTestWorker(t, v1.WorkerEditable{
				OrganizationID: site.Data.OrganizationID,
				HourlyRate:     decimal.NewNullDecimal(decimal.NewFromInt(20)),
			}).Data.ID
		}
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/attendance-logs", []v1.AttendanceLogEditable{a})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.AttendanceLogCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.AttendanceLogResponse{}
}
