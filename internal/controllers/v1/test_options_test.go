package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sitebook/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestCollectionOptions verifies that OPTIONS requests on the collection
// endpoints are handled correctly.
func (suite *TestSuiteStandard) TestCollectionOptions() {
	for _, path := range []string{"organizations", "sites", "workers", "transactions", "materials", "attendance-logs"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/%s", path), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET, POST", r.Header().Get("allow"))
		})
	}
}

// TestDetailOptionsNotFound verifies that OPTIONS requests for resources
// that do not exist return 404.
func (suite *TestSuiteStandard) TestDetailOptionsNotFound() {
	for _, path := range []string{"organizations", "sites", "workers", "transactions", "materials", "attendance-logs"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/%s/%s", path, uuid.New()), "")
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}

// TestDetailInvalidID verifies that malformed resource IDs are rejected
// for every method on single resources.
func (suite *TestSuiteStandard) TestDetailInvalidID() {
	for _, path := range []string{"organizations", "sites", "workers", "transactions", "materials", "attendance-logs"} {
		for _, method := range []string{http.MethodOptions, http.MethodGet, http.MethodPatch, http.MethodDelete} {
			suite.T().Run(fmt.Sprintf("%s %s", method, path), func(t *testing.T) {
				r := test.Request(t, method, fmt.Sprintf("http://example.com/v1/%s/site-7", path), `{}`)
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				assert.Contains(t, r.Body.String(), "not a valid UUID")
			})
		}
	}
}
