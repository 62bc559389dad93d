package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Organizations   string `json:"organizations" example:"https://example.com/api/v1/organizations"`      // URL of organization list endpoint
	Sites           string `json:"sites" example:"https://example.com/api/v1/sites"`                      // URL of site list endpoint
	Workers         string `json:"workers" example:"https://example.com/api/v1/workers"`                  // URL of worker list endpoint
	Transactions    string `json:"transactions" example:"https://example.com/api/v1/transactions"`        // URL of transaction list endpoint
	Materials       string `json:"materials" example:"https://example.com/api/v1/materials"`              // URL of material purchase list endpoint
	AttendanceLogs  string `json:"attendanceLogs" example:"https://example.com/api/v1/attendance-logs"`   // URL of attendance log list endpoint
	Rollup          string `json:"rollup" example:"https://example.com/api/v1/rollup"`                    // URL of rollup endpoint
	Series          string `json:"series" example:"https://example.com/api/v1/series"`                    // URL of series endpoint
	WorkerBreakdown string `json:"workerBreakdown" example:"https://example.com/api/v1/worker-breakdown"` // URL of worker breakdown endpoint
	BudgetBreakdown string `json:"budgetBreakdown" example:"https://example.com/api/v1/budget-breakdown"` // URL of budget breakdown endpoint
	Export          string `json:"export" example:"https://example.com/api/v1/export"`                    // URL of XLSX export endpoint
}

// RegisterRoutes registers all v1 routes on the group.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterOrganizationRoutes(r.Group("/organizations"))
	RegisterSiteRoutes(r.Group("/sites"))
	RegisterWorkerRoutes(r.Group("/workers"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterMaterialRoutes(r.Group("/materials"))
	RegisterAttendanceLogRoutes(r.Group("/attendance-logs"))
	RegisterReportRoutes(r)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Organizations:   url + "/v1/organizations",
			Sites:           url + "/v1/sites",
			Workers:         url + "/v1/workers",
			Transactions:    url + "/v1/transactions",
			Materials:       url + "/v1/materials",
			AttendanceLogs:  url + "/v1/attendance-logs",
			Rollup:          url + "/v1/rollup",
			Series:          url + "/v1/series",
			WorkerBreakdown: url + "/v1/worker-breakdown",
			BudgetBreakdown: url + "/v1/budget-breakdown",
			Export:          url + "/v1/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
