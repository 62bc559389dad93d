package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sitebook/backend/internal/export"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/internal/report"
)

func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/rollup", OptionsRollup)
		r.GET("/rollup", GetRollup)
	}
	{
		r.OPTIONS("/series", OptionsSeries)
		r.GET("/series", GetSeries)
	}
	{
		r.OPTIONS("/worker-breakdown", OptionsWorkerBreakdown)
		r.GET("/worker-breakdown", GetWorkerBreakdown)
	}
	{
		r.OPTIONS("/budget-breakdown", OptionsBudgetBreakdown)
		r.POST("/budget-breakdown", CreateBudgetBreakdown)
	}
	{
		r.OPTIONS("/export", OptionsExport)
		r.GET("/export", GetExport)
	}
}

// reportService returns a report service on the database, configured
// from the environment.
func reportService() *report.Service {
	config := report.ConfigFromEnv()
	return report.NewService(models.NewStore(models.DB), config.Location, config.Locale)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/rollup [options]
func OptionsRollup(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get rollup
// @Description	Returns income, cost, profit, margin and budget consumption of an organization or site
// @Tags			Reports
// @Produce		json
// @Success		200				{object}	RollupResponse
// @Failure		400				{object}	RollupResponse
// @Failure		404				{object}	RollupResponse
// @Failure		500				{object}	RollupResponse
// @Param			organization	query		string	true	"ID of the organization"
// @Param			site			query		string	false	"ID of a site of the organization"
// @Param			from			query		string	false	"First day of the time window, YYYY-MM-DD"
// @Param			until			query		string	false	"Last day of the time window, YYYY-MM-DD"
// @Router			/v1/rollup [get]
func GetRollup(c *gin.Context) {
	var query ReportQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RollupResponse{
			Error: &s,
		})
		return
	}

	scope, err := query.scope()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RollupResponse{
			Error: &s,
		})
		return
	}

	rollup, err := reportService().Rollup(c.Request.Context(), scope)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RollupResponse{
			Error: &s,
		})
		return
	}

	rollup = displayRollup(rollup)
	c.JSON(http.StatusOK, RollupResponse{Data: &rollup})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/series [options]
func OptionsSeries(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get series
// @Description	Returns income and cost per month, or running totals per day down-sampled for charting
// @Tags			Reports
// @Produce		json
// @Success		200				{object}	SeriesResponse
// @Failure		400				{object}	SeriesResponse
// @Failure		404				{object}	SeriesResponse
// @Failure		500				{object}	SeriesResponse
// @Param			organization	query		string	true	"ID of the organization"
// @Param			site			query		string	false	"ID of a site of the organization"
// @Param			mode			query		string	false	"monthly or cumulative. Defaults to monthly"
// @Param			from			query		string	false	"First day of the series, YYYY-MM-DD. Defaults to the earliest record"
// @Param			until			query		string	false	"Last day of the series, YYYY-MM-DD. Defaults to today"
// @Router			/v1/series [get]
func GetSeries(c *gin.Context) {
	var query SeriesQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SeriesResponse{
			Error: &s,
		})
		return
	}

	scope, err := query.scope()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SeriesResponse{
			Error: &s,
		})
		return
	}

	series, err := reportService().Series(c.Request.Context(), scope, query.mode())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SeriesResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SeriesResponse{Data: &series})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/worker-breakdown [options]
func OptionsWorkerBreakdown(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get worker breakdown
// @Description	Returns hours, labor cost and share of the total labor cost per worker
// @Tags			Reports
// @Produce		json
// @Success		200				{object}	WorkerBreakdownResponse
// @Failure		400				{object}	WorkerBreakdownResponse
// @Failure		404				{object}	WorkerBreakdownResponse
// @Failure		500				{object}	WorkerBreakdownResponse
// @Param			organization	query		string	true	"ID of the organization"
// @Param			site			query		string	false	"ID of a site of the organization"
// @Param			from			query		string	false	"First day of the time window, YYYY-MM-DD"
// @Param			until			query		string	false	"Last day of the time window, YYYY-MM-DD"
// @Param			worker			query		string	false	"Glob pattern for worker names, e.g. 'Jan*'"
// @Router			/v1/worker-breakdown [get]
func GetWorkerBreakdown(c *gin.Context) {
	var query WorkerBreakdownQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WorkerBreakdownResponse{
			Error: &s,
		})
		return
	}

	scope, err := query.scope()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WorkerBreakdownResponse{
			Error: &s,
		})
		return
	}

	shares, err := reportService().Workers(c.Request.Context(), scope, query.Worker)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WorkerBreakdownResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, WorkerBreakdownResponse{Data: displayShares(shares)})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/budget-breakdown [options]
func OptionsBudgetBreakdown(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Calculate budget breakdown
// @Description	Calculates subtotal, VAT and total for budget line items without storing anything
// @Tags			Reports
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetBreakdownResponse
// @Failure		400		{object}	BudgetBreakdownResponse
// @Param			budget	body		BudgetBreakdownRequest	true	"Budget line items and VAT"
// @Router			/v1/budget-breakdown [post]
func CreateBudgetBreakdown(c *gin.Context) {
	var request BudgetBreakdownRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetBreakdownResponse{
			Error: &s,
		})
		return
	}

	breakdown := reportService().Budget(request.Items, request.VATEnabled, request.VATRate)
	c.JSON(http.StatusOK, BudgetBreakdownResponse{Data: &breakdown})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export report
// @Description	Returns rollup, series and worker breakdown of an organization or site as XLSX workbook
// @Tags			Reports
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			organization	query		string	true	"ID of the organization"
// @Param			site			query		string	false	"ID of a site of the organization"
// @Param			mode			query		string	false	"Series mode, monthly or cumulative. Defaults to monthly"
// @Param			from			query		string	false	"First day of the time window, YYYY-MM-DD"
// @Param			until			query		string	false	"Last day of the time window, YYYY-MM-DD"
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	var query SeriesQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	scope, err := query.scope()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	snapshot, err := reportService().Report(c.Request.Context(), scope, query.mode())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	snapshot.Rollup = displayRollup(snapshot.Rollup)
	snapshot.Workers = displayShares(snapshot.Workers)

	f, err := export.Workbook(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("Creating workbook")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", "attachment; filename="+export.Filename(snapshot))
	c.Header("Content-Type", export.ContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("Writing workbook")
	}
}
