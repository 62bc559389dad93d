package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
)

func RegisterWorkerRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsWorkers)
		r.GET("", GetWorkers)
		r.POST("", CreateWorkers)
	}
	{
		r.OPTIONS("/:id", OptionsWorkerDetail)
		r.GET("/:id", GetWorker)
		r.PATCH("/:id", UpdateWorker)
		r.DELETE("/:id", DeleteWorker)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Workers
// @Success		204
// @Router			/v1/workers [options]
func OptionsWorkers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Workers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/workers/{id} [options]
func OptionsWorkerDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Worker{})
}

// @Summary		Create workers
// @Description	Creates new workers
// @Tags			Workers
// @Produce		json
// @Success		201		{object}	WorkerCreateResponse
// @Failure		400		{object}	WorkerCreateResponse
// @Failure		404		{object}	WorkerCreateResponse
// @Failure		500		{object}	WorkerCreateResponse
// @Param			workers	body		[]WorkerEditable	true	"Workers"
// @Router			/v1/workers [post]
func CreateWorkers(c *gin.Context) {
	var workers []WorkerEditable

	err := httputil.BindData(c, &workers)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkerCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WorkerCreateResponse{}

	for _, create := range workers {
		worker := create.model()
		err = models.DB.Create(&worker).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newWorker(c, worker)
		r.Data = append(r.Data, WorkerResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get workers
// @Description	Returns a list of workers
// @Tags			Workers
// @Produce		json
// @Success		200	{object}	WorkerListResponse
// @Failure		400	{object}	WorkerListResponse
// @Failure		500	{object}	WorkerListResponse
// @Router			/v1/workers [get]
// @Param			organization			query	string	false	"Filter by organization ID"
// @Param			name					query	string	false	"Filter by name"
// @Param			hourlyRateLessOrEqual	query	string	false	"Hourly rate less than or equal to this"
// @Param			hourlyRateMoreOrEqual	query	string	false	"Hourly rate more than or equal to this"
// @Param			offset					query	uint	false	"The offset of the first worker returned. Defaults to 0."
// @Param			limit					query	int		false	"Maximum number of workers to return. Defaults to 50."
func GetWorkers(c *gin.Context) {
	var filter WorkerQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WorkerListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("workers.name ASC").
		Where(&where, queryFields...)

	q = likeFilter(q, setFields, "Name", "workers.name", filter.Name)

	if !filter.HourlyRateLessOrEqual.IsZero() {
		q = q.Where("workers.hourly_rate <= ?", filter.HourlyRateLessOrEqual)
	}

	if !filter.HourlyRateMoreOrEqual.IsZero() {
		q = q.Where("workers.hourly_rate >= ?", filter.HourlyRateMoreOrEqual)
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var workers []models.Worker
	err := q.Find(&workers).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WorkerListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WorkerListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Worker, 0, len(workers))
	for _, worker := range workers {
		data = append(data, newWorker(c, worker))
	}

	c.JSON(http.StatusOK, WorkerListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get worker
// @Description	Returns a specific worker
// @Tags			Workers
// @Produce		json
// @Success		200	{object}	WorkerResponse
// @Failure		400	{object}	WorkerResponse
// @Failure		404	{object}	WorkerResponse
// @Failure		500	{object}	WorkerResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/workers/{id} [get]
func GetWorker(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkerResponse{
			Error: &e,
		})
		return
	}

	var worker models.Worker
	err = models.DB.First(&worker, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkerResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWorker(c, worker)
	c.JSON(http.StatusOK, WorkerResponse{Data: &apiResource})
}

// @Summary		Update worker
// @Description	Updates an existing worker. Only values to be updated need to be specified. Changing the hourly rate does not change the cost of existing attendance logs.
// @Tags			Workers
// @Accept			json
// @Produce		json
// @Success		200		{object}	WorkerResponse
// @Failure		400		{object}	WorkerResponse
// @Failure		404		{object}	WorkerResponse
// @Failure		500		{object}	WorkerResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			worker	body		WorkerEditable	true	"Worker"
// @Router			/v1/workers/{id} [patch]
func UpdateWorker(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkerResponse{
			Error: &e,
		})
		return
	}

	var worker models.Worker
	err = models.DB.First(&worker, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkerResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, WorkerEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkerResponse{
			Error: &e,
		})
		return
	}

	var data WorkerEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkerResponse{
			Error: &e,
		})
		return
	}

	err = update(&worker, updateFields, data.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkerResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWorker(c, worker)
	c.JSON(http.StatusOK, WorkerResponse{Data: &apiResource})
}

// @Summary		Delete worker
// @Description	Deletes a worker
// @Tags			Workers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/workers/{id} [delete]
func DeleteWorker(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var worker models.Worker
	err = models.DB.First(&worker, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&worker).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
