package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
)

func RegisterAttendanceLogRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAttendanceLogs)
		r.GET("", GetAttendanceLogs)
		r.POST("", CreateAttendanceLogs)
	}
	{
		r.OPTIONS("/:id", OptionsAttendanceLogDetail)
		r.GET("/:id", GetAttendanceLog)
		r.PATCH("/:id", UpdateAttendanceLog)
		r.DELETE("/:id", DeleteAttendanceLog)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AttendanceLogs
// @Success		204
// @Router			/v1/attendance-logs [options]
func OptionsAttendanceLogs(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AttendanceLogs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/attendance-logs/{id} [options]
func OptionsAttendanceLogDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.AttendanceLog{})
}

// @Summary		Create attendance logs
// @Description	Creates new attendance logs
// @Tags			AttendanceLogs
// @Produce		json
// @Success		201		{object}	AttendanceLogCreateResponse
// @Failure		400		{object}	AttendanceLogCreateResponse
// @Failure		404		{object}	AttendanceLogCreateResponse
// @Failure		500		{object}	AttendanceLogCreateResponse
// @Param			logs	body		[]AttendanceLogEditable	true	"AttendanceLogs"
// @Router			/v1/attendance-logs [post]
func CreateAttendanceLogs(c *gin.Context) {
	var logs []AttendanceLogEditable

	err := httputil.BindData(c, &logs)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceLogCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AttendanceLogCreateResponse{}

	for _, create := range logs {
		log := create.model()
		err = models.DB.Create(&log).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newAttendanceLog(c, log)
		r.Data = append(r.Data, AttendanceLogResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get attendance logs
// @Description	Returns a list of attendance logs
// @Tags			AttendanceLogs
// @Produce		json
// @Success		200	{object}	AttendanceLogListResponse
// @Failure		400	{object}	AttendanceLogListResponse
// @Failure		500	{object}	AttendanceLogListResponse
// @Router			/v1/attendance-logs [get]
// @Param			organization	query	string	false	"Filter by organization ID"
// @Param			site			query	string	false	"Filter by site ID"
// @Param			worker			query	string	false	"Filter by worker ID"
// @Param			paymentType		query	string	false	"Filter by payment type, hourly or fixed"
// @Param			note			query	string	false	"Filter by note"
// @Param			from			query	string	false	"Logs on and after this date, YYYY-MM-DD"
// @Param			until			query	string	false	"Logs on and before this date, YYYY-MM-DD"
// @Param			offset			query	uint	false	"The offset of the first attendance log returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of attendance logs to return. Defaults to 50."
func GetAttendanceLogs(c *gin.Context) {
	var filter AttendanceLogQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AttendanceLogListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("attendance_logs.date DESC, attendance_logs.created_at DESC").
		Where(&where, queryFields...)

	q = organizationFilter(q, "attendance_logs", filter.OrganizationID)
	q = likeFilter(q, setFields, "Note", "attendance_logs.note", filter.Note)
	q = dateFilter(q, "attendance_logs.date", filter.From, filter.Until)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var logs []models.AttendanceLog
	err := q.Find(&logs).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AttendanceLogListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AttendanceLogListResponse{
			Error: &s,
		})
		return
	}

	data := make([]AttendanceLog, 0, len(logs))
	for _, log := range logs {
		data = append(data, newAttendanceLog(c, log))
	}

	c.JSON(http.StatusOK, AttendanceLogListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get attendance log
// @Description	Returns a specific attendance log
// @Tags			AttendanceLogs
// @Produce		json
// @Success		200	{object}	AttendanceLogResponse
// @Failure		400	{object}	AttendanceLogResponse
// @Failure		404	{object}	AttendanceLogResponse
// @Failure		500	{object}	AttendanceLogResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/attendance-logs/{id} [get]
func GetAttendanceLog(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceLogResponse{
			Error: &e,
		})
		return
	}

	var log models.AttendanceLog
	err = models.DB.First(&log, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceLogResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAttendanceLog(c, log)
	c.JSON(http.StatusOK, AttendanceLogResponse{Data: &apiResource})
}

// @Summary		Update attendance log
// @Description	Updates an existing attendance log. Only values to be updated need to be specified. The rate snapshot is only set automatically on creation.
// @Tags			AttendanceLogs
// @Accept			json
// @Produce		json
// @Success		200	{object}	AttendanceLogResponse
// @Failure		400	{object}	AttendanceLogResponse
// @Failure		404	{object}	AttendanceLogResponse
// @Failure		500	{object}	AttendanceLogResponse
// @Param			id	path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			log	body		AttendanceLogEditable	true	"Attendance log"
// @Router			/v1/attendance-logs/{id} [patch]
func UpdateAttendanceLog(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceLogResponse{
			Error: &e,
		})
		return
	}

	var log models.AttendanceLog
	err = models.DB.First(&log, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceLogResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, AttendanceLogEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceLogResponse{
			Error: &e,
		})
		return
	}

	var data AttendanceLogEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceLogResponse{
			Error: &e,
		})
		return
	}

	err = update(&log, updateFields, data.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceLogResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAttendanceLog(c, log)
	c.JSON(http.StatusOK, AttendanceLogResponse{Data: &apiResource})
}

// @Summary		Delete attendance log
// @Description	Deletes an attendance log
// @Tags			AttendanceLogs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/attendance-logs/{id} [delete]
func DeleteAttendanceLog(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var log models.AttendanceLog
	err = models.DB.First(&log, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&log).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
