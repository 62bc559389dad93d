package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
)

func RegisterOrganizationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsOrganizations)
		r.GET("", GetOrganizations)
		r.POST("", CreateOrganizations)
	}
	{
		r.OPTIONS("/:id", OptionsOrganizationDetail)
		r.GET("/:id", GetOrganization)
		r.PATCH("/:id", UpdateOrganization)
		r.DELETE("/:id", DeleteOrganization)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Router			/v1/organizations [options]
func OptionsOrganizations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [options]
func OptionsOrganizationDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Organization{})
}

// @Summary		Create organizations
// @Description	Creates new organizations
// @Tags			Organizations
// @Produce		json
// @Success		201				{object}	OrganizationCreateResponse
// @Failure		400				{object}	OrganizationCreateResponse
// @Failure		404				{object}	OrganizationCreateResponse
// @Failure		500				{object}	OrganizationCreateResponse
// @Param			organizations	body		[]OrganizationEditable	true	"Organizations"
// @Router			/v1/organizations [post]
func CreateOrganizations(c *gin.Context) {
	var organizations []OrganizationEditable

	err := httputil.BindData(c, &organizations)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := OrganizationCreateResponse{}

	for _, create := range organizations {
		organization := create.model()
		err = models.DB.Create(&organization).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newOrganization(c, organization)
		r.Data = append(r.Data, OrganizationResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get organizations
// @Description	Returns a list of organizations
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationListResponse
// @Failure		400	{object}	OrganizationListResponse
// @Failure		500	{object}	OrganizationListResponse
// @Router			/v1/organizations [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			locale		query	string	false	"Filter by locale"
// @Param			offset		query	uint	false	"The offset of the first organization returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of organizations to return. Defaults to 50."
func GetOrganizations(c *gin.Context) {
	var filter OrganizationQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, OrganizationListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("organizations.name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, "organizations", filter.Name, filter.Note, filter.Search)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var organizations []models.Organization
	err := q.Find(&organizations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Organization, 0, len(organizations))
	for _, organization := range organizations {
		data = append(data, newOrganization(c, organization))
	}

	c.JSON(http.StatusOK, OrganizationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get organization
// @Description	Returns a specific organization
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationResponse
// @Failure		400	{object}	OrganizationResponse
// @Failure		404	{object}	OrganizationResponse
// @Failure		500	{object}	OrganizationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [get]
func GetOrganization(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	var organization models.Organization
	err = models.DB.First(&organization, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newOrganization(c, organization)
	c.JSON(http.StatusOK, OrganizationResponse{Data: &apiResource})
}

// @Summary		Update organization
// @Description	Updates an existing organization. Only values to be updated need to be specified.
// @Tags			Organizations
// @Accept			json
// @Produce		json
// @Success		200				{object}	OrganizationResponse
// @Failure		400				{object}	OrganizationResponse
// @Failure		404				{object}	OrganizationResponse
// @Failure		500				{object}	OrganizationResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			organization	body		OrganizationEditable	true	"Organization"
// @Router			/v1/organizations/{id} [patch]
func UpdateOrganization(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	var organization models.Organization
	err = models.DB.First(&organization, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, OrganizationEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	var data OrganizationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	err = update(&organization, updateFields, data.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newOrganization(c, organization)
	c.JSON(http.StatusOK, OrganizationResponse{Data: &apiResource})
}

// @Summary		Delete organization
// @Description	Deletes an organization
// @Tags			Organizations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [delete]
func DeleteOrganization(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var organization models.Organization
	err = models.DB.First(&organization, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&organization).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
