package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
)

func RegisterSiteRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSites)
		r.GET("", GetSites)
		r.POST("", CreateSites)
	}
	{
		r.OPTIONS("/:id", OptionsSiteDetail)
		r.GET("/:id", GetSite)
		r.PATCH("/:id", UpdateSite)
		r.DELETE("/:id", DeleteSite)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sites
// @Success		204
// @Router			/v1/sites [options]
func OptionsSites(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sites
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sites/{id} [options]
func OptionsSiteDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Site{})
}

// @Summary		Create sites
// @Description	Creates new sites
// @Tags			Sites
// @Produce		json
// @Success		201		{object}	SiteCreateResponse
// @Failure		400		{object}	SiteCreateResponse
// @Failure		404		{object}	SiteCreateResponse
// @Failure		500		{object}	SiteCreateResponse
// @Param			sites	body		[]SiteEditable	true	"Sites"
// @Router			/v1/sites [post]
func CreateSites(c *gin.Context) {
	var sites []SiteEditable

	err := httputil.BindData(c, &sites)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SiteCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SiteCreateResponse{}

	for _, create := range sites {
		site := create.model()
		err = models.DB.Create(&site).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newSite(c, site)
		r.Data = append(r.Data, SiteResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get sites
// @Description	Returns a list of sites
// @Tags			Sites
// @Produce		json
// @Success		200	{object}	SiteListResponse
// @Failure		400	{object}	SiteListResponse
// @Failure		500	{object}	SiteListResponse
// @Router			/v1/sites [get]
// @Param			organization	query	string	false	"Filter by organization ID"
// @Param			name			query	string	false	"Filter by name"
// @Param			note			query	string	false	"Filter by note"
// @Param			search			query	string	false	"Search for this text in name and note"
// @Param			address			query	string	false	"Filter by address"
// @Param			vatEnabled		query	bool	false	"Is VAT enabled for the site?"
// @Param			offset			query	uint	false	"The offset of the first site returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of sites to return. Defaults to 50."
func GetSites(c *gin.Context) {
	var filter SiteQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SiteListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("sites.name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, "sites", filter.Name, filter.Note, filter.Search)
	q = likeFilter(q, setFields, "Address", "sites.address", filter.Address)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var sites []models.Site
	err := q.Find(&sites).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SiteListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SiteListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Site, 0, len(sites))
	for _, site := range sites {
		data = append(data, newSite(c, site))
	}

	c.JSON(http.StatusOK, SiteListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get site
// @Description	Returns a specific site
// @Tags			Sites
// @Produce		json
// @Success		200	{object}	SiteResponse
// @Failure		400	{object}	SiteResponse
// @Failure		404	{object}	SiteResponse
// @Failure		500	{object}	SiteResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sites/{id} [get]
func GetSite(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SiteResponse{
			Error: &e,
		})
		return
	}

	var site models.Site
	err = models.DB.First(&site, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SiteResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSite(c, site)
	c.JSON(http.StatusOK, SiteResponse{Data: &apiResource})
}

// @Summary		Update site
// @Description	Updates an existing site. Only values to be updated need to be specified. The budget is recomputed from the budget items on every update.
// @Tags			Sites
// @Accept			json
// @Produce		json
// @Success		200		{object}	SiteResponse
// @Failure		400		{object}	SiteResponse
// @Failure		404		{object}	SiteResponse
// @Failure		500		{object}	SiteResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			site	body		SiteEditable	true	"Site"
// @Router			/v1/sites/{id} [patch]
func UpdateSite(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SiteResponse{
			Error: &e,
		})
		return
	}

	var site models.Site
	err = models.DB.First(&site, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SiteResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SiteEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SiteResponse{
			Error: &e,
		})
		return
	}

	var data SiteEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SiteResponse{
			Error: &e,
		})
		return
	}

	err = update(&site, updateFields, data.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SiteResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSite(c, site)
	c.JSON(http.StatusOK, SiteResponse{Data: &apiResource})
}

// @Summary		Delete site
// @Description	Deletes a site
// @Tags			Sites
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sites/{id} [delete]
func DeleteSite(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var site models.Site
	err = models.DB.First(&site, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&site).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
