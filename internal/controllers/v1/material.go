package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
)

func RegisterMaterialRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMaterials)
		r.GET("", GetMaterials)
		r.POST("", CreateMaterials)
	}
	{
		r.OPTIONS("/:id", OptionsMaterialDetail)
		r.GET("/:id", GetMaterial)
		r.PATCH("/:id", UpdateMaterial)
		r.DELETE("/:id", DeleteMaterial)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Materials
// @Success		204
// @Router			/v1/materials [options]
func OptionsMaterials(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Materials
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/materials/{id} [options]
func OptionsMaterialDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Material{})
}

// @Summary		Create materials
// @Description	Creates new materials
// @Tags			Materials
// @Produce		json
// @Success		201			{object}	MaterialCreateResponse
// @Failure		400			{object}	MaterialCreateResponse
// @Failure		404			{object}	MaterialCreateResponse
// @Failure		500			{object}	MaterialCreateResponse
// @Param			materials	body		[]MaterialEditable	true	"Materials"
// @Router			/v1/materials [post]
func CreateMaterials(c *gin.Context) {
	var materials []MaterialEditable

	err := httputil.BindData(c, &materials)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterialCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MaterialCreateResponse{}

	for _, create := range materials {
		material := create.model()
		err = models.DB.Create(&material).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newMaterial(c, material)
		r.Data = append(r.Data, MaterialResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get materials
// @Description	Returns a list of materials
// @Tags			Materials
// @Produce		json
// @Success		200	{object}	MaterialListResponse
// @Failure		400	{object}	MaterialListResponse
// @Failure		500	{object}	MaterialListResponse
// @Router			/v1/materials [get]
// @Param			organization	query	string	false	"Filter by organization ID"
// @Param			site			query	string	false	"Filter by site ID"
// @Param			name			query	string	false	"Filter by name"
// @Param			from			query	string	false	"Purchases on and after this date, YYYY-MM-DD"
// @Param			until			query	string	false	"Purchases on and before this date, YYYY-MM-DD"
// @Param			offset			query	uint	false	"The offset of the first material purchase returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of material purchases to return. Defaults to 50."
func GetMaterials(c *gin.Context) {
	var filter MaterialQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MaterialListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("materials.purchase_date DESC, materials.created_at DESC").
		Where(&where, queryFields...)

	q = organizationFilter(q, "materials", filter.OrganizationID)
	q = likeFilter(q, setFields, "Name", "materials.name", filter.Name)
	q = dateFilter(q, "materials.purchase_date", filter.From, filter.Until)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var materials []models.Material
	err := q.Find(&materials).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaterialListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MaterialListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Material, 0, len(materials))
	for _, material := range materials {
		data = append(data, newMaterial(c, material))
	}

	c.JSON(http.StatusOK, MaterialListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get material purchase
// @Description	Returns a specific material purchase
// @Tags			Materials
// @Produce		json
// @Success		200	{object}	MaterialResponse
// @Failure		400	{object}	MaterialResponse
// @Failure		404	{object}	MaterialResponse
// @Failure		500	{object}	MaterialResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/materials/{id} [get]
func GetMaterial(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterialResponse{
			Error: &e,
		})
		return
	}

	var material models.Material
	err = models.DB.First(&material, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterialResponse{
			Error: &e,
		})
		return
	}

	apiResource := newMaterial(c, material)
	c.JSON(http.StatusOK, MaterialResponse{Data: &apiResource})
}

// @Summary		Update material purchase
// @Description	Updates an existing material purchase. Only values to be updated need to be specified. Set totalPrice to 0 to derive it from quantity and unit price.
// @Tags			Materials
// @Accept			json
// @Produce		json
// @Success		200			{object}	MaterialResponse
// @Failure		400			{object}	MaterialResponse
// @Failure		404			{object}	MaterialResponse
// @Failure		500			{object}	MaterialResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			material	body		MaterialEditable	true	"Material"
// @Router			/v1/materials/{id} [patch]
func UpdateMaterial(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterialResponse{
			Error: &e,
		})
		return
	}

	var material models.Material
	err = models.DB.First(&material, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterialResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, MaterialEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterialResponse{
			Error: &e,
		})
		return
	}

	var data MaterialEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterialResponse{
			Error: &e,
		})
		return
	}

	err = update(&material, updateFields, data.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterialResponse{
			Error: &e,
		})
		return
	}

	apiResource := newMaterial(c, material)
	c.JSON(http.StatusOK, MaterialResponse{Data: &apiResource})
}

// @Summary		Delete material purchase
// @Description	Deletes a material purchase
// @Tags			Materials
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/materials/{id} [delete]
func DeleteMaterial(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var material models.Material
	err = models.DB.First(&material, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&material).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
