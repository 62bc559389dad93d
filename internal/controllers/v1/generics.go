package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
	"gorm.io/gorm"
)

type resourceModel interface {
	models.Organization | models.Site | models.Worker | models.Transaction | models.Material | models.AttendanceLog
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resourceModel](c *gin.Context, resource R) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// update sets the fields of resource listed in fields to their values in
// patch and saves the resource.
//
// The resource is saved as a whole after the update so that the BeforeSave
// hooks validate and derive from the final values.
func update[R resourceModel](resource *R, fields []any, patch R) error {
	return models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(resource).Select("", fields...).Updates(patch).Error
		if err != nil {
			return err
		}

		err = tx.First(resource).Error
		if err != nil {
			return err
		}

		return tx.Save(resource).Error
	})
}
