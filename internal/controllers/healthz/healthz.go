package healthz

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/models"
)

var errNotMigrated = errors.New("the database schema is not migrated")

type httpError struct {
	Error string `json:"error" example:"sql: database is closed"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error. The backend is healthy when the database is reachable and migrated.
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if err := check(c); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func check(c *gin.Context) error {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		return err
	}

	// Reports read from every table, the attendance logs are migrated last
	if !models.DB.Migrator().HasTable(&models.AttendanceLog{}) {
		return errNotMigrated
	}

	return nil
}
