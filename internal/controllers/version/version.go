package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebook/backend/internal/httputil"
	"github.com/sitebook/backend/internal/report"
)

var apiVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version  string `json:"version" example:"1.1.0"`          // the running version of the Sitebook backend
	Timezone string `json:"timezone" example:"Europe/Warsaw"` // Time zone that defines calendar days for reports
	Language string `json:"language" example:"pl"`            // Default language of period labels
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	apiVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and the defaults reports are computed with
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	config := report.ConfigFromEnv()

	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version:  apiVersion,
			Timezone: config.Location.String(),
			Language: config.Language(),
		},
	})
}
