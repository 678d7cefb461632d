package projection

import (
	"errors"
	"net/http"

	"github.com/aevon-lab/adperf/internal/core/adperf"
	httperr "github.com/aevon-lab/adperf/internal/core/errors"
	"github.com/aevon-lab/adperf/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the report API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/reports/roas", s.HandleROASReport)
}

// HandleROASReport handles GET /v1/reports/roas
// Query parameters: country, priority (both optional)
func (s *Service) HandleROASReport(c *gin.Context) {
	var filter Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	report, err := s.Build(c.Request.Context(), filter)
	if err != nil {
		var malformed *adperf.MalformedAliasError
		switch {
		case errors.As(err, &malformed):
			c.JSON(http.StatusUnprocessableEntity, httperr.ErrorResponse{
				ErrorType: httperr.HttpMalformedAliasError,
				Message:   "Ad group alias does not have the expected segments",
				Details:   err.Error(),
			})
		case errors.Is(err, storage.ErrUndefinedTable):
			c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
				ErrorType: httperr.HttpSchemaMissingError,
				Message:   "Tables have not been created yet",
			})
		default:
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   "Failed to build report",
			})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
