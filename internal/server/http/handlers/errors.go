package handlers

import (
	"net/http"

	cr "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/server/http/dto"
)

const internalErrorDetail = "internal server error"

// writeError maps an error kind to its status. Unknown errors are attached
// to the context for the request logger and reported without details.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case cr.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case cr.Is(err, domainErrors.ErrExpired):
		status = http.StatusGone
	case cr.Is(err, domainErrors.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: internalErrorDetail})
		return
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: err.Error()})
}

func badRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Detail: detail})
}
