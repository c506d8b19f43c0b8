package api

import (
	"errors"
	"io"
	"net/http"

	"showroom-scheduler/internal/handler/httperr"
	"showroom-scheduler/internal/handler/middleware"
	"showroom-scheduler/internal/handler/validation"
	"showroom-scheduler/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("authenticated actor missing from context")

// bindJSON reports rule violations as 422 and malformed bodies as 400.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abortBinding(c, err)
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body, chunked or not, for endpoints whose fields are all optional.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		abortBinding(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		abortBinding(c, err)
		return false
	}
	return true
}

func abortBinding(c *gin.Context, err error) {
	if details := validation.Details(err); details != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", details)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}

func actorOrAbort(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
