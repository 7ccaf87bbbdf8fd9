package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/modules/serializer"
	"github.com/seed-planner/seed-planner-api/internal/modules/service"
	"gorm.io/gorm"
)

// pathID parses a numeric id path parameter.
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondErr maps service/repo errors onto the error taxonomy:
// missing rows are 404s, validation failures are 400s, everything
// else is a 500. Upsert conflicts never reach here; the storage layer
// absorbs them.
func respondErr(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFound(notFoundMsg))
	case errors.Is(err, service.ErrMissingPlant),
		errors.Is(err, service.ErrOutOfBounds),
		errors.Is(err, service.ErrInvalidOffset):
		c.JSON(http.StatusBadRequest, serializer.Err(err.Error(), nil))
	default:
		c.JSON(http.StatusInternalServerError, serializer.InternalErr(err))
	}
}
