package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-booking/services"
	"hotel-booking/utils"
)

// respondError maps service errors onto HTTP statuses. Anything unexpected
// is logged and hidden behind a 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case services.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case services.IsNotFoundError(err):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

// paramID reads a positive :id path parameter.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
