package controllers

import (
	"net/http"

	"atelier-backend/services"
	"atelier-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps ledger error kinds to HTTP statuses.
// Validation -> 400, NotFound -> 404, Conflict -> 409, anything else 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case services.IsValidation(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case services.IsConflict(err):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.GetLogger().Error(fallback, zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
