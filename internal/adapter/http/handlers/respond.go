package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/pkg/apierrors"
)

// respondError maps a service failure to its HTTP status and translated
// message. Unexpected errors are logged and surface as 500; their message is
// masked outside debug mode so internals do not leak.
func respondError(c *gin.Context, err error, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	var appErr *apierrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Kind.StatusCode(), apierrors.CreateError(appErr.MsgKey, lang))
		return
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)

	body := apierrors.CreateError(apierrors.MsgInternalError, lang)
	if gin.Mode() != gin.ReleaseMode {
		body.Message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// respondValidationError writes the 400 envelope with field-level details.
func respondValidationError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, validation.FieldErrors(err)))
}
