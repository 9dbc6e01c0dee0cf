package salary

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	salaryerrors "github.com/mrxguptaa/payroll/internal/salary/errors"
	"github.com/mrxguptaa/payroll/internal/shared/apperror"
	"github.com/mrxguptaa/payroll/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("salary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("salary request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetSheet(c *gin.Context) {
	org := c.Query("org")
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		h.writeServiceError(c, salaryerrors.ErrInvalidPeriod)
		return
	}
	h.logger.Debug("http get salary sheet",
		zap.String("org", org),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	resp, err := h.service.GetSheet(c.Request.Context(), org, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RequestExport(c *gin.Context) {
	h.logger.Debug("http export salary sheet")
	var req ExportSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http export salary sheet validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RequestExport(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, resp, nil)
}
