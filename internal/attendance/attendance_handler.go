package attendance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	attendanceerrors "github.com/mrxguptaa/payroll/internal/attendance/errors"
	"github.com/mrxguptaa/payroll/internal/shared/apperror"
	"github.com/mrxguptaa/payroll/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mark(c *gin.Context) {
	h.logger.Debug("http mark attendance")
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http mark attendance validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.MarkForDate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DaySheet(c *gin.Context) {
	org := c.Query("org")
	date := c.Query("date")
	h.logger.Debug("http day sheet", zap.String("org", org), zap.String("date", date))

	resp, err := h.service.DaySheet(c.Request.Context(), org, date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MonthlyMatrix(c *gin.Context) {
	org := c.Query("org")
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		h.writeServiceError(c, attendanceerrors.ErrInvalidMonth)
		return
	}
	h.logger.Debug("http monthly matrix",
		zap.String("org", org),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	resp, err := h.service.MonthlyMatrix(c.Request.Context(), org, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AbsentList(c *gin.Context) {
	org := c.Query("org")
	date := c.Query("date")
	h.logger.Debug("http absent list", zap.String("org", org), zap.String("date", date))

	resp, err := h.service.AbsentList(c.Request.Context(), org, date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
