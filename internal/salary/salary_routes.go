package salary

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mrxguptaa/payroll/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	salaries.Use(middleware.ContextLogger(logger))
	{
		salaries.GET("/sheet",
			middleware.RateLimitByUser(2, 5),
			handler.GetSheet,
		)

		salaries.POST("/sheet/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.Idempotency(rdb),
			handler.RequestExport,
		)
	}
}
