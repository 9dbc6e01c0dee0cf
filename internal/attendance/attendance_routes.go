package attendance

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
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.POST("/mark",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Mark,
		)

		attendance.GET("/sheet",
			middleware.RateLimitByUser(3, 10),
			handler.DaySheet,
		)

		attendance.GET("/matrix",
			middleware.RateLimitByUser(3, 10),
			handler.MonthlyMatrix,
		)

		attendance.GET("/absent",
			middleware.RateLimitByUser(3, 10),
			handler.AbsentList,
		)
	}
}
