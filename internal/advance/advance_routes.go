package advance

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
	advances := r.Group("/advances")
	advances.Use(middleware.AuthMiddleware())
	advances.Use(middleware.ContextLogger(logger))
	{
		advances.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		advances.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			handler.GetForEmployee,
		)

		advances.GET("/month",
			middleware.RateLimitByUser(3, 10),
			handler.GetForMonth,
		)

		advances.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			handler.Delete,
		)
	}
}
