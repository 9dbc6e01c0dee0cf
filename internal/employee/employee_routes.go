package employee

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrxguptaa/payroll/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			handler.GetOptions,
		)

		employees.GET("/orgs",
			middleware.RateLimitByUser(5, 20),
			handler.GetOrgs,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		employees.PATCH("/:id/leave",
			middleware.RateLimitByUser(0.5, 2),
			handler.MarkLeft,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			handler.Delete,
		)
	}
}
