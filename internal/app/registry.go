package app

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mrxguptaa/payroll/internal/advance"
	"github.com/mrxguptaa/payroll/internal/attendance"
	"github.com/mrxguptaa/payroll/internal/auth"
	"github.com/mrxguptaa/payroll/internal/employee"
	"github.com/mrxguptaa/payroll/internal/messaging/kafka"
	"github.com/mrxguptaa/payroll/internal/salary"
	"github.com/mrxguptaa/payroll/internal/shared/counter"
)

// employeeDirectory adapts the employee repository to the month-scoped
// lookup the salary runner expects.
type employeeDirectory struct {
	repo employee.Repository
}

func (d *employeeDirectory) ActiveForMonth(ctx context.Context, org string, year int, month time.Month) ([]employee.Employee, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	return d.repo.FindActiveForMonth(ctx, org, monthStart, monthEnd)
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	advanceRepo := advance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(db, authRepo)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo)
	advanceService := advance.NewService(db, advanceRepo, employeeRepo)

	runner := salary.NewRunner(
		&employeeDirectory{repo: employeeRepo},
		attendanceRepo,
		advanceRepo,
	)
	salaryService := salary.NewService(
		db,
		runner,
		counterRepo,
		outboxRepo,
		rdb,
		os.Getenv("SHEET_STORAGE_DIR"),
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	advanceHandler := advance.NewHandler(advanceService)
	salaryHandler := salary.NewHandler(salaryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rdb, logger)
		advance.RegisterRoutes(api, advanceHandler, rdb, logger)
		salary.RegisterRoutes(api, salaryHandler, rdb, logger)
	}

	return nil
}
