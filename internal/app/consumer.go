package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/mrxguptaa/payroll/internal/advance"
	"github.com/mrxguptaa/payroll/internal/attendance"
	"github.com/mrxguptaa/payroll/internal/employee"
	"github.com/mrxguptaa/payroll/internal/events"
	"github.com/mrxguptaa/payroll/internal/messaging/kafka"
	"github.com/mrxguptaa/payroll/internal/messaging/kafka/consumer"
	"github.com/mrxguptaa/payroll/internal/salary"
	"github.com/mrxguptaa/payroll/internal/shared/connection"
	"github.com/mrxguptaa/payroll/internal/shared/counter"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	advanceRepo := advance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	runner := salary.NewRunner(
		&employeeDirectory{repo: employeeRepo},
		attendanceRepo,
		advanceRepo,
	)
	salaryService := salary.NewService(
		sqlDB,
		runner,
		counterRepo,
		outboxRepo,
		nil,
		os.Getenv("SHEET_STORAGE_DIR"),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.SalarySheetRequestedTopic,
		GroupID:        "payroll-salary-sheet",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeSalarySheetRequested(ctx, reader, salaryService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
