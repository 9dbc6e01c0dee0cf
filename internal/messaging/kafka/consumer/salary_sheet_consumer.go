package consumer

import (
	"context"
	"encoding/json"

	"github.com/mrxguptaa/payroll/internal/events"
	"github.com/mrxguptaa/payroll/internal/salary"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeSalarySheetRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	salaryService salary.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_sheet")
	log.Info("salary sheet consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary sheet consumer stopped")
				return
			}
			log.Error("fetch salary sheet message failed", zap.Error(err))
			continue
		}

		var event events.SalarySheetRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary sheet event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		path, err := salaryService.GenerateSheetFile(ctx, event.Org, event.Year, event.Month, event.RunNumber)
		if err != nil {
			log.Error("generate salary sheet failed",
				zap.String("org", event.Org),
				zap.Int("year", event.Year),
				zap.Int("month", event.Month),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary sheet message failed", zap.Error(err))
			continue
		}

		log.Info("salary sheet generated",
			zap.String("org", event.Org),
			zap.Int("year", event.Year),
			zap.Int("month", event.Month),
			zap.Int64("run_number", event.RunNumber),
			zap.String("file", path),
		)
	}
}
