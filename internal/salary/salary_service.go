package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mrxguptaa/payroll/internal/employee"
	employeeerrors "github.com/mrxguptaa/payroll/internal/employee/errors"
	"github.com/mrxguptaa/payroll/internal/events"
	"github.com/mrxguptaa/payroll/internal/messaging/kafka"
	salaryerrors "github.com/mrxguptaa/payroll/internal/salary/errors"
	"github.com/mrxguptaa/payroll/internal/shared/contextutil"
	"github.com/mrxguptaa/payroll/internal/shared/counter"
)

const (
	sheetCacheKeyPrefix = "salary:sheet:"
	sheetCacheTTL       = 5 * time.Minute

	sheetRunCounterType = "salary_sheet_run"
)

func GetSheetCacheKey(org string, year, month int) string {
	return fmt.Sprintf("%s%s:%04d-%02d", sheetCacheKeyPrefix, org, year, month)
}

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	GetSheet(ctx context.Context, org string, year, month int) (SheetResponse, error)
	RequestExport(ctx context.Context, req ExportSheetRequest) (ExportSheetResponse, error)
	GenerateSheetFile(ctx context.Context, org string, year, month int, runNumber int64) (string, error)
}

type service struct {
	db         *sql.DB
	runner     *Runner
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	sf         *singleflight.Group
	storageDir string
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	runner *Runner,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	storageDir string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:         db,
		runner:     runner,
		counter:    counterRepo,
		outbox:     outboxRepo,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		storageDir: storageDir,
		logger:     l,
	}
}

func (s *service) GetSheet(ctx context.Context, org string, year, month int) (SheetResponse, error) {
	s.logger.Debug("get salary sheet requested",
		zap.String("org", org),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	if !employee.KnownOrg(org) {
		return SheetResponse{}, employeeerrors.ErrUnknownOrg
	}
	if month < 1 || month > 12 || year < 2000 {
		return SheetResponse{}, salaryerrors.ErrInvalidPeriod
	}

	cacheKey := GetSheetCacheKey(org, year, month)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp SheetResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// A whole-org sheet recomputes every employee; collapse concurrent
	// requests into one batch run.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		result, err := s.runner.Run(ctx, org, year, month)
		if err != nil {
			return nil, err
		}

		resp := mapBatchToSheet(result)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, sheetCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return SheetResponse{}, err
	}

	return v.(SheetResponse), nil
}

func (s *service) RequestExport(ctx context.Context, req ExportSheetRequest) (ExportSheetResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("export salary sheet requested",
		zap.String("request_id", rid),
		zap.String("org", req.Org),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)

	if !employee.KnownOrg(req.Org) {
		return ExportSheetResponse{}, employeeerrors.ErrUnknownOrg
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		return ExportSheetResponse{}, salaryerrors.ErrInvalidPeriod
	}

	runNumber, err := s.counter.GetNextValue(ctx, req.Org, sheetRunCounterType)
	if err != nil {
		s.logger.Error("export sheet run number failed", zap.Error(err))
		return ExportSheetResponse{}, err
	}

	event := events.SalarySheetRequestedEvent{
		EventType:   "salary_sheet_requested",
		RequestID:   rid,
		Org:         req.Org,
		Year:        req.Year,
		Month:       req.Month,
		RunNumber:   runNumber,
		RequestedBy: contextutil.GetUserID(ctx),
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal sheet event failed", zap.String("request_id", rid), zap.Error(err))
		return ExportSheetResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("export sheet begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ExportSheetResponse{}, err
	}
	defer tx.Rollback()

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "salary_sheet",
		AggregateID:   fmt.Sprintf("%s:%04d-%02d", req.Org, req.Year, req.Month),
		EventType:     event.EventType,
		Topic:         events.SalarySheetRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("export sheet outbox persist failed", zap.Error(err))
		return ExportSheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("export sheet commit failed", zap.String("request_id", rid), zap.Error(err))
		return ExportSheetResponse{}, err
	}

	s.logger.Info("export sheet queued",
		zap.String("request_id", rid),
		zap.String("org", req.Org),
		zap.Int64("run_number", runNumber),
	)

	return ExportSheetResponse{
		Org:       req.Org,
		Year:      req.Year,
		Month:     req.Month,
		RunNumber: runNumber,
		Status:    "queued",
	}, nil
}

func (s *service) GenerateSheetFile(ctx context.Context, org string, year, month int, runNumber int64) (string, error) {
	s.logger.Debug("generate sheet file requested",
		zap.String("org", org),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int64("run_number", runNumber),
	)

	if s.storageDir == "" {
		return "", salaryerrors.ErrSheetStorageNotConfigured
	}

	result, err := s.runner.Run(ctx, org, year, month)
	if err != nil {
		return "", err
	}
	sheet := mapBatchToSheet(result)

	pdf, err := buildSheetPDF(sheet)
	if err != nil {
		s.logger.Error("render sheet pdf failed", zap.Error(err))
		return "", err
	}

	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("salary-sheet-%s-%04d-%02d-run%d.pdf", orgSlug(org), year, month, runNumber)
	path := filepath.Join(s.storageDir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		s.logger.Error("write sheet pdf failed", zap.String("path", path), zap.Error(err))
		return "", err
	}

	s.logger.Info("sheet file written",
		zap.String("org", org),
		zap.String("path", path),
		zap.Int("rows", len(sheet.Rows)),
		zap.Int("failures", len(sheet.Failures)),
	)

	return path, nil
}

func orgSlug(org string) string {
	return strings.ReplaceAll(strings.ToLower(org), " ", "-")
}
