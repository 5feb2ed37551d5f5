package services

import (
	"fmt"
	"log/slog"
	"time"

	"courtside/internal/billing"
	"courtside/internal/models"
	"courtside/internal/repositories"
)

type accountsService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewAccountsService(
	snapshotRepo repositories.SnapshotRepositoryInterface,
	metrics MetricsRecorderInterface,
) AccountsServiceInterface {
	return &accountsService{
		snapshotRepo: snapshotRepo,
		metrics:      metrics,
	}
}

func (s *accountsService) GetAccountsReport(month, nameFilter string) (*models.AccountsReport, error) {
	if !models.IsValidMonth(month) {
		return nil, ErrInvalidMonth
	}

	start := time.Now()

	snap, err := s.snapshotRepo.Load()
	if err != nil {
		slog.Error("failed to load snapshot for accounts report",
			"month", month,
			"error", err)
		return nil, fmt.Errorf("failed to load billing data: %w", err)
	}

	report := billing.BuildAccountsReport(snap, month, nameFilter)

	s.metrics.IncrementCounter("accounts_report_generated", nil)
	s.metrics.RecordProcessingTime("accounts_report_build", time.Since(start))

	slog.Info("accounts report generated",
		"month", month,
		"client_rows", len(report.Rows),
		"filtered", nameFilter != "")

	return &report, nil
}
