package service

import (
	"context"
	"time"

	"finsight/internal/analytics"
	"finsight/internal/dto"
	"finsight/internal/models"
	"finsight/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SummaryService answers aggregate queries over a user's transactions.
// Grouping happens in-process over a single range fetch; every operation is
// read-only.
type SummaryService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewSummaryService(txRepo *repository.TransactionRepository, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		txRepo: txRepo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *SummaryService) Daily(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.DailySummary, error) {
	transactions, err := s.txRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return analytics.Daily(deref(transactions)), nil
}

func (s *SummaryService) Weekly(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.WeeklySummary, error) {
	transactions, err := s.txRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return analytics.Weekly(deref(transactions)), nil
}

func (s *SummaryService) Monthly(ctx context.Context, userID uuid.UUID, year int) ([]models.MonthlySummary, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	transactions, err := s.txRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return analytics.Monthly(deref(transactions), year), nil
}

func (s *SummaryService) ByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.CategorySummary, error) {
	transactions, err := s.txRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return analytics.ByCategory(deref(transactions)), nil
}

// CurrentFiscalYear resolves the fiscal year containing today and sums it.
// The response carries the window bounds even when the summary is absent.
func (s *SummaryService) CurrentFiscalYear(ctx context.Context, userID uuid.UUID) (*dto.CurrentFiscalYearResponse, error) {
	today := s.now()
	startYear := analytics.FiscalYearStart(today)
	from, to := analytics.FiscalYearWindow(startYear)

	transactions, err := s.txRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.CurrentFiscalYearResponse{
		FYStartDate: from,
		FYEndDate:   to,
		Summary:     analytics.CurrentFiscalYear(deref(transactions), today),
	}, nil
}

func (s *SummaryService) LastThreeFiscalYears(ctx context.Context, userID uuid.UUID) ([]models.FiscalYearSummary, error) {
	today := s.now()
	current := analytics.FiscalYearStart(today)
	from, _ := analytics.FiscalYearWindow(current - 2)
	_, to := analytics.FiscalYearWindow(current)

	transactions, err := s.txRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return analytics.LastThreeFiscalYears(deref(transactions), today), nil
}

func deref(transactions []*models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		out[i] = *tx
	}
	return out
}
