package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/finance"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
)

// SnapshotService materializes account valuations into the
// valuation_snapshot table. The nightly cron run walks every active
// account, recomputes the portfolio aggregate from the stored rows, and
// upserts one snapshot per account per day. History reads then never
// recompute past states.
type SnapshotService struct {
	accountRepo     *repository.AccountRepository
	snapshotRepo    *repository.SnapshotRepository
	propertyService *PropertyService
	eventService    *EventService
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(
	accountRepo *repository.AccountRepository,
	snapshotRepo *repository.SnapshotRepository,
	propertyService *PropertyService,
	eventService *EventService,
) *SnapshotService {
	return &SnapshotService{
		accountRepo:     accountRepo,
		snapshotRepo:    snapshotRepo,
		propertyService: propertyService,
		eventService:    eventService,
	}
}

// MaterializeAll snapshots every non-archived account for the given date.
// Returns the number of accounts materialized.
func (s *SnapshotService) MaterializeAll(ctx context.Context, asOf time.Time) (int, error) {
	accounts, err := s.accountRepo.GetAccounts(model.AccountFilter{})
	if err != nil {
		return 0, err
	}

	for _, account := range accounts {
		if err := s.MaterializeAccount(ctx, account.ID, asOf); err != nil {
			return 0, fmt.Errorf("failed to materialize account %s: %w", account.ID, err)
		}
	}

	if s.eventService != nil {
		message := fmt.Sprintf("materialized %d account snapshots for %s", len(accounts), asOf.Format("2006-01-02"))
		_ = s.eventService.Record(ctx, model.EventSystem, model.LevelInfo, message, "")
	}

	return len(accounts), nil
}

// MaterializeAccount snapshots one account for the given date.
func (s *SnapshotService) MaterializeAccount(ctx context.Context, accountID string, asOf time.Time) error {
	properties, err := s.propertyService.GetEnrichedProperties(model.PropertyFilter{AccountID: accountID})
	if err != nil {
		return err
	}

	snapshot := model.ValuationSnapshot{
		ID:            uuid.New().String(),
		AccountID:     accountID,
		Date:          asOf,
		PropertyCount: len(properties),
		CalculatedAt:  time.Now().UTC(),
	}

	for _, p := range properties {
		snapshot.TotalValue += p.CurrentMarketValue
		snapshot.TotalInvested += p.Metrics.TotalInvestment
		snapshot.AnnualCashFlow += p.Metrics.AnnualCashFlow
	}

	snapshot.TotalValue = finance.Round2(snapshot.TotalValue)
	snapshot.TotalInvested = finance.Round2(snapshot.TotalInvested)
	snapshot.AnnualCashFlow = finance.Round2(snapshot.AnnualCashFlow)

	return s.snapshotRepo.UpsertSnapshot(ctx, snapshot)
}

// GetHistory retrieves the snapshots of one account within a date range.
func (s *SnapshotService) GetHistory(accountID string, startDate, endDate time.Time) ([]model.ValuationSnapshot, error) {
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.accountRepo.GetAccountOnID(accountID); err != nil {
		return nil, err
	}

	history := []model.ValuationSnapshot{}
	err := s.snapshotRepo.GetSnapshotHistory([]string{accountID}, startDate, endDate, func(record model.ValuationSnapshot) error {
		history = append(history, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return history, nil
}
