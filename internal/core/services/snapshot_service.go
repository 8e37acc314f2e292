package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ignamartinoli/banking-ui/internal/apperrors"
	"github.com/ignamartinoli/banking-ui/internal/core/ports"
	"github.com/ignamartinoli/banking-ui/internal/models"
	"github.com/ignamartinoli/banking-ui/internal/platform/metrics"
)

// SnapshotService holds the cached snapshot of accounts and
// currencies. Refresh replaces the whole snapshot at once: both lists
// are fetched for the same generation and swapped under one lock, so a
// reader never sees accounts from one refresh next to currencies from
// another. When two refreshes race, the last one to land wins.
type SnapshotService struct {
	BaseService
	api      ports.BankingAPI
	recorder *metrics.Recorder

	mu   sync.RWMutex
	snap models.Snapshot
}

// NewSnapshotService creates a SnapshotService with an empty snapshot.
// The recorder may be nil.
func NewSnapshotService(api ports.BankingAPI, recorder *metrics.Recorder) *SnapshotService {
	return &SnapshotService{api: api, recorder: recorder}
}

func (s *SnapshotService) recordRefresh(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordRefresh(outcome)
	}
}

// Current returns the cached snapshot. The returned value shares its
// backing arrays with the cache; callers must treat it as read-only.
func (s *SnapshotService) Current() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Refresh fetches accounts and currencies concurrently and installs
// them together. On any fetch error the cached snapshot is left
// untouched and the error wraps apperrors.ErrRefreshFailed so callers
// can tell a stale view from a failed mutation.
func (s *SnapshotService) Refresh(ctx context.Context) error {
	var (
		accounts   []models.Account
		currencies []models.Currency
		accErr     error
		currErr    error
		wg         sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		accounts, accErr = s.api.FetchAccounts(ctx)
	}()
	go func() {
		defer wg.Done()
		currencies, currErr = s.api.FetchCurrencies(ctx)
	}()
	wg.Wait()

	if accErr != nil {
		s.LogError(ctx, accErr, "Failed to fetch accounts")
		s.recordRefresh(metrics.OutcomeFailed)
		return fmt.Errorf("%w: %v", apperrors.ErrRefreshFailed, accErr)
	}
	if currErr != nil {
		s.LogError(ctx, currErr, "Failed to fetch currencies")
		s.recordRefresh(metrics.OutcomeFailed)
		return fmt.Errorf("%w: %v", apperrors.ErrRefreshFailed, currErr)
	}

	s.mu.Lock()
	s.snap = models.Snapshot{Accounts: accounts, Currencies: currencies}
	s.mu.Unlock()
	s.recordRefresh(metrics.OutcomeSuccess)

	s.LogDebug(ctx, "Snapshot refreshed",
		slog.Int("accounts", len(accounts)),
		slog.Int("currencies", len(currencies)))
	return nil
}
