// Package ports defines the interfaces the core services depend on.
package ports

import (
	"context"

	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/models"
)

// BankingAPI is the fixed contract of the remote banking backend. The
// core calls it but never implements its semantics: the backend owns
// the ledger and is authoritative for every business rule.
type BankingAPI interface {
	FetchAccounts(ctx context.Context) ([]models.Account, error)
	FetchCurrencies(ctx context.Context) ([]models.Currency, error)
	SubmitCreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*models.Account, error)
	SubmitDeposit(ctx context.Context, accountID int64, amountCents int64) error
	SubmitTransfer(ctx context.Context, req dto.TransferRequest) error
}
