package services

import (
	"fmt"

	"github.com/ignamartinoli/banking-ui/internal/apperrors"
	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/models"
	"github.com/ignamartinoli/banking-ui/internal/money"
)

// CheckTransfer validates a transfer draft against the snapshot, in
// order: the source must resolve to a known account, the destination
// must be a syntactically valid positive id, and the amount must be
// strictly positive.
//
// The destination is deliberately NOT required to resolve locally: it
// may belong to another user and so never appear in this snapshot.
// Likewise the currencies of the two accounts are not compared here;
// the destination's currency is unknowable locally, so the match is
// surfaced as an advisory only (SourceCurrencyAdvisory) and enforced
// by the backend.
func CheckTransfer(snap models.Snapshot, draft dto.TransferRequest) error {
	if _, ok := snap.AccountByID(draft.FromAccountID); !ok {
		return fmt.Errorf("%w: please select a valid source account", apperrors.ErrValidation)
	}
	if draft.ToAccountID <= 0 {
		return fmt.Errorf("%w: please enter a valid destination account ID", apperrors.ErrValidation)
	}
	if !money.IsValidPositiveAmount(draft.AmountCents) {
		return fmt.Errorf("%w: amount must be > 0 (e.g. 1, 10, 10.50)", apperrors.ErrValidation)
	}
	return nil
}

// SourceCurrencyAdvisory resolves the source account's currency code
// for the "destination must match" hint next to the transfer form. The
// second return is false when the account or its currency is not in
// the snapshot.
func SourceCurrencyAdvisory(snap models.Snapshot, fromAccountID int64) (string, bool) {
	account, ok := snap.AccountByID(fromAccountID)
	if !ok {
		return "", false
	}
	return snap.CurrencyCodeByID(account.CurrencyID)
}
