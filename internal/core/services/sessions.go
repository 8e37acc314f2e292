package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ignamartinoli/banking-ui/internal/apperrors"
	"github.com/ignamartinoli/banking-ui/internal/core/ports"
	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/models"
	"github.com/ignamartinoli/banking-ui/internal/money"
)

// CreateAccountSession drives the create-account form.
type CreateAccountSession struct {
	formSession
	api    ports.BankingAPI
	fields dto.CreateAccountForm
}

// NewCreateAccountSession creates the session with default fields.
func NewCreateAccountSession(api ports.BankingAPI, snapshots *SnapshotService) *CreateAccountSession {
	s := &CreateAccountSession{
		api:    api,
		fields: dto.CreateAccountForm{InitialBalance: "0.00"},
	}
	s.init("create_account", snapshots)
	return s
}

// Submit validates the form and creates the account. On success the
// name and balance fields reset while the currency selection sticks.
func (s *CreateAccountSession) Submit(ctx context.Context, form dto.CreateAccountForm) error {
	return s.run(ctx, func(models.Snapshot) (submitFunc, func(), error) {
		s.fields = form

		name := strings.TrimSpace(form.Name)
		if name == "" {
			return nil, nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
		}
		currencyID, err := strconv.ParseInt(strings.TrimSpace(form.CurrencyID), 10, 64)
		if err != nil || currencyID <= 0 {
			return nil, nil, fmt.Errorf("%w: please select a currency", apperrors.ErrValidation)
		}
		cents, err := money.ParseMajorToMinor(form.InitialBalance)
		if err != nil || !money.IsValidNonNegativeAmount(cents) {
			return nil, nil, fmt.Errorf("%w: initial balance must be a valid number (e.g. 0, 10, 10.50)", apperrors.ErrValidation)
		}

		draft := dto.CreateAccountRequest{
			Name:                name,
			InitialBalanceCents: cents,
			CurrencyID:          currencyID,
		}
		submit := func(ctx context.Context) error {
			_, err := s.api.SubmitCreateAccount(ctx, draft)
			return err
		}
		reset := func() {
			s.fields.Name = ""
			s.fields.InitialBalance = "0.00"
		}
		return submit, reset, nil
	}, "Account created.")
}

// Status reports the session state with the current field values.
func (s *CreateAccountSession) Status() dto.FormStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.statusLocked()
	st.Fields = s.fields
	return st
}

// DepositSession drives the deposit form.
type DepositSession struct {
	formSession
	api    ports.BankingAPI
	fields dto.DepositForm
}

// NewDepositSession creates the session with default fields.
func NewDepositSession(api ports.BankingAPI, snapshots *SnapshotService) *DepositSession {
	s := &DepositSession{
		api:    api,
		fields: dto.DepositForm{Amount: "0.00"},
	}
	s.init("deposit", snapshots)
	return s
}

// Submit validates the form and deposits into the selected account. On
// success both the account selection and the amount reset.
func (s *DepositSession) Submit(ctx context.Context, form dto.DepositForm) error {
	return s.run(ctx, func(models.Snapshot) (submitFunc, func(), error) {
		s.fields = form

		accountID, err := strconv.ParseInt(strings.TrimSpace(form.AccountID), 10, 64)
		if err != nil || accountID <= 0 {
			return nil, nil, fmt.Errorf("%w: please select a valid account to deposit into", apperrors.ErrValidation)
		}
		cents, err := money.ParseMajorToMinor(form.Amount)
		if err != nil || !money.IsValidPositiveAmount(cents) {
			return nil, nil, fmt.Errorf("%w: deposit amount must be > 0 (e.g. 1, 10, 10.50)", apperrors.ErrValidation)
		}

		submit := func(ctx context.Context) error {
			return s.api.SubmitDeposit(ctx, accountID, cents)
		}
		reset := func() {
			s.fields.AccountID = ""
			s.fields.Amount = "0.00"
		}
		return submit, reset, nil
	}, "Deposit completed.")
}

// Status reports the session state with the current field values.
func (s *DepositSession) Status() dto.FormStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.statusLocked()
	st.Fields = s.fields
	return st
}

// TransferSession drives the transfer form.
type TransferSession struct {
	formSession
	api    ports.BankingAPI
	fields dto.TransferForm
}

// NewTransferSession creates the session with default fields.
func NewTransferSession(api ports.BankingAPI, snapshots *SnapshotService) *TransferSession {
	s := &TransferSession{
		api:    api,
		fields: dto.TransferForm{Amount: "0.00"},
	}
	s.init("transfer", snapshots)
	return s
}

// Submit validates the form against the transfer policy and submits
// the transfer. On success the destination and amount reset while the
// source selection sticks.
func (s *TransferSession) Submit(ctx context.Context, form dto.TransferForm) error {
	return s.run(ctx, func(snap models.Snapshot) (submitFunc, func(), error) {
		s.fields = form

		fromID, err := strconv.ParseInt(strings.TrimSpace(form.FromAccountID), 10, 64)
		if err != nil || fromID <= 0 {
			return nil, nil, fmt.Errorf("%w: please select a valid source account", apperrors.ErrValidation)
		}
		// The destination may be any positive id, resolvable or not.
		toID, err := strconv.ParseInt(strings.TrimSpace(form.ToAccountID), 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: please enter a valid destination account ID", apperrors.ErrValidation)
		}
		cents, err := money.ParseMajorToMinor(form.Amount)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: amount must be > 0 (e.g. 1, 10, 10.50)", apperrors.ErrValidation)
		}

		draft := dto.TransferRequest{
			FromAccountID: fromID,
			ToAccountID:   toID,
			AmountCents:   cents,
		}
		if err := CheckTransfer(snap, draft); err != nil {
			return nil, nil, err
		}

		submit := func(ctx context.Context) error {
			return s.api.SubmitTransfer(ctx, draft)
		}
		reset := func() {
			s.fields.ToAccountID = ""
			s.fields.Amount = "0.00"
		}
		return submit, reset, nil
	}, "Transfer completed.")
}

// Status reports the session state with the current field values.
func (s *TransferSession) Status() dto.FormStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.statusLocked()
	st.Fields = s.fields
	return st
}
