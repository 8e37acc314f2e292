package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ignamartinoli/banking-ui/internal/apperrors"
	"github.com/ignamartinoli/banking-ui/internal/core/services"
	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FormSessionTestSuite struct {
	suite.Suite
	api       *MockBankingAPI
	snapshots *services.SnapshotService
	create    *services.CreateAccountSession
	deposit   *services.DepositSession
	transfer  *services.TransferSession
}

func (s *FormSessionTestSuite) SetupTest() {
	s.api = new(MockBankingAPI)
	s.snapshots = services.NewSnapshotService(s.api, nil)
	s.create = services.NewCreateAccountSession(s.api, s.snapshots)
	s.deposit = services.NewDepositSession(s.api, s.snapshots)
	s.transfer = services.NewTransferSession(s.api, s.snapshots)
}

// seedSnapshot installs one ARS account and registers open-ended fetch
// expectations so post-mutation refreshes succeed.
func (s *FormSessionTestSuite) seedSnapshot() {
	s.api.On("FetchAccounts", mock.Anything).Return([]models.Account{
		{ID: 1, Name: "A", CurrencyID: 1, BalanceCents: 1000},
	}, nil)
	s.api.On("FetchCurrencies", mock.Anything).Return([]models.Currency{
		{ID: 1, Code: "ARS"},
	}, nil)
	s.Require().NoError(s.snapshots.Refresh(context.Background()))
}

func (s *FormSessionTestSuite) TestDepositSubmit_Success() {
	s.seedSnapshot()
	s.api.On("SubmitDeposit", mock.Anything, int64(1), int64(5000)).Return(nil).Once()

	err := s.deposit.Submit(context.Background(), dto.DepositForm{AccountID: "1", Amount: "50.00"})
	s.Require().NoError(err)

	status := s.deposit.Status()
	s.Equal("success", status.State)
	s.Equal("Deposit completed.", status.Message)
	s.Empty(status.Error)

	// Amount resets to the default display string, the selection clears.
	fields := status.Fields.(dto.DepositForm)
	s.Equal("0.00", fields.Amount)
	s.Empty(fields.AccountID)

	// The mutation fired exactly once and triggered a refresh (one
	// fetch pair for the seed, one for the post-success refresh).
	s.api.AssertNumberOfCalls(s.T(), "SubmitDeposit", 1)
	s.api.AssertNumberOfCalls(s.T(), "FetchAccounts", 2)
	s.api.AssertNumberOfCalls(s.T(), "FetchCurrencies", 2)
}

func (s *FormSessionTestSuite) TestDepositSubmit_InvalidAmountNeverCallsBackend() {
	s.seedSnapshot()

	for _, amount := range []string{"", "abc", "0", "-5", "0.004"} {
		err := s.deposit.Submit(context.Background(), dto.DepositForm{AccountID: "1", Amount: amount})
		s.Require().Error(err, amount)
		s.ErrorIs(err, apperrors.ErrValidation, amount)
	}

	s.api.AssertNotCalled(s.T(), "SubmitDeposit", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FormSessionTestSuite) TestDepositSubmit_MissingAccount() {
	err := s.deposit.Submit(context.Background(), dto.DepositForm{AccountID: "", Amount: "10.00"})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "account")
	s.api.AssertNotCalled(s.T(), "SubmitDeposit", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FormSessionTestSuite) TestDepositSubmit_BackendFailurePreservesFields() {
	s.seedSnapshot()
	s.api.On("SubmitDeposit", mock.Anything, int64(1), int64(1000)).Return(errors.New("insufficient funds")).Once()

	form := dto.DepositForm{AccountID: "1", Amount: "10.00"}
	err := s.deposit.Submit(context.Background(), form)
	s.Require().Error(err)

	status := s.deposit.Status()
	s.Equal("failed", status.State)
	s.Equal("insufficient funds", status.Error)
	s.Equal(form, status.Fields.(dto.DepositForm))

	// No refresh after a failed mutation: only the seed fetch pair ran.
	s.api.AssertNumberOfCalls(s.T(), "FetchAccounts", 1)
}

func (s *FormSessionTestSuite) TestDepositSubmit_RefreshFailureIsDistinct() {
	s.api.On("FetchAccounts", mock.Anything).Return(nil, errors.New("backend down"))
	s.api.On("FetchCurrencies", mock.Anything).Return([]models.Currency{}, nil)
	s.api.On("SubmitDeposit", mock.Anything, int64(1), int64(1000)).Return(nil).Once()

	err := s.deposit.Submit(context.Background(), dto.DepositForm{AccountID: "1", Amount: "10.00"})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrRefreshFailed)

	// The mutation went through: fields reset and the success message
	// stands next to the refresh error.
	status := s.deposit.Status()
	s.Equal("Deposit completed.", status.Message)
	s.Equal("0.00", status.Fields.(dto.DepositForm).Amount)
	s.Contains(status.Error, "snapshot refresh failed")
}

func (s *FormSessionTestSuite) TestDepositSubmit_DoubleClickSubmitsOnce() {
	s.seedSnapshot()

	block := make(chan struct{})
	s.api.On("SubmitDeposit", mock.Anything, int64(1), int64(5000)).
		Run(func(mock.Arguments) { <-block }).
		Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- s.deposit.Submit(context.Background(), dto.DepositForm{AccountID: "1", Amount: "50.00"})
	}()

	// Wait until the first submission is in flight.
	s.Require().Eventually(func() bool {
		return s.deposit.Status().State == "submitting"
	}, time.Second, time.Millisecond)

	err := s.deposit.Submit(context.Background(), dto.DepositForm{AccountID: "1", Amount: "50.00"})
	s.ErrorIs(err, apperrors.ErrSubmitInFlight)

	close(block)
	s.Require().NoError(<-done)
	s.api.AssertNumberOfCalls(s.T(), "SubmitDeposit", 1)
}

func (s *FormSessionTestSuite) TestCreateAccountSubmit_Success() {
	s.seedSnapshot()
	want := dto.CreateAccountRequest{Name: "Savings", InitialBalanceCents: 100000, CurrencyID: 1}
	s.api.On("SubmitCreateAccount", mock.Anything, want).
		Return(&models.Account{ID: 2, Name: "Savings", CurrencyID: 1, BalanceCents: 100000}, nil).Once()

	err := s.create.Submit(context.Background(), dto.CreateAccountForm{
		Name:           "  Savings ",
		InitialBalance: "1000.00",
		CurrencyID:     "1",
	})
	s.Require().NoError(err)

	status := s.create.Status()
	s.Equal("Account created.", status.Message)

	// Name and balance reset; the currency selection sticks.
	fields := status.Fields.(dto.CreateAccountForm)
	s.Empty(fields.Name)
	s.Equal("0.00", fields.InitialBalance)
	s.Equal("1", fields.CurrencyID)

	s.api.AssertExpectations(s.T())
}

func (s *FormSessionTestSuite) TestCreateAccountSubmit_Validation() {
	tests := []struct {
		name string
		form dto.CreateAccountForm
		want string
	}{
		{"missing name", dto.CreateAccountForm{InitialBalance: "0.00", CurrencyID: "1"}, "name is required"},
		{"missing currency", dto.CreateAccountForm{Name: "X", InitialBalance: "0.00"}, "currency"},
		{"negative balance", dto.CreateAccountForm{Name: "X", InitialBalance: "-1", CurrencyID: "1"}, "initial balance"},
		{"garbage balance", dto.CreateAccountForm{Name: "X", InitialBalance: "ten", CurrencyID: "1"}, "initial balance"},
	}
	for _, tt := range tests {
		err := s.create.Submit(context.Background(), tt.form)
		s.Require().Error(err, tt.name)
		s.ErrorIs(err, apperrors.ErrValidation, tt.name)
		s.Contains(err.Error(), tt.want, tt.name)
	}
	s.api.AssertNotCalled(s.T(), "SubmitCreateAccount", mock.Anything, mock.Anything)

	// Zero is a valid initial balance; only direction is checked.
	s.seedSnapshot()
	s.api.On("SubmitCreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(&models.Account{ID: 3}, nil).Once()
	s.Require().NoError(s.create.Submit(context.Background(), dto.CreateAccountForm{
		Name: "Zero", InitialBalance: "0", CurrencyID: "1",
	}))
}

func (s *FormSessionTestSuite) TestTransferSubmit_Success() {
	s.seedSnapshot()
	want := dto.TransferRequest{FromAccountID: 1, ToAccountID: 12, AmountCents: 1050}
	s.api.On("SubmitTransfer", mock.Anything, want).Return(nil).Once()

	err := s.transfer.Submit(context.Background(), dto.TransferForm{
		FromAccountID: "1",
		ToAccountID:   "12",
		Amount:        "10.50",
	})
	s.Require().NoError(err)

	status := s.transfer.Status()
	s.Equal("Transfer completed.", status.Message)

	// Destination and amount reset; the source selection sticks.
	fields := status.Fields.(dto.TransferForm)
	s.Equal("1", fields.FromAccountID)
	s.Empty(fields.ToAccountID)
	s.Equal("0.00", fields.Amount)

	s.api.AssertExpectations(s.T())
}

func (s *FormSessionTestSuite) TestTransferSubmit_ZeroAmountNeverCallsBackend() {
	s.seedSnapshot()

	err := s.transfer.Submit(context.Background(), dto.TransferForm{
		FromAccountID: "1",
		ToAccountID:   "12",
		Amount:        "0",
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "amount must be > 0")
	s.api.AssertNotCalled(s.T(), "SubmitTransfer", mock.Anything, mock.Anything)
}

func (s *FormSessionTestSuite) TestTransferSubmit_UnresolvedDestinationStillSubmits() {
	s.seedSnapshot()
	want := dto.TransferRequest{FromAccountID: 1, ToAccountID: 999, AmountCents: 100}
	s.api.On("SubmitTransfer", mock.Anything, want).Return(nil).Once()

	err := s.transfer.Submit(context.Background(), dto.TransferForm{
		FromAccountID: "1",
		ToAccountID:   "999",
		Amount:        "1.00",
	})
	s.Require().NoError(err)
	s.api.AssertExpectations(s.T())
}

func (s *FormSessionTestSuite) TestTransferSubmit_UnknownSourceBlocked() {
	s.seedSnapshot()

	err := s.transfer.Submit(context.Background(), dto.TransferForm{
		FromAccountID: "42",
		ToAccountID:   "12",
		Amount:        "1.00",
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.api.AssertNotCalled(s.T(), "SubmitTransfer", mock.Anything, mock.Anything)
}

func TestFormSessionTestSuite(t *testing.T) {
	suite.Run(t, new(FormSessionTestSuite))
}
