package services_test

import (
	"context"

	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockBankingAPI is a mock type for the BankingAPI interface.
type MockBankingAPI struct {
	mock.Mock
}

func (m *MockBankingAPI) FetchAccounts(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockBankingAPI) FetchCurrencies(ctx context.Context) ([]models.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}

func (m *MockBankingAPI) SubmitCreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*models.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockBankingAPI) SubmitDeposit(ctx context.Context, accountID int64, amountCents int64) error {
	args := m.Called(ctx, accountID, amountCents)
	return args.Error(0)
}

func (m *MockBankingAPI) SubmitTransfer(ctx context.Context, req dto.TransferRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
