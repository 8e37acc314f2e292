package dto

// Request drafts are assembled only at submit time from validated
// inputs and match the backend's wire format field for field. A draft
// is never partially submitted.

// CreateAccountRequest is the payload for POST /accounts.
type CreateAccountRequest struct {
	Name                string `json:"name" binding:"required"`
	InitialBalanceCents int64  `json:"initial_balance_cents" binding:"gte=0"`
	CurrencyID          int64  `json:"currency_id" binding:"required,gt=0"`
}

// DepositRequest is the payload for POST /accounts/{id}/deposit.
type DepositRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0"`
}

// TransferRequest is the payload for POST /transfers.
type TransferRequest struct {
	FromAccountID int64 `json:"from_account_id" binding:"required,gt=0"`
	ToAccountID   int64 `json:"to_account_id" binding:"required,gt=0"`
	AmountCents   int64 `json:"amount_cents" binding:"required,gt=0"`
}

// LoginRequest carries the credentials for the backend's token
// endpoint. It is posted form-encoded, not as JSON.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the backend's answer to a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
