package dto

// Form DTOs carry the raw field strings exactly as the user typed
// them. Amounts stay strings here; conversion to cents happens in the
// form sessions via the money codec, never in the transport layer.

// CreateAccountForm is the raw input of the create-account form.
type CreateAccountForm struct {
	Name           string `json:"name"`
	InitialBalance string `json:"initialBalance"`
	CurrencyID     string `json:"currencyID"`
}

// DepositForm is the raw input of the deposit form.
type DepositForm struct {
	AccountID string `json:"accountID"`
	Amount    string `json:"amount"`
}

// TransferForm is the raw input of the transfer form. The destination
// is a bare account ID typed by the user and may refer to an account
// outside the local snapshot.
type TransferForm struct {
	FromAccountID string `json:"fromAccountID"`
	ToAccountID   string `json:"toAccountID"`
	Amount        string `json:"amount"`
}
