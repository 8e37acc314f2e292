package dto

// CurrencyTotal is one per-currency balance KPI row.
type CurrencyTotal struct {
	Code     string `json:"code"`
	SumCents int64  `json:"sumCents"`
	Total    string `json:"total"`
}

// AccountRow is one row of the accounts table.
type AccountRow struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	Balance      string `json:"balance"`
	Label        string `json:"label"`
}

// SelectOption is an entry for the currency and account selects.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormStatus reports the observable state of one form session. Fields
// echoes the current field values so a failed submission re-renders
// with the user's input intact.
type FormStatus struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Fields  any    `json:"fields,omitempty"`
}

// DashboardResponse is the full view model for the dashboard page.
type DashboardResponse struct {
	TotalAccounts   int             `json:"totalAccounts"`
	Totals          []CurrencyTotal `json:"totals"`
	Accounts        []AccountRow    `json:"accounts"`
	CurrencyOptions []SelectOption  `json:"currencyOptions"`
	AccountOptions  []SelectOption  `json:"accountOptions"`
	CreateAccount   FormStatus      `json:"createAccount"`
	Deposit         FormStatus      `json:"deposit"`
	Transfer        FormStatus      `json:"transfer"`
}

// TransferAdvisoryResponse carries the advisory shown next to the
// transfer form: the source account's currency, which the destination
// must match. The check itself is enforced by the backend.
type TransferAdvisoryResponse struct {
	SourceCurrency string `json:"sourceCurrency"`
	Note           string `json:"note"`
}

// SubmitResponse is the answer to a form submission.
type SubmitResponse struct {
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}
