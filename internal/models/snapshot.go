package models

// Snapshot is the full client-side cache of accounts and currencies.
// Both lists are fetched together and the whole value is replaced
// wholesale after every successful mutation; it is never patched
// incrementally, so derived lookups cannot mix generations.
type Snapshot struct {
	Accounts   []Account
	Currencies []Currency
}

// CurrencyCodeByID resolves a currency code from the snapshot.
func (s Snapshot) CurrencyCodeByID(id int64) (string, bool) {
	for _, c := range s.Currencies {
		if c.ID == id {
			return c.Code, true
		}
	}
	return "", false
}

// AccountByID resolves an account from the snapshot.
func (s Snapshot) AccountByID(id int64) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}
