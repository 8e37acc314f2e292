package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/models"
	"github.com/ignamartinoli/banking-ui/internal/money"
)

// The aggregation helpers are pure functions of a snapshot; they never
// mutate their input and are safe to recompute on every render.

// TotalsByCurrency groups accounts by resolved currency code and sums
// their balances. Accounts whose currency cannot be resolved group
// under the numeric currency id. Entries are sorted lexicographically
// by code so display and tests are deterministic.
func TotalsByCurrency(snap models.Snapshot) []dto.CurrencyTotal {
	sums := make(map[string]int64)
	for _, a := range snap.Accounts {
		code := currencyLabel(snap, a.CurrencyID)
		sums[code] += a.BalanceCents
	}

	totals := make([]dto.CurrencyTotal, 0, len(sums))
	for code, cents := range sums {
		totals = append(totals, dto.CurrencyTotal{
			Code:     code,
			SumCents: cents,
			Total:    money.FormatMinorToMajor(cents),
		})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Code < totals[j].Code })
	return totals
}

// AccountDisplayLabel composes the label used in the account selects
// and the accounts table: "<name> — <code> — balance: <major>". When
// the currency code cannot be resolved the raw numeric currency id
// stands in, so a referential gap between the two lists never blanks a
// row.
func AccountDisplayLabel(snap models.Snapshot, account models.Account) string {
	return fmt.Sprintf("%s — %s — balance: %s",
		account.Name,
		currencyLabel(snap, account.CurrencyID),
		money.FormatMinorToMajor(account.BalanceCents))
}

// AccountOptions builds the options for the account selects, in
// snapshot order.
func AccountOptions(snap models.Snapshot) []dto.SelectOption {
	opts := make([]dto.SelectOption, 0, len(snap.Accounts))
	for _, a := range snap.Accounts {
		opts = append(opts, dto.SelectOption{
			Value: strconv.FormatInt(a.ID, 10),
			Label: AccountDisplayLabel(snap, a),
		})
	}
	return opts
}

// CurrencyOptions builds the options for the currency select, sorted
// by code.
func CurrencyOptions(snap models.Snapshot) []dto.SelectOption {
	currencies := make([]models.Currency, len(snap.Currencies))
	copy(currencies, snap.Currencies)
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Code < currencies[j].Code })

	opts := make([]dto.SelectOption, 0, len(currencies))
	for _, c := range currencies {
		opts = append(opts, dto.SelectOption{
			Value: strconv.FormatInt(c.ID, 10),
			Label: c.Code,
		})
	}
	return opts
}

// AccountRows builds the accounts table rows.
func AccountRows(snap models.Snapshot) []dto.AccountRow {
	rows := make([]dto.AccountRow, 0, len(snap.Accounts))
	for _, a := range snap.Accounts {
		rows = append(rows, dto.AccountRow{
			ID:           a.ID,
			Name:         a.Name,
			CurrencyCode: currencyLabel(snap, a.CurrencyID),
			Balance:      money.FormatMinorToMajor(a.BalanceCents),
			Label:        AccountDisplayLabel(snap, a),
		})
	}
	return rows
}

func currencyLabel(snap models.Snapshot, currencyID int64) string {
	if code, ok := snap.CurrencyCodeByID(currencyID); ok {
		return code
	}
	return strconv.FormatInt(currencyID, 10)
}
