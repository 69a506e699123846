// Package importer turns a parsed, mapped CSV table into balanced
// ledger documents and entries. Rows are parsed independently; rows
// that cannot be read are skipped with a warning, and the surviving
// rows are grouped by date into documents and written in a single
// transaction.
package importer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tilikirja-dev/tilikirja/internal/analyze"
	"github.com/tilikirja-dev/tilikirja/internal/csvfile"
	"github.com/tilikirja-dev/tilikirja/internal/model"
	"github.com/tilikirja-dev/tilikirja/internal/money"
)

// descriptionLimit caps the composite description length.
const descriptionLimit = 200

// Tx is the slice of a ledger write session the importer uses.
type Tx interface {
	CreateDocument(date time.Time) (model.Document, error)
	SaveEntry(e *model.Entry) error
	Commit() error
	Rollback() error
}

// Ledger opens write sessions.
type Ledger interface {
	Begin() (Tx, error)
}

// AccountResolver looks up accounts by exact number match.
type AccountResolver interface {
	ByNumber(number string) (model.Account, bool)
}

// Options controls one import run.
type Options struct {
	// DefaultAccount is the counter-account number, usually the bank
	// account the export came from. Required.
	DefaultAccount string
	// RowFilter, when set, skips structurally invalid rows silently
	// before parsing. Presets supply this.
	RowFilter func(row []string) bool
}

// Result reports what an import run did. Counts reflect work done in
// memory even when the transaction rolled back, for diagnostics.
type Result struct {
	Success          bool
	DocumentsCreated int
	EntriesCreated   int
	Errors           []string
	Warnings         []string
}

// parsedRow is one successfully parsed data row, consumed immediately
// when building entries.
type parsedRow struct {
	date          time.Time
	description   string
	amount        decimal.Decimal // non-negative
	isDebit       bool
	accountNumber string
	rowIndex      int // 0-based data row index
}

// Run imports the table's data rows into the ledger. Preconditions
// are checked before any row is touched; per-row problems become
// warnings; a persistence failure rolls the whole batch back.
func Run(table csvfile.Table, cols []analyze.Column, accounts AccountResolver, store Ledger, opts Options) Result {
	var res Result

	for _, verr := range ValidateMappings(cols) {
		res.Errors = append(res.Errors, verr.Error())
	}
	if len(res.Errors) > 0 {
		return res
	}

	defaultAccount, ok := accounts.ByNumber(opts.DefaultAccount)
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("default account %q not found", opts.DefaultAccount))
		return res
	}

	rows := parseRows(table, cols, opts.RowFilter, &res)
	if len(rows) == 0 {
		res.Errors = append(res.Errors, "no importable rows")
		return res
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	tx, err := store.Begin()
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("database error: %v", err))
		return res
	}

	if err := writeBatch(tx, rows, defaultAccount, accounts, &res); err != nil {
		_ = tx.Rollback()
		res.Errors = append(res.Errors, fmt.Sprintf("database error: %v", err))
		return res
	}

	if err := tx.Commit(); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("database error: %v", err))
		return res
	}

	res.Success = true
	return res
}

// parseRows reads every data row, appending a warning for each row it
// has to skip. The display row number in warnings is 1-based and
// counts the header.
func parseRows(table csvfile.Table, cols []analyze.Column, filter func([]string) bool, res *Result) []parsedRow {
	dateIdx := analyze.MappedIndex(cols, model.MapDate)
	dateType := cols[dateIdx].Type
	descIdx := analyze.MappedIndex(cols, model.MapDescription)
	debitIdx := analyze.MappedIndex(cols, model.MapDebit)
	creditIdx := analyze.MappedIndex(cols, model.MapCredit)
	amountIdx := analyze.MappedIndex(cols, model.MapAmount)
	accountIdx := analyze.MappedIndex(cols, model.MapAccountNumber)
	refIdx := analyze.MappedIndex(cols, model.MapReference)
	payeeIdx := analyze.MappedIndex(cols, model.MapPayeePayer)

	var rows []parsedRow
	for i, row := range table.DataRows() {
		display := i + 2

		if filter != nil && !filter(row) {
			continue
		}

		dateStr := field(row, dateIdx)
		date, ok := analyze.ParseDate(dateStr, dateType)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: unreadable date %q, skipped", display, dateStr))
			continue
		}

		amount, isDebit, ok := resolveAmount(row, amountIdx, debitIdx, creditIdx)
		if !ok || amount.IsZero() {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: no amount, skipped", display))
			continue
		}

		rows = append(rows, parsedRow{
			date:          date,
			description:   buildDescription(field(row, payeeIdx), field(row, descIdx), field(row, refIdx)),
			amount:        amount,
			isDebit:       isDebit,
			accountNumber: field(row, accountIdx),
			rowIndex:      i,
		})
	}
	return rows
}

// resolveAmount applies the amount precedence: a non-blank amount
// column wins, where a negative value means credit and the absolute
// value is kept; otherwise a non-blank debit column, then a non-blank
// credit column.
func resolveAmount(row []string, amountIdx, debitIdx, creditIdx int) (decimal.Decimal, bool, bool) {
	if v := field(row, amountIdx); v != "" {
		if d, ok := money.Parse(v); ok {
			if d.IsNegative() {
				return d.Abs(), false, true
			}
			return d, true, true
		}
	}
	if v := field(row, debitIdx); v != "" {
		if d, ok := money.Parse(v); ok {
			return d.Abs(), true, true
		}
	}
	if v := field(row, creditIdx); v != "" {
		if d, ok := money.Parse(v); ok {
			return d.Abs(), false, true
		}
	}
	return decimal.Zero, false, false
}

// buildDescription joins payee, raw description and the reference into
// one display string, capped at descriptionLimit characters.
func buildDescription(payee, description, reference string) string {
	var parts []string
	if payee != "" {
		parts = append(parts, payee)
	}
	if description != "" {
		parts = append(parts, description)
	}
	if reference != "" {
		parts = append(parts, "Viite: "+reference)
	}
	s := strings.Join(parts, " - ")
	if runes := []rune(s); len(runes) > descriptionLimit {
		s = string(runes[:descriptionLimit])
	}
	return s
}

// writeBatch groups rows by date, creating one document per distinct
// date and a balancing counter-entry against the default account for
// every row. A row whose account column explicitly resolves to the
// default account gets a single entry; pairing it with itself would
// say nothing. Each finished document is balance-checked before the
// batch commits; one-sided documents get a warning.
func writeBatch(tx Tx, rows []parsedRow, defaultAccount model.Account, accounts AccountResolver, res *Result) error {
	var doc model.Document
	var rowNumber int
	balance := decimal.Zero

	checkBalance := func() {
		if !balance.IsZero() {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("document %d is not balanced (debit-credit difference %s)", doc.Number, balance))
		}
	}

	for i, row := range rows {
		if i == 0 || !row.date.Equal(rows[i-1].date) {
			if i > 0 {
				checkBalance()
			}
			d, err := tx.CreateDocument(row.date)
			if err != nil {
				return err
			}
			doc = d
			rowNumber = 0
			balance = decimal.Zero
			res.DocumentsCreated++
		}

		target := defaultAccount
		explicitDefault := false
		if row.accountNumber != "" {
			if a, ok := accounts.ByNumber(row.accountNumber); ok {
				target = a
				explicitDefault = a.ID == defaultAccount.ID
			}
		}

		entry := model.Entry{
			DocumentID:  doc.ID,
			AccountID:   target.ID,
			RowNumber:   rowNumber,
			IsDebit:     row.isDebit,
			Amount:      row.amount,
			Description: row.description,
		}
		if err := tx.SaveEntry(&entry); err != nil {
			return err
		}
		rowNumber++
		res.EntriesCreated++
		balance = addSigned(balance, entry)

		if explicitDefault {
			continue
		}

		counter := model.Entry{
			DocumentID:  doc.ID,
			AccountID:   defaultAccount.ID,
			RowNumber:   rowNumber,
			IsDebit:     !row.isDebit,
			Amount:      row.amount,
			Description: row.description,
		}
		if err := tx.SaveEntry(&counter); err != nil {
			return err
		}
		rowNumber++
		res.EntriesCreated++
		balance = addSigned(balance, counter)
	}
	checkBalance()
	return nil
}

// addSigned accumulates an entry into a debit-minus-credit balance.
func addSigned(balance decimal.Decimal, e model.Entry) decimal.Decimal {
	if e.IsDebit {
		return balance.Add(e.Amount)
	}
	return balance.Sub(e.Amount)
}

// field returns the trimmed cell at idx, or "" when the column is not
// mapped or the row is short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
