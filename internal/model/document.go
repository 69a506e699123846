package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is an accounting period (one calendar year) with a reserved
// document number range.
type Period struct {
	ID          int64
	StartDate   time.Time
	EndDate     time.Time
	NumberStart int
	NumberEnd   int
}

// Document is one dated voucher grouping one or more entries.
type Document struct {
	ID       int64
	PeriodID int64
	Number   int
	Date     time.Time
}

// Entry is a single debit or credit posting within a document.
// Amount is always non-negative; IsDebit carries the sign.
type Entry struct {
	ID          int64
	DocumentID  int64
	AccountID   int64
	RowNumber   int
	IsDebit     bool
	Amount      decimal.Decimal
	Description string
}
