package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tilikirja-dev/tilikirja/internal/model"
)

const dateFormat = "2006-01-02"

// Session is one write transaction over the ledger. Either Commit or
// Rollback must be called exactly once.
type Session struct {
	tx *sql.Tx
}

// Commit commits the session.
func (s *Session) Commit() error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Rollback aborts the session.
func (s *Session) Rollback() error {
	if err := s.tx.Rollback(); err != nil {
		return fmt.Errorf("rolling back: %w", err)
	}
	return nil
}

// CreateDocument persists a new document dated date, creating the
// accounting period for that year on demand, and assigns the next
// document number within the period's number range.
func (s *Session) CreateDocument(date time.Time) (model.Document, error) {
	period, err := s.ensurePeriod(date.Year())
	if err != nil {
		return model.Document{}, err
	}

	var number int
	err = s.tx.QueryRow(
		"SELECT COALESCE(MAX(number), ?) + 1 FROM documents WHERE period_id = ?",
		period.NumberStart-1, period.ID,
	).Scan(&number)
	if err != nil {
		return model.Document{}, fmt.Errorf("assigning document number: %w", err)
	}
	if number > period.NumberEnd {
		return model.Document{}, fmt.Errorf("document number range exhausted for period %d", period.ID)
	}

	res, err := s.tx.Exec(
		"INSERT INTO documents (period_id, number, date) VALUES (?, ?, ?)",
		period.ID, number, date.Format(dateFormat),
	)
	if err != nil {
		return model.Document{}, fmt.Errorf("inserting document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Document{}, fmt.Errorf("reading document id: %w", err)
	}

	return model.Document{ID: id, PeriodID: period.ID, Number: number, Date: date}, nil
}

// SaveEntry persists an entry and fills in its ID.
func (s *Session) SaveEntry(e *model.Entry) error {
	res, err := s.tx.Exec(
		"INSERT INTO entries (document_id, account_id, row_number, is_debit, amount, description) VALUES (?, ?, ?, ?, ?, ?)",
		e.DocumentID, e.AccountID, e.RowNumber, boolToInt(e.IsDebit), e.Amount.String(), e.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading entry id: %w", err)
	}
	e.ID = id
	return nil
}

// RecordImport stores one row describing an import batch.
func (s *Session) RecordImport(batchID, filename string, documents, entries int) error {
	_, err := s.tx.Exec(
		"INSERT INTO imports (id, filename, documents, entries) VALUES (?, ?, ?, ?)",
		batchID, filename, documents, entries,
	)
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}
	return nil
}

// ensurePeriod finds or creates the calendar-year period for year.
func (s *Session) ensurePeriod(year int) (model.Period, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var p model.Period
	var startStr, endStr string
	err := s.tx.QueryRow(
		"SELECT id, start_date, end_date, number_start, number_end FROM periods WHERE start_date = ?",
		start.Format(dateFormat),
	).Scan(&p.ID, &startStr, &endStr, &p.NumberStart, &p.NumberEnd)
	if err == nil {
		p.StartDate = start
		p.EndDate = end
		return p, nil
	}
	if err != sql.ErrNoRows {
		return model.Period{}, fmt.Errorf("querying period: %w", err)
	}

	res, err := s.tx.Exec(
		"INSERT INTO periods (start_date, end_date, number_start, number_end) VALUES (?, ?, ?, ?)",
		start.Format(dateFormat), end.Format(dateFormat), numberRangeStart, numberRangeEnd,
	)
	if err != nil {
		return model.Period{}, fmt.Errorf("inserting period: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Period{}, fmt.Errorf("reading period id: %w", err)
	}

	return model.Period{
		ID:          id,
		StartDate:   start,
		EndDate:     end,
		NumberStart: numberRangeStart,
		NumberEnd:   numberRangeEnd,
	}, nil
}

func scanEntry(rows *sql.Rows) (model.Entry, error) {
	var e model.Entry
	var isDebit int
	var amount string
	if err := rows.Scan(&e.ID, &e.DocumentID, &e.AccountID, &e.RowNumber, &isDebit, &amount, &e.Description); err != nil {
		return model.Entry{}, fmt.Errorf("scanning entry: %w", err)
	}
	e.IsDebit = isDebit != 0
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	e.Amount = d
	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
