// journal/sqlite.go
package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// AppendResult reports what Append did with an event.
type AppendResult int

const (
	Inserted AppendResult = iota
	SkippedDuplicate
)

func (r AppendResult) String() string {
	if r == SkippedDuplicate {
		return "skipped_duplicate"
	}
	return "inserted"
}

// Store is the SQLite-backed event store. Events are append-only; the
// derived days table is rebuilt per date by the Ledger.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the journal database and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Append inserts one event. A duplicate deal (ticket > 0 already stored
// anywhere) is a silent no-op, so the same terminal history can be
// resubmitted safely. Rows with ticket <= 0 always insert; repeated
// deposits and withdrawals are legitimate.
func (s *Store) Append(e Event) (AppendResult, error) {
	res, err := s.db.Exec(`
		INSERT INTO events
		(date, ticket, time, symbol, side, event_type,
		 size, entry, exit, pnl, commission, swap,
		 magic, comment, chart_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ticket) WHERE ticket > 0 DO NOTHING`,
		e.Date, e.Ticket, e.Time, e.Symbol, e.Side, e.Type,
		e.Size, e.Entry, e.Exit, e.PnL, e.Commission, e.Swap,
		e.Magic, e.Comment, e.ChartURL,
	)
	if err != nil {
		return SkippedDuplicate, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return SkippedDuplicate, err
	}
	if n == 0 {
		return SkippedDuplicate, nil
	}
	return Inserted, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
