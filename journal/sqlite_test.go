package journal

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "journal.db")

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestOpenCreatesSchema(t *testing.T) {
	t.Parallel()

	_, path := newTestStore(t)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('events','days')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	require.NoError(t, rows.Err())

	assert.True(t, found["events"])
	assert.True(t, found["days"])
}

func TestAppendDeduplicatesTickets(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	e := Event{Date: "2024-01-01", Ticket: 1001, Time: "10:00:00", Type: EventTrade, PnL: 50}

	res, err := s.Append(e)
	require.NoError(t, err)
	assert.Equal(t, Inserted, res)

	res, err = s.Append(e)
	require.NoError(t, err)
	assert.Equal(t, SkippedDuplicate, res)

	events, err := s.EventsByDate("2024-01-01")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestAppendDedupIsCrossDay(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	_, err := s.Append(Event{Date: "2024-01-01", Ticket: 7, Time: "10:00:00", Type: EventTrade, PnL: 10})
	require.NoError(t, err)

	// Same ticket resubmitted under a different date still skips.
	res, err := s.Append(Event{Date: "2024-01-02", Ticket: 7, Time: "11:00:00", Type: EventTrade, PnL: 20})
	require.NoError(t, err)
	assert.Equal(t, SkippedDuplicate, res)

	events, err := s.EventsByDate("2024-01-02")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAppendZeroTicketAlwaysInserts(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	dep := Event{Date: "2024-01-01", Ticket: 0, Time: "00:00:00", Type: EventDeposit, PnL: 500}

	for i := 0; i < 3; i++ {
		res, err := s.Append(dep)
		require.NoError(t, err)
		assert.Equal(t, Inserted, res)
	}

	events, err := s.EventsByDate("2024-01-01")
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestEventsByDateOrdering(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	// Two midnight-stamped rows plus a later one, inserted out of order.
	_, err := s.Append(Event{Date: "2024-03-01", Ticket: 0, Time: "09:30:00", Type: EventTrade, Symbol: "late"})
	require.NoError(t, err)
	_, err = s.Append(Event{Date: "2024-03-01", Ticket: 0, Time: "00:00:00", Type: EventAdjust, Symbol: "first"})
	require.NoError(t, err)
	_, err = s.Append(Event{Date: "2024-03-01", Ticket: 0, Time: "00:00:00", Type: EventAdjust, Symbol: "second"})
	require.NoError(t, err)

	events, err := s.EventsByDate("2024-03-01")
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Time ascending, insertion order breaks the midnight tie.
	assert.Equal(t, "first", events[0].Symbol)
	assert.Equal(t, "second", events[1].Symbol)
	assert.Equal(t, "late", events[2].Symbol)
	assert.Less(t, events[0].ID, events[1].ID)
}

func TestEventsByDateRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	want := Event{
		Date:       "2024-02-02",
		Ticket:     42,
		Time:       "14:05:06",
		Symbol:     "EURUSD",
		Side:       "BUY",
		Type:       EventTrade,
		Size:       0.5,
		Entry:      1.0850,
		Exit:       1.0875,
		PnL:        125.0,
		Commission: -3.5,
		Swap:       -0.7,
		Magic:      12345,
		Comment:    "breakout",
		ChartURL:   "https://charts.example/42",
	}

	_, err := s.Append(want)
	require.NoError(t, err)

	events, err := s.EventsByDate("2024-02-02")
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.NotZero(t, got.ID)
	assert.Equal(t, want.Date, got.Date)
	assert.Equal(t, want.Ticket, got.Ticket)
	assert.Equal(t, want.Time, got.Time)
	assert.Equal(t, want.Symbol, got.Symbol)
	assert.Equal(t, want.Side, got.Side)
	assert.Equal(t, want.Type, got.Type)
	assert.InDelta(t, want.Size, got.Size, 1e-9)
	assert.InDelta(t, want.Entry, got.Entry, 1e-9)
	assert.InDelta(t, want.Exit, got.Exit, 1e-9)
	assert.InDelta(t, want.PnL, got.PnL, 1e-9)
	assert.InDelta(t, want.Commission, got.Commission, 1e-9)
	assert.InDelta(t, want.Swap, got.Swap, 1e-9)
	assert.Equal(t, want.Magic, got.Magic)
	assert.Equal(t, want.Comment, got.Comment)
	assert.Equal(t, want.ChartURL, got.ChartURL)
}

func TestEventsByTypeOrdering(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	_, err := s.Append(Event{Date: "2024-02-01", Time: "12:00:00", Type: EventWithdrawal, PnL: -200})
	require.NoError(t, err)
	_, err = s.Append(Event{Date: "2024-01-15", Time: "09:00:00", Type: EventDeposit, PnL: 1000})
	require.NoError(t, err)
	_, err = s.Append(Event{Date: "2024-01-15", Time: "10:00:00", Ticket: 1, Type: EventTrade, PnL: 50})
	require.NoError(t, err)

	flows, err := s.EventsByType(EventDeposit, EventWithdrawal)
	require.NoError(t, err)
	require.Len(t, flows, 2)

	assert.Equal(t, EventDeposit, flows[0].Type)
	assert.Equal(t, EventWithdrawal, flows[1].Type)
}

func TestEventsByTypeRequiresTypes(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	_, err := s.EventsByType()
	assert.Error(t, err)
}

func TestUnrecognizedEventTypePassesThrough(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	_, err := s.Append(Event{Date: "2024-05-05", Time: "08:00:00", Type: "REBATE", PnL: 2.5})
	require.NoError(t, err)

	events, err := s.EventsByDate("2024-05-05")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "REBATE", events[0].Type)
}
