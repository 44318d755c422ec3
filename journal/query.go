// journal/query.go
package journal

import (
	"database/sql"
	"fmt"
	"strings"
)

const eventColumns = `id, date, ticket, time, symbol, side, event_type,
	size, entry, exit, pnl, commission, swap, magic, comment, chart_url`

func scanEvent(rows *sql.Rows) (Event, error) {
	var e Event
	err := rows.Scan(
		&e.ID, &e.Date, &e.Ticket, &e.Time, &e.Symbol, &e.Side, &e.Type,
		&e.Size, &e.Entry, &e.Exit, &e.PnL, &e.Commission, &e.Swap,
		&e.Magic, &e.Comment, &e.ChartURL,
	)
	return e, err
}

// EventsByDate returns every event for one calendar day, ordered by time
// then insertion order. The id tie-break keeps midnight-stamped rows in a
// deterministic display order.
func (s *Store) EventsByDate(date string) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT `+eventColumns+`
		FROM events
		WHERE date = ?
		ORDER BY time ASC, id ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EventsByType returns all events whose event_type is one of types,
// ordered by (date, time, insertion order) ascending.
func (s *Store) EventsByType(types ...string) ([]Event, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("at least one event type required")
	}

	marks := strings.Repeat("?,", len(types))
	marks = marks[:len(marks)-1]
	args := make([]any, len(types))
	for i, t := range types {
		args[i] = t
	}

	rows, err := s.db.Query(`
		SELECT `+eventColumns+`
		FROM events
		WHERE event_type IN (`+marks+`)
		ORDER BY date ASC, time ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EventDates returns every distinct date present in the event log,
// ascending. Used to rebuild the days table from scratch.
func (s *Store) EventDates() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT date FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DayRow is one persisted day aggregate. Equity-chain balances are not
// stored; they exist only on the DaySummary projection.
type DayRow struct {
	Date      string
	PnL       float64
	NumTrades int
	WinRate   float64
}

// DaysAscending returns all day aggregates ordered by date ascending, the
// order the equity chain must be accumulated in. A NULL pnl (possible in
// databases touched by older tooling) reads as 0 so one bad row cannot
// poison every later balance.
func (s *Store) DaysAscending() ([]DayRow, error) {
	rows, err := s.db.Query(`
		SELECT date, pnl, num_trades, win_rate
		FROM days
		ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DayRow
	for rows.Next() {
		var (
			d       DayRow
			pnl     sql.NullFloat64
			winRate sql.NullFloat64
		)
		if err := rows.Scan(&d.Date, &pnl, &d.NumTrades, &winRate); err != nil {
			return nil, err
		}
		d.PnL = pnl.Float64
		d.WinRate = winRate.Float64
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertDay replaces the aggregate row for one date unconditionally.
func (s *Store) UpsertDay(d DayRow) error {
	_, err := s.db.Exec(`
		INSERT INTO days (date, pnl, num_trades, win_rate)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			pnl = excluded.pnl,
			num_trades = excluded.num_trades,
			win_rate = excluded.win_rate`,
		d.Date, d.PnL, d.NumTrades, d.WinRate,
	)
	return err
}

// PeriodRow is one monthly or yearly rollup computed straight from events,
// so it stays correct even when a day aggregate is stale or missing.
type PeriodRow struct {
	Period      string  `json:"period"`
	TradePnL    float64 `json:"trade_pnl"`
	NonTradePnL float64 `json:"nontrade_pnl"`
	TotalPnL    float64 `json:"total_pnl"`
	NumTrades   int     `json:"num_trades"`
	Wins        int     `json:"wins"`
	TradeDays   int     `json:"trade_days"`
	WinRate     float64 `json:"win_rate"`
}

// periodRollup groups events by the first n characters of date:
// 7 for YYYY-MM, 4 for YYYY. Most recent period first.
func (s *Store) periodRollup(n int) ([]PeriodRow, error) {
	rows, err := s.db.Query(`
		SELECT
			substr(date, 1, ?) AS period,
			SUM(CASE WHEN event_type = 'TRADE' THEN pnl ELSE 0 END) AS trade_pnl,
			SUM(CASE WHEN event_type <> 'TRADE' THEN pnl ELSE 0 END) AS nontrade_pnl,
			SUM(pnl) AS total_pnl,
			SUM(CASE WHEN event_type = 'TRADE' THEN 1 ELSE 0 END) AS num_trades,
			SUM(CASE WHEN event_type = 'TRADE' AND pnl > 0 THEN 1 ELSE 0 END) AS wins,
			COUNT(DISTINCT CASE WHEN event_type = 'TRADE' THEN date END) AS trade_days
		FROM events
		GROUP BY period
		ORDER BY period DESC`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PeriodRow
	for rows.Next() {
		var p PeriodRow
		if err := rows.Scan(
			&p.Period, &p.TradePnL, &p.NonTradePnL, &p.TotalPnL,
			&p.NumTrades, &p.Wins, &p.TradeDays,
		); err != nil {
			return nil, err
		}
		if p.NumTrades > 0 {
			p.WinRate = float64(p.Wins) / float64(p.NumTrades) * 100.0
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyRollup groups events by YYYY-MM, newest month first.
func (s *Store) MonthlyRollup() ([]PeriodRow, error) {
	return s.periodRollup(7)
}

// YearlyRollup groups events by YYYY, newest year first.
func (s *Store) YearlyRollup() ([]PeriodRow, error) {
	return s.periodRollup(4)
}
