// journal/ledger.go
package journal

// Ledger derives the per-day aggregates and the equity-chain projection
// from the event store. It owns no state beyond the injected store handle
// and the baseline equity the chain starts from.
type Ledger struct {
	store    *Store
	baseline float64
}

func NewLedger(store *Store, baselineEquity float64) *Ledger {
	return &Ledger{store: store, baseline: baselineEquity}
}

// Ingest is the single unit of work per incoming event: validate, append,
// recompute the affected day. Duplicate deals still return the append
// result so callers can tell a fresh insert from a replayed one.
func (l *Ledger) Ingest(e Event) (AppendResult, error) {
	if err := e.Normalize(); err != nil {
		return SkippedDuplicate, err
	}

	res, err := l.store.Append(e)
	if err != nil {
		return res, err
	}

	if err := l.RecomputeDay(e.Date); err != nil {
		return res, err
	}
	return res, nil
}

// RecomputeDay rebuilds the aggregate row for one date from its events:
//
//   - pnl sums every event type; deposits and withdrawals move the day's
//     bottom line just like trades do
//   - num_trades counts TRADE events only
//   - win_rate is the percentage of TRADE events with pnl > 0; a zero-pnl
//     trade counts in the denominator but is not a win
//
// A date with no events is left untouched: no phantom zero-day rows. The
// result depends only on the final event set for the date, never on
// arrival order, so recomputation is idempotent.
func (l *Ledger) RecomputeDay(date string) error {
	events, err := l.store.EventsByDate(date)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	var (
		totalPnL  float64
		numTrades int
		wins      int
	)
	for _, e := range events {
		totalPnL += e.PnL
		if e.Type == EventTrade {
			numTrades++
			if e.PnL > 0 {
				wins++
			}
		}
	}

	winRate := 0.0
	if numTrades > 0 {
		winRate = float64(wins) / float64(numTrades) * 100.0
	}

	return l.store.UpsertDay(DayRow{
		Date:      date,
		PnL:       totalPnL,
		NumTrades: numTrades,
		WinRate:   winRate,
	})
}

// RebuildDays recomputes every date present in the event log. The days
// table is a cache over events; this restores it after loss or schema
// changes and must reproduce identical output.
func (l *Ledger) RebuildDays() error {
	dates, err := l.store.EventDates()
	if err != nil {
		return err
	}
	for _, d := range dates {
		if err := l.RecomputeDay(d); err != nil {
			return err
		}
	}
	return nil
}

// DaySummary is one day aggregate with the equity chain applied.
type DaySummary struct {
	Date            string  `json:"date"`
	StartingBalance float64 `json:"starting_balance"`
	EndingBalance   float64 `json:"ending_balance"`
	PnL             float64 `json:"pnl"`
	NumTrades       int     `json:"num_trades"`
	WinRate         float64 `json:"win_rate"`
}

// ListDays returns every day with chained balances, newest date first.
//
// The chain is only valid accumulated forward in time, so days are loaded
// ascending, each day's starting balance is the running equity and its
// ending balance the equity after applying the day's pnl, and the slice is
// reversed at the end for display.
func (l *Ledger) ListDays() ([]DaySummary, error) {
	rows, err := l.store.DaysAscending()
	if err != nil {
		return nil, err
	}

	out := make([]DaySummary, len(rows))
	equity := l.baseline
	for i, d := range rows {
		start := equity
		equity += d.PnL
		out[i] = DaySummary{
			Date:            d.Date,
			StartingBalance: start,
			EndingBalance:   equity,
			PnL:             d.PnL,
			NumTrades:       d.NumTrades,
			WinRate:         d.WinRate,
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// TradesOn returns all events for one date in display order.
func (l *Ledger) TradesOn(date string) ([]Event, error) {
	return l.store.EventsByDate(date)
}

// Flow is one deposit or withdrawal, trimmed to the fields the flow
// report shows.
type Flow struct {
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Type    string  `json:"event_type"`
	Symbol  string  `json:"symbol"`
	Amount  float64 `json:"pnl"`
	Comment string  `json:"comment"`
}

// Flows returns every deposit and withdrawal in chronological order.
func (l *Ledger) Flows() ([]Flow, error) {
	events, err := l.store.EventsByType(EventDeposit, EventWithdrawal)
	if err != nil {
		return nil, err
	}

	out := make([]Flow, len(events))
	for i, e := range events {
		out[i] = Flow{
			Date:    e.Date,
			Time:    e.Time,
			Type:    e.Type,
			Symbol:  e.Symbol,
			Amount:  e.PnL,
			Comment: e.Comment,
		}
	}
	return out, nil
}

// Monthly returns per-month rollups, newest first.
func (l *Ledger) Monthly() ([]PeriodRow, error) {
	return l.store.MonthlyRollup()
}

// Yearly returns per-year rollups, newest first.
func (l *Ledger) Yearly() ([]PeriodRow, error) {
	return l.store.YearlyRollup()
}
