// journal/event.go
package journal

import "errors"

// ErrMissingDate is returned when an event arrives without its calendar day.
var ErrMissingDate = errors.New("event is missing required field \"date\"")

// Event types understood by the ledger. Anything else is stored and summed
// as-is but counts as a non-trade event.
const (
	EventTrade      = "TRADE"
	EventDeposit    = "DEPOSIT"
	EventWithdrawal = "WITHDRAWAL"
	EventAdjust     = "ADJUST"
)

// Event is one recorded trading/account occurrence: a deal fill, a deposit,
// a withdrawal, or a manual adjustment. Events are immutable once stored;
// corrections are appended as new ADJUST events.
type Event struct {
	// ID is the surrogate insertion-order id assigned by the store.
	// Zero until the event has been read back.
	ID int64 `json:"id,omitempty"`

	// Date is the calendar day (YYYY-MM-DD) the event belongs to.
	Date string `json:"date"`

	// Ticket is the terminal's deal identifier. Tickets > 0 are unique
	// across the whole store; ticket 0 marks rows that are never
	// deduplicated (deposits, withdrawals, adjustments).
	Ticket int64 `json:"ticket"`

	Time   string `json:"time"`
	Symbol string `json:"symbol"`
	Side   string `json:"side"`
	Type   string `json:"event_type"`

	Size       float64 `json:"size"`
	Entry      float64 `json:"entry"`
	Exit       float64 `json:"exit"`
	PnL        float64 `json:"pnl"`
	Commission float64 `json:"commission"`
	Swap       float64 `json:"swap"`

	Magic    int64  `json:"magic"`
	Comment  string `json:"comment"`
	ChartURL string `json:"chart_url"`
}

// Adjustment builds the manual-correction event for a date. Ticket 0
// keeps it out of deduplication, so repeated adjustments stack.
func Adjustment(date string, delta float64) Event {
	return Event{
		Date:    date,
		Time:    "00:00:00",
		Symbol:  "ADJ",
		Side:    "ADJUST",
		Type:    EventAdjust,
		PnL:     delta,
		Magic:   999999,
		Comment: "Manual adjustment",
	}
}

// Normalize validates the event at the ingestion boundary and fills in the
// defaults the terminal omits. It is the only place defaults are applied;
// everything past this point treats the record as fully populated.
func (e *Event) Normalize() error {
	if e.Date == "" {
		return ErrMissingDate
	}
	if e.Time == "" {
		e.Time = "00:00:00"
	}
	if e.Type == "" {
		e.Type = EventTrade
	}
	return nil
}
