// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	ticket INTEGER NOT NULL DEFAULT 0,
	time TEXT NOT NULL DEFAULT '00:00:00',
	symbol TEXT NOT NULL DEFAULT '',
	side TEXT NOT NULL DEFAULT '',
	event_type TEXT NOT NULL DEFAULT 'TRADE',
	size REAL NOT NULL DEFAULT 0,
	entry REAL NOT NULL DEFAULT 0,
	exit REAL NOT NULL DEFAULT 0,
	pnl REAL NOT NULL DEFAULT 0,
	commission REAL NOT NULL DEFAULT 0,
	swap REAL NOT NULL DEFAULT 0,
	magic INTEGER NOT NULL DEFAULT 0,
	comment TEXT NOT NULL DEFAULT '',
	chart_url TEXT NOT NULL DEFAULT ''
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_events_ticket
	ON events(ticket) WHERE ticket > 0;

CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);

CREATE TABLE IF NOT EXISTS days (
	date TEXT PRIMARY KEY,
	pnl REAL NOT NULL DEFAULT 0,
	num_trades INTEGER NOT NULL DEFAULT 0,
	win_rate REAL NOT NULL DEFAULT 0
);
`
