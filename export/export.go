// Package export renders the journal into a single self-contained HTML
// report suitable for static hosting.
package export

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rustyeddy/mt5journal/journal"
	"github.com/rustyeddy/mt5journal/pkg/id"
)

// Report is everything one snapshot shows. All derived numbers come from
// the ledger read surface; nothing is recomputed here.
type Report struct {
	GeneratedAt string
	SnapshotID  string
	Days        []journal.DaySummary
	Flows       []journal.Flow
	Months      []journal.PeriodRow
	Years       []journal.PeriodRow
}

// Build assembles a report from the ledger.
func Build(ledger *journal.Ledger) (Report, error) {
	days, err := ledger.ListDays()
	if err != nil {
		return Report{}, fmt.Errorf("list days: %w", err)
	}
	flows, err := ledger.Flows()
	if err != nil {
		return Report{}, fmt.Errorf("list flows: %w", err)
	}
	months, err := ledger.Monthly()
	if err != nil {
		return Report{}, fmt.Errorf("monthly stats: %w", err)
	}
	years, err := ledger.Yearly()
	if err != nil {
		return Report{}, fmt.Errorf("yearly stats: %w", err)
	}

	return Report{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		SnapshotID:  id.New(),
		Days:        days,
		Flows:       flows,
		Months:      months,
		Years:       years,
	}, nil
}

// Write builds the report and writes it to outDir/index.html, creating
// the directory if needed. Returns the written path.
func Write(ledger *journal.Ledger, outDir string) (string, error) {
	rep, err := Build(ledger)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(outDir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := Render(f, rep); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return path, nil
}

// Render writes the HTML report to w.
func Render(w io.Writer, rep Report) error {
	return reportTmpl.Execute(w, rep)
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"money":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"signed": func(v float64) string { return fmt.Sprintf("%+.2f", v) },
	"pct":    func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	"cls": func(v float64) string {
		if v < 0 {
			return "neg"
		}
		return "pos"
	},
}).Parse(reportHTML))
