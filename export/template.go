package export

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>MT5 Trading Journal - Static Report</title>
  <style>
    body {
      font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
      margin: 20px;
      background: #f5f5f5;
      color: #111827;
    }
    h1, h2 {
      margin-top: 1.5rem;
      margin-bottom: 0.5rem;
    }
    .meta {
      font-size: 0.85rem;
      color: #6b7280;
      margin-bottom: 1rem;
    }
    table {
      border-collapse: collapse;
      width: 100%;
      margin-bottom: 1.5rem;
      font-size: 0.9rem;
      background: #ffffff;
    }
    th, td {
      border: 1px solid #d4d4d4;
      padding: 6px 8px;
      text-align: right;
    }
    th {
      background: #e5e7eb;
      font-weight: 600;
    }
    th:first-child, td:first-child {
      text-align: left;
    }
    .pos { color: #16a34a; }
    .neg { color: #dc2626; }
    .section { margin-bottom: 2.5rem; }
    .small-note {
      font-size: 0.8rem;
      color: #6b7280;
    }
  </style>
</head>
<body>
  <h1>MT5 Trading Journal - Static Report</h1>
  <div class="meta">
    Generated at: {{.GeneratedAt}}<br/>
    Snapshot: {{.SnapshotID}}<br/>
    This is a read-only snapshot exported from your local journal.
  </div>

  <div class="section">
    <h2>Daily PNL Overview</h2>
    <table>
      <thead>
        <tr>
          <th>Date</th>
          <th>Start</th>
          <th>PnL</th>
          <th>End</th>
          <th># Trades</th>
          <th>Win %</th>
        </tr>
      </thead>
      <tbody>
        {{range .Days}}<tr>
          <td>{{.Date}}</td>
          <td>{{money .StartingBalance}}</td>
          <td class="{{cls .PnL}}">{{signed .PnL}}</td>
          <td>{{money .EndingBalance}}</td>
          <td>{{.NumTrades}}</td>
          <td>{{pct .WinRate}}</td>
        </tr>
        {{else}}<tr><td colspan="6"><em>No days found in journal.</em></td></tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div class="section">
    <h2>Deposits &amp; Withdrawals</h2>
    <table>
      <thead>
        <tr>
          <th>Date</th>
          <th>Time</th>
          <th>Type</th>
          <th>Symbol</th>
          <th>Amount</th>
          <th>Comment</th>
        </tr>
      </thead>
      <tbody>
        {{range .Flows}}<tr>
          <td>{{.Date}}</td>
          <td>{{.Time}}</td>
          <td>{{.Type}}</td>
          <td>{{.Symbol}}</td>
          <td class="{{cls .Amount}}">{{signed .Amount}}</td>
          <td>{{.Comment}}</td>
        </tr>
        {{else}}<tr><td colspan="6"><em>No deposits or withdrawals recorded.</em></td></tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div class="section">
    <h2>Monthly Statistics</h2>
    <table>
      <thead>
        <tr>
          <th>Month</th>
          <th>Trade PnL</th>
          <th>Non-Trade PnL</th>
          <th>Total PnL</th>
          <th># Trades</th>
          <th>Trade Days</th>
          <th>Win %</th>
        </tr>
      </thead>
      <tbody>
        {{range .Months}}<tr>
          <td>{{.Period}}</td>
          <td class="{{cls .TradePnL}}">{{signed .TradePnL}}</td>
          <td class="{{cls .NonTradePnL}}">{{signed .NonTradePnL}}</td>
          <td class="{{cls .TotalPnL}}">{{signed .TotalPnL}}</td>
          <td>{{.NumTrades}}</td>
          <td>{{.TradeDays}}</td>
          <td>{{pct .WinRate}}</td>
        </tr>
        {{else}}<tr><td colspan="7"><em>No monthly stats yet.</em></td></tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div class="section">
    <h2>Yearly Statistics</h2>
    <table>
      <thead>
        <tr>
          <th>Year</th>
          <th>Trade PnL</th>
          <th>Non-Trade PnL</th>
          <th>Total PnL</th>
          <th># Trades</th>
          <th>Trade Days</th>
          <th>Win %</th>
        </tr>
      </thead>
      <tbody>
        {{range .Years}}<tr>
          <td>{{.Period}}</td>
          <td class="{{cls .TradePnL}}">{{signed .TradePnL}}</td>
          <td class="{{cls .NonTradePnL}}">{{signed .NonTradePnL}}</td>
          <td class="{{cls .TotalPnL}}">{{signed .TotalPnL}}</td>
          <td>{{.NumTrades}}</td>
          <td>{{.TradeDays}}</td>
          <td>{{pct .WinRate}}</td>
        </tr>
        {{else}}<tr><td colspan="7"><em>No yearly stats yet.</em></td></tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div class="small-note">
    Backend: MT5 + SQLite (local).<br/>
    This HTML file can be hosted on GitHub Pages or any static host.
  </div>
</body>
</html>
`
