// Package finsuite provides the domain logic for a local-first financial
// operations assistant. It is designed to keep every piece of bookkeeping
// data on the user's machine, in human-readable files, with no server in the
// loop.
//
// The core functionalities include:
//   - Statement Ingestion: Parsing CSV financial statements into a table of
//     records, inferring which columns carry revenue, cost of goods, operating
//     expenses, net income and the reporting period.
//   - KPI Derivation: Computing margins, ratios and growth figures from the
//     two most recent periods, with graceful degradation when columns are
//     missing or cells are not numeric.
//   - Narrative Drafting: Deterministically composing a management discussion
//     and analysis draft from the derived KPIs.
//   - Bookkeeping Books: Expense, invoice, budget, cash projection, payables/
//     receivables, goal, payroll and asset collections with derived statements
//     (P&L, balance sheet, cash flow) and a flat-rate tax estimate.
//   - Data Persistence: A small key-value boundary that round-trips every book
//     and the ingested statement table through JSON files on disk.
//
// This package serves as the foundational logic for the `fos` command-line
// tool.
package finsuite
