package finsuite

import (
	"errors"
	"strings"
)

// Errors raised by statement ingestion. Nothing downstream of ingestion ever
// fails: missing columns and malformed cells degrade to absent values instead.
var (
	// ErrEmptyInput is returned when the input text holds no non-blank line.
	ErrEmptyInput = errors.New("input contains no data")
	// ErrNoRows is returned when a header line exists but no data row follows.
	ErrNoRows = errors.New("no rows found")
)

// Record maps a column name to the cell value of one statement row.
type Record map[string]string

// Table is an ordered sequence of statement records together with the header
// columns in source order. Every record carries exactly the header's key set:
// short rows are padded with empty cells, extra trailing cells are dropped.
type Table struct {
	Columns []string
	Rows    []Record
}

// splitRow splits a single physical line on commas, honoring double-quote
// fencing: inside quotes a comma is literal, and a doubled quote collapses to
// one. An unterminated quote consumes to the end of the line rather than
// failing. Fields are trimmed after unquoting.
func splitRow(line string) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	out = append(out, strings.TrimSpace(cur.String()))
	return out
}

// ParseTable parses a whole CSV text into a Table. Line endings are
// normalized (CRLF and lone CR count as line breaks) and blank lines are
// discarded before the first surviving line becomes the header.
//
// Duplicate header names are not deduplicated: a later duplicate silently
// overwrites the earlier cell in each record, matching map semantics.
//
// Quoted fields spanning multiple physical lines are a known limitation:
// each line is tokenized independently.
func ParseTable(text string) (*Table, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	columns := splitRow(lines[0])
	if len(lines) == 1 {
		return nil, ErrNoRows
	}

	t := &Table{Columns: columns}
	for _, l := range lines[1:] {
		cells := splitRow(l)
		rec := make(Record, len(columns))
		for j, col := range columns {
			if j < len(cells) {
				rec[col] = cells[j]
			} else {
				rec[col] = ""
			}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
