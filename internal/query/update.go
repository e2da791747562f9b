// Package query builds the dynamic pieces of SQL statements: SET-clause
// assignments for partial updates and WHERE predicates for filtered
// searches. Builders only produce fragment text and a parallel
// positional value list; assembling and executing the full statement is
// the caller's job. Values never appear inline in fragment text.
package query

import (
	"fmt"
	"sort"

	"github.com/jobhive/jobhive/internal/apperr"
)

// ColumnMap translates external JSON field names to storage column
// names. Fields without a mapping pass through unchanged.
type ColumnMap map[string]string

// Column resolves an external field name, falling back to the field
// name itself when no mapping exists.
func (m ColumnMap) Column(field string) string {
	if col, ok := m[field]; ok {
		return col
	}
	return field
}

// BuildPartialUpdate turns a sparse field/value set into quoted
// `"column" = $n` assignments with 1-based contiguous placeholders and
// the matching value list. Keys are visited in sorted order so the
// generated statement is deterministic regardless of map iteration.
//
// An empty update set is rejected before any statement text exists.
func BuildPartialUpdate(data map[string]any, cols ColumnMap) ([]string, []any, error) {
	if len(data) == 0 {
		return nil, nil, apperr.Validation("no data")
	}

	fields := make([]string, 0, len(data))
	for field := range data {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	assignments := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for i, field := range fields {
		assignments = append(assignments, fmt.Sprintf("%q = $%d", cols.Column(field), i+1))
		values = append(values, data[field])
	}
	return assignments, values, nil
}
