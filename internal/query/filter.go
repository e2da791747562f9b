package query

import (
	"fmt"
	"strings"
)

// CompanyFilter holds the optional search criteria for companies.
// Nil or zero-valued fields contribute no predicate.
type CompanyFilter struct {
	MinEmployees *int
	MaxEmployees *int
	NameLike     string
}

// Build emits predicate fragments in fixed criteria order
// (minEmployees, maxEmployees, nameLike) with 1-based placeholders and
// the matching value list. The min<=max bound check is the caller's
// responsibility; it runs before this does.
func (f CompanyFilter) Build() ([]string, []any) {
	var predicates []string
	var values []any
	if f.MinEmployees != nil {
		values = append(values, *f.MinEmployees)
		predicates = append(predicates, fmt.Sprintf("num_employees >= $%d", len(values)))
	}
	if f.MaxEmployees != nil {
		values = append(values, *f.MaxEmployees)
		predicates = append(predicates, fmt.Sprintf("num_employees <= $%d", len(values)))
	}
	if f.NameLike != "" {
		values = append(values, "%"+f.NameLike+"%")
		predicates = append(predicates, fmt.Sprintf("name ILIKE $%d", len(values)))
	}
	return predicates, values
}

// JobFilter holds the optional search criteria for jobs.
type JobFilter struct {
	MinSalary *int
	HasEquity *bool
	Title     string
}

// Build emits predicate fragments in fixed criteria order (minSalary,
// hasEquity, title). The equity predicate carries no positional value
// and appears only when HasEquity is exactly true; false and absent
// are both no-ops.
func (f JobFilter) Build() ([]string, []any) {
	var predicates []string
	var values []any
	if f.MinSalary != nil {
		values = append(values, *f.MinSalary)
		predicates = append(predicates, fmt.Sprintf("salary >= $%d", len(values)))
	}
	if f.HasEquity != nil && *f.HasEquity {
		predicates = append(predicates, "equity > 0")
	}
	if f.Title != "" {
		values = append(values, "%"+f.Title+"%")
		predicates = append(predicates, fmt.Sprintf("title ILIKE $%d", len(values)))
	}
	return predicates, values
}

// WhereClause joins predicate fragments with AND into a WHERE clause,
// or returns the empty string when there are no predicates so callers
// omit the clause entirely.
func WhereClause(predicates []string) string {
	if len(predicates) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(predicates, " AND ")
}
