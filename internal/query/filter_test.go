package query

import (
	"reflect"
	"testing"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestCompanyFilterBuild(t *testing.T) {
	tests := []struct {
		name       string
		filter     CompanyFilter
		wantPreds  []string
		wantValues []any
	}{
		{
			name:       "no criteria",
			filter:     CompanyFilter{},
			wantPreds:  nil,
			wantValues: nil,
		},
		{
			name:       "min only",
			filter:     CompanyFilter{MinEmployees: intPtr(10)},
			wantPreds:  []string{"num_employees >= $1"},
			wantValues: []any{10},
		},
		{
			name:       "max only",
			filter:     CompanyFilter{MaxEmployees: intPtr(500)},
			wantPreds:  []string{"num_employees <= $1"},
			wantValues: []any{500},
		},
		{
			name:       "name only wraps wildcards",
			filter:     CompanyFilter{NameLike: "net"},
			wantPreds:  []string{"name ILIKE $1"},
			wantValues: []any{"%net%"},
		},
		{
			name:       "all criteria in definition order",
			filter:     CompanyFilter{MinEmployees: intPtr(10), MaxEmployees: intPtr(500), NameLike: "net"},
			wantPreds:  []string{"num_employees >= $1", "num_employees <= $2", "name ILIKE $3"},
			wantValues: []any{10, 500, "%net%"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds, values := tt.filter.Build()
			if !reflect.DeepEqual(preds, tt.wantPreds) {
				t.Errorf("predicates = %v, want %v", preds, tt.wantPreds)
			}
			if !reflect.DeepEqual(values, tt.wantValues) {
				t.Errorf("values = %v, want %v", values, tt.wantValues)
			}
		})
	}
}

func TestJobFilterBuild(t *testing.T) {
	tests := []struct {
		name       string
		filter     JobFilter
		wantPreds  []string
		wantValues []any
	}{
		{
			name:       "no criteria",
			filter:     JobFilter{},
			wantPreds:  nil,
			wantValues: nil,
		},
		{
			name:       "all criteria",
			filter:     JobFilter{MinSalary: intPtr(50000), HasEquity: boolPtr(true), Title: "Engineer"},
			wantPreds:  []string{"salary >= $1", "equity > 0", "title ILIKE $2"},
			wantValues: []any{50000, "%Engineer%"},
		},
		{
			name:       "equity true alone carries no value",
			filter:     JobFilter{HasEquity: boolPtr(true)},
			wantPreds:  []string{"equity > 0"},
			wantValues: nil,
		},
		{
			name:       "equity false is a no-op",
			filter:     JobFilter{HasEquity: boolPtr(false)},
			wantPreds:  nil,
			wantValues: nil,
		},
		{
			name:       "equity absent is a no-op",
			filter:     JobFilter{MinSalary: intPtr(1000)},
			wantPreds:  []string{"salary >= $1"},
			wantValues: []any{1000},
		},
		{
			name:       "equity false between valued predicates keeps numbering contiguous",
			filter:     JobFilter{MinSalary: intPtr(1), HasEquity: boolPtr(false), Title: "go"},
			wantPreds:  []string{"salary >= $1", "title ILIKE $2"},
			wantValues: []any{1, "%go%"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds, values := tt.filter.Build()
			if !reflect.DeepEqual(preds, tt.wantPreds) {
				t.Errorf("predicates = %v, want %v", preds, tt.wantPreds)
			}
			if !reflect.DeepEqual(values, tt.wantValues) {
				t.Errorf("values = %v, want %v", values, tt.wantValues)
			}
		})
	}
}

func TestJobFilterValueCountExcludesBooleanPredicates(t *testing.T) {
	filter := JobFilter{MinSalary: intPtr(1), HasEquity: boolPtr(true), Title: "x"}
	preds, values := filter.Build()
	if len(preds) != 3 {
		t.Fatalf("predicates = %d, want 3", len(preds))
	}
	// equity > 0 carries no positional value
	if len(values) != 2 {
		t.Fatalf("values = %d, want 2", len(values))
	}
}

func TestWhereClause(t *testing.T) {
	if got := WhereClause(nil); got != "" {
		t.Errorf("WhereClause(nil) = %q, want empty", got)
	}
	got := WhereClause([]string{"a = $1", "b = $2"})
	if got != " WHERE a = $1 AND b = $2" {
		t.Errorf("WhereClause = %q", got)
	}
}
