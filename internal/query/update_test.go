package query

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/jobhive/jobhive/internal/apperr"
)

func TestBuildPartialUpdateEmpty(t *testing.T) {
	_, _, err := BuildPartialUpdate(map[string]any{}, nil)
	if err == nil {
		t.Fatal("expected error for empty update set")
	}
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, _, err = BuildPartialUpdate(nil, ColumnMap{"a": "b"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for nil set, got %v", err)
	}
}

func TestBuildPartialUpdateMapsColumns(t *testing.T) {
	data := map[string]any{
		"firstName": "Aliya",
		"age":       32,
	}
	cols := ColumnMap{"firstName": "first_name"}

	assignments, values, err := BuildPartialUpdate(data, cols)
	if err != nil {
		t.Fatal(err)
	}

	// Sorted key order: age before firstName.
	wantAssignments := []string{`"age" = $1`, `"first_name" = $2`}
	if !reflect.DeepEqual(assignments, wantAssignments) {
		t.Errorf("assignments = %v, want %v", assignments, wantAssignments)
	}
	wantValues := []any{32, "Aliya"}
	if !reflect.DeepEqual(values, wantValues) {
		t.Errorf("values = %v, want %v", values, wantValues)
	}
}

func TestBuildPartialUpdateUnmappedFieldPassesThrough(t *testing.T) {
	assignments, _, err := BuildPartialUpdate(map[string]any{"title": "Engineer"}, ColumnMap{"numEmployees": "num_employees"})
	if err != nil {
		t.Fatal(err)
	}
	if assignments[0] != `"title" = $1` {
		t.Errorf("assignment = %q, want identity column", assignments[0])
	}
}

func TestBuildPartialUpdatePlaceholderContiguity(t *testing.T) {
	data := map[string]any{
		"a": 1, "b": 2, "c": 3, "d": 4, "e": 5,
	}
	assignments, values, err := BuildPartialUpdate(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(assignments) != len(data) || len(values) != len(data) {
		t.Fatalf("lengths: assignments=%d values=%d, want %d", len(assignments), len(values), len(data))
	}
	for i, a := range assignments {
		want := fmt.Sprintf("$%d", i+1)
		if a[len(a)-len(want):] != want {
			t.Errorf("assignment %d = %q, want trailing %s", i, a, want)
		}
	}
}

func TestBuildPartialUpdateDeterministic(t *testing.T) {
	data := map[string]any{"z": 1, "m": 2, "a": 3}
	first, _, err := BuildPartialUpdate(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	for range 20 {
		next, _, err := BuildPartialUpdate(data, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("non-deterministic output: %v vs %v", first, next)
		}
	}
}

func TestColumnMapFallback(t *testing.T) {
	cols := ColumnMap{"logoUrl": "logo_url"}
	if got := cols.Column("logoUrl"); got != "logo_url" {
		t.Errorf("Column(logoUrl) = %q", got)
	}
	if got := cols.Column("description"); got != "description" {
		t.Errorf("Column(description) = %q", got)
	}
	var nilMap ColumnMap
	if got := nilMap.Column("title"); got != "title" {
		t.Errorf("nil map Column(title) = %q", got)
	}
}
