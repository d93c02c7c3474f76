package store_test

import (
	"testing"

	"hrdesk/internal/store"
)

func TestMatchAny(t *testing.T) {
	cases := []struct {
		term   string
		fields []string
		want   bool
	}{
		{"", []string{"anything"}, true},
		{"   ", nil, true},
		{"ali", []string{"Ali Raza", "Engineering"}, true},
		{"ENGIN", []string{"Ali Raza", "Engineering"}, true},
		{"finance", []string{"Ali Raza", "Engineering"}, false},
		{"x", nil, false},
	}
	for _, tc := range cases {
		if got := store.MatchAny(tc.term, tc.fields...); got != tc.want {
			t.Errorf("MatchAny(%q, %v) = %v, want %v", tc.term, tc.fields, got, tc.want)
		}
	}
}

func TestWhereIsIdempotent(t *testing.T) {
	names := []string{"Laptop", "Office Chair", "laptop bag", "Projector"}
	pred := func(s string) bool { return store.MatchAny("lap", s) }

	once := store.Where(names, pred)
	twice := store.Where(once, pred)
	if len(once) != 2 || len(twice) != len(once) {
		t.Fatalf("expected stable result, got %v then %v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("order changed: %v vs %v", once, twice)
		}
	}
	if len(names) != 4 {
		t.Fatal("source slice modified")
	}
	if n := store.CountWhere(names, pred); n != 2 {
		t.Fatalf("expected count 2, got %d", n)
	}
}

func TestNextInt(t *testing.T) {
	if got := store.NextInt(nil); got != 1 {
		t.Fatalf("expected 1 on empty, got %d", got)
	}
	if got := store.NextInt([]int{3, 9, 2}); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := store.NextInt([]int{-5}); got != 1 {
		t.Fatalf("negative ids should not lower the floor, got %d", got)
	}
}
