package packlist

import (
	"errors"
	"reflect"
	"testing"

	"github.com/idilsaglam/packing/internal/model"
)

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func sample() []model.Item {
	return []model.Item{
		{ID: "1", Description: "socks", Quantity: 4, Packed: true},
		{ID: "2", Description: "Passport", Quantity: 1},
		{ID: "3", Description: "charger", Quantity: 1, Packed: true},
		{ID: "4", Description: "Écharpe", Quantity: 1},
		{ID: "5", Description: "book", Quantity: 2},
	}
}

func TestSortInputKeepsStoreOrder(t *testing.T) {
	items := sample()
	got := Sort(items, SortInput)
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected input order, got %v", ids(got))
	}
	got[0].Description = "changed"
	if items[0].Description == "changed" {
		t.Fatalf("Sort must return a new slice")
	}
}

func TestSortDescriptionIsLocaleAware(t *testing.T) {
	items := sample()
	got := Sort(items, SortDescription)
	// Collation ignores case and folds accents: book, charger, Écharpe, Passport, socks.
	want := []string{"5", "3", "4", "2", "1"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
	if !reflect.DeepEqual(ids(items), []string{"1", "2", "3", "4", "5"}) {
		t.Fatalf("source slice was reordered")
	}
}

func TestSortDescriptionStableOnTies(t *testing.T) {
	items := []model.Item{
		{ID: "a", Description: "Tent"},
		{ID: "b", Description: "Hat"},
		{ID: "c", Description: "Tent"},
		{ID: "d", Description: "Tent"},
	}
	got := ids(Sort(items, SortDescription))
	want := []string{"b", "a", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortPackedIsStable(t *testing.T) {
	items := sample()
	got := ids(Sort(items, SortPacked))
	want := []string{"2", "4", "5", "1", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortEmpty(t *testing.T) {
	for _, k := range sortKeys {
		if got := Sort(nil, k); len(got) != 0 {
			t.Fatalf("%s: expected empty result, got %v", k, got)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"", SortInput, false},
		{"input", SortInput, false},
		{"Description", SortDescription, false},
		{" PACKED ", SortPacked, false},
		{"size", SortInput, true},
	}
	for _, tc := range cases {
		got, err := ParseSortKey(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownSortKey) {
				t.Fatalf("ParseSortKey(%q): expected ErrUnknownSortKey, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSortKey(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSortKey(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSortKeyNextCycles(t *testing.T) {
	k := SortInput
	seen := []SortKey{k}
	for i := 0; i < 3; i++ {
		k = k.Next()
		seen = append(seen, k)
	}
	want := []SortKey{SortInput, SortDescription, SortPacked, SortInput}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	if SortKey("bogus").Next() != SortInput {
		t.Fatalf("unknown keys should restart the cycle")
	}
}
