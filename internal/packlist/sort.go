package packlist

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/packing/internal/model"
)

// SortKey selects the ordering of the displayed list.
type SortKey string

const (
	SortInput       SortKey = "input"
	SortDescription SortKey = "description"
	SortPacked      SortKey = "packed"
)

var sortKeys = []SortKey{SortInput, SortDescription, SortPacked}

var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey accepts the key names case-insensitively. Empty means input.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortInput, nil
	}
	for _, k := range sortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return SortInput, fmt.Errorf("%w: %q (want input|description|packed)", ErrUnknownSortKey, s)
}

// Next cycles input -> description -> packed -> input.
func (k SortKey) Next() SortKey {
	for i, kk := range sortKeys {
		if kk == k {
			return sortKeys[(i+1)%len(sortKeys)]
		}
	}
	return SortInput
}

func (k SortKey) Label() string {
	switch k {
	case SortDescription:
		return "Sort by description"
	case SortPacked:
		return "Sort by packed status"
	default:
		return "Sort by input order"
	}
}

// Sorter orders items for display. Descriptions compare with the collation
// rules of its language.
type Sorter struct {
	coll *collate.Collator
}

// NewSorter builds a Sorter for the given language tag, e.g. "en" or "sv".
// Unparseable tags fall back to English.
func NewSorter(lang string) *Sorter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Sorter{coll: collate.New(tag)}
}

// Sort returns a new slice ordered by key; items is left untouched.
// The ordering is stable for every key.
func (s *Sorter) Sort(items []model.Item, key SortKey) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	switch key {
	case SortDescription:
		sort.SliceStable(out, func(i, j int) bool {
			return s.coll.CompareString(out[i].Description, out[j].Description) < 0
		})
	case SortPacked:
		sort.SliceStable(out, func(i, j int) bool {
			return !out[i].Packed && out[j].Packed
		})
	}
	return out
}

// Sort orders items with English collation.
func Sort(items []model.Item, key SortKey) []model.Item {
	return NewSorter("en").Sort(items, key)
}
