package packlist

import (
	"fmt"
	"math"

	"github.com/idilsaglam/packing/internal/model"
)

// Stats summarises the list. PercentagePacked is not rounded; callers must
// check Empty before reading it.
type Stats struct {
	TotalItems       int
	PackedItems      int
	PercentagePacked float64
	Empty            bool
}

func ComputeStats(items []model.Item) Stats {
	if len(items) == 0 {
		return Stats{Empty: true}
	}
	st := Stats{TotalItems: len(items)}
	for _, it := range items {
		if it.Packed {
			st.PackedItems++
		}
	}
	st.PercentagePacked = float64(st.PackedItems) / float64(st.TotalItems) * 100
	return st
}

// Done reports whether every item is packed.
func (st Stats) Done() bool {
	return !st.Empty && st.PackedItems == st.TotalItems
}

// RoundedPercent is the percentage as shown to the user.
func (st Stats) RoundedPercent() int {
	if st.Empty {
		return 0
	}
	return int(math.Round(st.PercentagePacked))
}

// Message is the one-line footer text.
func (st Stats) Message() string {
	switch {
	case st.Empty:
		return "Start adding items to your list"
	case st.Done():
		return "You have everything! Ready to go"
	}
	noun := "items"
	if st.TotalItems == 1 {
		noun = "item"
	}
	return fmt.Sprintf("You have %d %s on your list, and you have already packed %d (%d%%)",
		st.TotalItems, noun, st.PackedItems, st.RoundedPercent())
}
