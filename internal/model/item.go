package model

// Quantity bounds offered by the add form.
const (
	MinQuantity = 1
	MaxQuantity = 20
)

// Item is a single packing-list entry.
// Only Packed changes after creation.
type Item struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Packed      bool   `json:"packed"`
}

// ClampQuantity forces n into [MinQuantity, MaxQuantity].
func ClampQuantity(n int) int {
	if n < MinQuantity {
		return MinQuantity
	}
	if n > MaxQuantity {
		return MaxQuantity
	}
	return n
}

// Valid reports whether the item satisfies the collection invariants.
func (it Item) Valid() bool {
	return it.ID != "" && it.Description != "" &&
		it.Quantity >= MinQuantity && it.Quantity <= MaxQuantity
}
