package model

import "testing"

func TestClampQuantity(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{7, 7},
		{20, 20},
		{21, 20},
	}
	for _, tc := range cases {
		if got := ClampQuantity(tc.in); got != tc.want {
			t.Fatalf("ClampQuantity(%d): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestItemValid(t *testing.T) {
	cases := []struct {
		name string
		it   Item
		want bool
	}{
		{"ok", Item{ID: "a", Description: "Socks", Quantity: 3}, true},
		{"missing id", Item{Description: "Socks", Quantity: 3}, false},
		{"empty description", Item{ID: "a", Quantity: 3}, false},
		{"zero quantity", Item{ID: "a", Description: "Socks"}, false},
		{"too many", Item{ID: "a", Description: "Socks", Quantity: 21}, false},
	}
	for _, tc := range cases {
		if got := tc.it.Valid(); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
