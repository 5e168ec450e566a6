package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/packing/internal/model"
	"github.com/idilsaglam/packing/internal/packlist"
)

func TestProgressBar(t *testing.T) {
	cases := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 5, "█████ 100%"},
		{1, 4, 1, "█░░░░  25%"},
		{2, 3, 6, "████░░  67%"},
	}
	for _, tc := range cases {
		if got := ProgressBar(tc.done, tc.total, tc.width); got != tc.want {
			t.Fatalf("ProgressBar(%d, %d, %d): expected %q, got %q", tc.done, tc.total, tc.width, tc.want, got)
		}
	}
}

func TestNewThemeFallsBackToClassic(t *testing.T) {
	var buf bytes.Buffer
	if got := NewTheme("sparkly", &buf).Name; got != "classic" {
		t.Fatalf("expected classic, got %q", got)
	}
	if got := NewTheme("NEON", &buf).Name; got != "neon" {
		t.Fatalf("expected neon, got %q", got)
	}
}

func TestItemLineNoColorOnPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	th := NewTheme("mono", &buf)

	got := th.ItemLine(2, model.Item{Description: "Passport", Quantity: 1})
	if got != " 2. [ ] 1 Passport" {
		t.Fatalf("unexpected line %q", got)
	}
	got = th.ItemLine(0, model.Item{Description: "Socks", Quantity: 3, Packed: true})
	if got != "[x] 3 Socks" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestPanelFramesLines(t *testing.T) {
	var buf bytes.Buffer
	th := NewTheme("mono", &buf)
	out := th.Panel([]string{"a", "bb"})
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "+") || !strings.Contains(lines[1], "| a") {
		t.Fatalf("unexpected panel %q", out)
	}
}

func TestHeaderAndFooter(t *testing.T) {
	var buf bytes.Buffer
	th := NewTheme("mono", &buf)
	st := packlist.ComputeStats([]model.Item{{Packed: true}, {}})

	h := th.Header("Packing list", st)
	if h != "Packing list   x 1  - 1  Total 2" {
		t.Fatalf("unexpected header %q", h)
	}
	f := th.Footer(st)
	if len(f) != 2 || !strings.Contains(f[1], "(50%)") {
		t.Fatalf("unexpected footer %q", f)
	}
	if f := th.Footer(packlist.ComputeStats(nil)); len(f) != 1 {
		t.Fatalf("expected a single line for an empty list, got %q", f)
	}
}

func TestFooterLinesAgreeOnPercentage(t *testing.T) {
	var buf bytes.Buffer
	th := NewTheme("mono", &buf)
	f := th.Footer(packlist.ComputeStats([]model.Item{{}, {Packed: true}, {Packed: true}}))
	if len(f) != 2 {
		t.Fatalf("expected bar and message, got %q", f)
	}
	if !strings.HasSuffix(f[0], " 67%") {
		t.Fatalf("expected bar at 67%%, got %q", f[0])
	}
	if !strings.HasSuffix(f[1], "(67%)") {
		t.Fatalf("expected message at 67%%, got %q", f[1])
	}
}

func TestOKAndFail(t *testing.T) {
	var out, errOut bytes.Buffer
	th := NewTheme("mono", &out)
	th.OK(&out, "added")
	th.Fail(&errOut, "nope")
	if out.String() != "x added\n" {
		t.Fatalf("unexpected ok output %q", out.String())
	}
	if errOut.String() != "✖ nope\n" {
		t.Fatalf("unexpected fail output %q", errOut.String())
	}
}
