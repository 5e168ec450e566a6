package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/idilsaglam/packing/internal/model"
	"github.com/idilsaglam/packing/internal/packlist"
)

// ProgressBar renders a Unicode progress bar with percentage. The percentage
// is rounded the same way as packlist.Stats.RoundedPercent.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(math.Round(float64(done) / float64(total) * 100))
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws lines inside the theme frame.
func (t Theme) Panel(lines []string) string {
	return t.Frame().Render(strings.Join(lines, "\n"))
}

// ItemLine renders one list row: "<idx>. <box> <qty> <description>".
// idx <= 0 omits the index column.
func (t Theme) ItemLine(idx int, it model.Item) string {
	box := t.Muted.Render(t.BoxUnchecked)
	text := fmt.Sprintf("%d %s", it.Quantity, it.Description)
	if it.Packed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Packed.Render(text)
	}
	line := box + " " + text
	if idx > 0 {
		line = t.Muted.Render(fmt.Sprintf("%2d.", idx)) + " " + line
	}
	return line
}

// Header is the title row with live counts.
func (t Theme) Header(title string, st packlist.Stats) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(title),
		t.Success.Render(t.SymDone), st.PackedItems,
		t.Pending.Render(t.SymPending), st.TotalItems-st.PackedItems,
		t.Accent.Render("Total"), st.TotalItems,
	)
}

// Footer renders the stats line, with a progress bar once there are items.
func (t Theme) Footer(st packlist.Stats) []string {
	if st.Empty {
		return []string{t.Muted.Render(st.Message())}
	}
	return []string{
		t.Muted.Render(ProgressBar(st.PackedItems, st.TotalItems, 28)),
		t.Accent.Render(st.Message()),
	}
}

// OK prints a success line.
func (t Theme) OK(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Success.Render(t.SymDone+" "+msg))
}

// Fail prints an error line.
func (t Theme) Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
