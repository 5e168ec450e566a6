package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/packing/internal/model"
	"github.com/idilsaglam/packing/internal/packlist"
)

func newAddCmd(app *App) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "add <description...>",
		Short: "Add an item (description can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if qty < model.MinQuantity || qty > model.MaxQuantity {
				return usage(fmt.Errorf("add: --qty must be between %d and %d, got %d", model.MinQuantity, model.MaxQuantity, qty))
			}
			desc := strings.Join(args, " ")
			return app.withList(cmd.Context(), func(st *packlist.Store) error {
				it, ok := st.Add(desc, qty)
				if !ok {
					return usage(fmt.Errorf("add: %w", ErrEmptyDescription))
				}
				app.theme.OK(app.stdout, fmt.Sprintf("added %d %s", it.Quantity, it.Description))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&qty, "qty", "n", model.MinQuantity, "Quantity (1-20)")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the list",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withList(cmd.Context(), func(st *packlist.Store) error {
				fmt.Fprintln(app.stdout, app.renderList(st.Items(), group))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group output by unpacked/packed")
	return cmd
}

func newPackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <index>",
		Short: "Toggle packed for the item at a 1-based index (input order)",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withList(cmd.Context(), func(st *packlist.Store) error {
				it, err := itemAt(st, "pack", args[0])
				if err != nil {
					return err
				}
				st.TogglePacked(it.ID)
				word := "packed"
				if it.Packed {
					word = "unpacked"
				}
				app.theme.OK(app.stdout, word+" "+it.Description)
				return nil
			})
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove"},
		Short:   "Remove the item at a 1-based index (input order)",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withList(cmd.Context(), func(st *packlist.Store) error {
				it, err := itemAt(st, "rm", args[0])
				if err != nil {
					return err
				}
				st.Remove(it.ID)
				app.theme.OK(app.stdout, "removed "+it.Description)
				return nil
			})
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every item",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withList(cmd.Context(), func(st *packlist.Store) error {
				n := st.Len()
				st.Clear()
				app.theme.OK(app.stdout, fmt.Sprintf("cleared %d items", n))
				return nil
			})
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print packing progress",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withList(cmd.Context(), func(st *packlist.Store) error {
				for _, ln := range app.theme.Footer(packlist.ComputeStats(st.Items())) {
					fmt.Fprintln(app.stdout, ln)
				}
				return nil
			})
		},
	}
}

// itemAt resolves a 1-based index into the store's input order.
func itemAt(st *packlist.Store, verb, arg string) (model.Item, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return model.Item{}, usage(fmt.Errorf("%s: not a number: %s", verb, arg))
	}
	items := st.Items()
	if n < 1 || n > len(items) {
		return model.Item{}, usage(fmt.Errorf("%s: %w: have %d, got %d", verb, ErrIndexOutOfRange, len(items), n))
	}
	return items[n-1], nil
}

// -------------- rendering helpers --------------

const maxDescriptionWidth = 80

func (a *App) renderList(items []model.Item, group bool) string {
	st := packlist.ComputeStats(items)

	lines := []string{a.theme.Header("Packing list", st), ""}
	if group {
		lines = append(lines, a.groupLines(items)...)
	} else {
		lines = append(lines, a.flatLines(a.sorter.Sort(items, a.sortKey), items)...)
	}
	lines = append(lines, "")
	lines = append(lines, a.theme.Footer(st)...)
	lines = append(lines, a.theme.Muted.Render("⇅ "+a.sortKey.Label()+"   Tip: add with `packing add --qty N <description>`"))
	return a.theme.Panel(lines)
}

// flatLines numbers rows by their input position so the index matches
// `pack` and `rm` whatever the display order.
func (a *App) flatLines(view, input []model.Item) []string {
	if len(view) == 0 {
		return []string{a.theme.Muted.Render("no items")}
	}
	pos := make(map[string]int, len(input))
	for i, it := range input {
		pos[it.ID] = i + 1
	}
	out := make([]string, 0, len(view))
	for _, it := range view {
		it.Description = ansi.Truncate(it.Description, maxDescriptionWidth, "...")
		out = append(out, a.theme.ItemLine(pos[it.ID], it))
	}
	return out
}

func (a *App) groupLines(items []model.Item) []string {
	var pend, packed []model.Item
	for _, it := range a.sorter.Sort(items, a.sortKey) {
		if it.Packed {
			packed = append(packed, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, a.theme.Accent.Render("To pack"))
	if len(pend) == 0 {
		lines = append(lines, a.theme.Muted.Render("(none)"))
	} else {
		lines = append(lines, a.flatLines(pend, items)...)
	}
	lines = append(lines, "")
	lines = append(lines, a.theme.Accent.Render("Packed"))
	if len(packed) == 0 {
		lines = append(lines, a.theme.Muted.Render("(none)"))
	} else {
		lines = append(lines, a.flatLines(packed, items)...)
	}
	return lines
}
