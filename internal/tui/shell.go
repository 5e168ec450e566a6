// Package tui is the interactive packing-list shell. It turns key presses into
// packlist.Store mutations and rebuilds the sorted list and stats after each.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/packing/internal/model"
	"github.com/idilsaglam/packing/internal/packlist"
	"github.com/idilsaglam/packing/internal/ui"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmClear
)

// draft is the unsaved add-form state. It lives apart from the store and is
// only reset after a successful submit.
type draft struct {
	desc     textinput.Model
	quantity int
}

func newDraft() draft {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item..."
	ti.CharLimit = 200
	return draft{desc: ti, quantity: model.MinQuantity}
}

func (d *draft) reset() {
	d.desc.SetValue("")
	d.quantity = model.MinQuantity
}

func (d *draft) bump(delta int) {
	d.quantity = model.ClampQuantity(d.quantity + delta)
}

// Model is the Bubble Tea model of the shell.
type Model struct {
	store   *packlist.Store
	sorter  *packlist.Sorter
	sortKey packlist.SortKey
	theme   ui.Theme
	log     *zap.Logger
	keys    keyMap

	list  list.Model
	draft draft
	stats packlist.Stats
	mode  mode

	width, height int
}

// Options configures New.
type Options struct {
	Theme   ui.Theme
	Sorter  *packlist.Sorter
	SortKey packlist.SortKey
	Logger  *zap.Logger
}

// New builds the shell around st. The store is mutated in place; callers read
// st.Version() after the program exits to decide whether to save.
func New(st *packlist.Store, opt Options) Model {
	if opt.Sorter == nil {
		opt.Sorter = packlist.NewSorter("en")
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.SortKey == "" {
		opt.SortKey = packlist.SortInput
	}

	keys := defaultKeyMap()
	l := list.New(nil, itemDelegate{theme: opt.Theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	// d deletes here, so it cannot also page forward.
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	l.Styles.Title = opt.Theme.Title
	l.Styles.HelpStyle = opt.Theme.Muted
	l.Styles.PaginationStyle = opt.Theme.Muted
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	m := Model{
		store:   st,
		sorter:  opt.Sorter,
		sortKey: opt.SortKey,
		theme:   opt.Theme,
		log:     opt.Logger,
		keys:    keys,
		list:    l,
		draft:   newDraft(),
		width:   80,
		height:  24,
	}
	m.refresh("")
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmClear:
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	if m.mode == modeForm {
		m.draft.desc, cmd = m.draft.desc.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.mode = modeForm
		m.layout()
		cmd := m.draft.desc.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		if id := m.selectedID(); id != "" {
			m.store.TogglePacked(id)
			m.refresh(id)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if id := m.selectedID(); id != "" {
			m.store.Remove(id)
			m.refresh("")
		}
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		m.sortKey = m.sortKey.Next()
		m.log.Debug("sort changed", zap.String("key", string(m.sortKey)))
		m.refresh(m.selectedID())
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		if m.store.Len() > 0 {
			m.mode = modeConfirmClear
			m.layout()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		it, ok := m.store.Add(m.draft.desc.Value(), m.draft.quantity)
		if !ok {
			// keep the draft so the user can fix it
			return m, nil
		}
		m.draft.reset()
		m.refresh(it.ID)
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.draft.desc.Blur()
		m.mode = modeList
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.QtyUp):
		m.draft.bump(1)
		return m, nil
	case key.Matches(msg, m.keys.QtyDown):
		m.draft.bump(-1)
		return m, nil
	}
	var cmd tea.Cmd
	m.draft.desc, cmd = m.draft.desc.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Yes) {
		m.store.Clear()
		m.refresh("")
	}
	m.mode = modeList
	m.layout()
	return m, nil
}

func (m Model) selectedID() string {
	if it, ok := m.list.SelectedItem().(listItem); ok {
		return it.ID
	}
	return ""
}

// refresh re-derives the sorted view and stats from the store. The cursor
// follows selectID when given, otherwise it stays at the same row.
func (m *Model) refresh(selectID string) {
	items := m.store.Items()
	view := m.sorter.Sort(items, m.sortKey)

	idx := m.list.Index()
	rows := make([]list.Item, len(view))
	for i, it := range view {
		rows[i] = listItem{it}
		if selectID != "" && it.ID == selectID {
			idx = i
		}
	}
	m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}

	m.stats = packlist.ComputeStats(items)
	m.list.Title = m.theme.Header("🏝️ Far Away", m.stats)
}

func (m *Model) layout() {
	chrome := 2 + 1 + len(m.theme.Footer(m.stats)) // frame, sort line, footer
	switch m.mode {
	case modeForm:
		chrome += 5
	case modeConfirmClear:
		chrome += 2
	}
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, h)
}

func (m Model) View() string {
	parts := []string{m.list.View()}

	parts = append(parts, m.theme.Muted.Render("⇅ "+m.sortKey.Label()))
	parts = append(parts, m.theme.Footer(m.stats)...)

	switch m.mode {
	case modeForm:
		parts = append(parts, m.formView())
	case modeConfirmClear:
		parts = append(parts, "", m.theme.Error.Render(
			fmt.Sprintf("Are you sure you want to delete all %d items? (y/n)", m.store.Len())))
	}
	return m.theme.Frame().Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) formView() string {
	qty := fmt.Sprintf("Qty ‹%2d›", m.draft.quantity)
	row := lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Accent.Render(qty), "  ", m.draft.desc.View())

	help := make([]string, 0, len(m.keys.formHelp()))
	for _, b := range m.keys.formHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	inner := strings.Join([]string{
		m.theme.Title.Render("What do you need for your 😍 trip?"),
		row,
		m.theme.Muted.Render(strings.Join(help, " • ")),
	}, "\n")
	return m.theme.Frame().Render(inner)
}

// Draft returns the current form input, for tests and status lines.
func (m Model) Draft() (description string, quantity int) {
	return m.draft.desc.Value(), m.draft.quantity
}

// SortKey is the active display ordering.
func (m Model) SortKey() packlist.SortKey { return m.sortKey }

// Rows returns the items in display order.
func (m Model) Rows() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Item)
		}
	}
	return out
}
