// Package tui is the interactive todo list. Every gesture becomes a store
// command; the only state kept here is the pending text of the add and edit
// inputs.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	charLimit     = 200
)

// listItem adapts model.Item to list.Item.
type listItem struct{ model.Item }

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// itemDelegate renders one item per line.
type itemDelegate struct{ theme ui.Theme }

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := strings.Repeat(" ", len([]rune(d.theme.SymCursor)))
	if index == m.Index() {
		prefix = d.theme.Selected.Render(d.theme.SymCursor)
	}
	maxText := m.Width() - 12
	fmt.Fprint(w, prefix+d.theme.ItemLine(it.Item, maxText))
}

// Model is the Bubble Tea model over a store.
type Model struct {
	store *store.Store
	theme ui.Theme
	keys  keyMap
	log   *logrus.Entry
	list  list.Model

	width, height int

	// Inline add
	adding   bool
	addInput textinput.Model
	addErr   string

	// Inline edit
	editing   bool
	editID    model.ID
	editOrig  string
	editInput textinput.Model
}

// New returns a model showing s.
func New(s *store.Store, theme ui.Theme) Model {
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{theme: theme}, defaultWidth-4, defaultHeight-4)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Help
	l.Styles.PaginationStyle = theme.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.browseHelp
	l.AdditionalFullHelpKeys = keys.browseHelp

	m := Model{
		store:     s,
		theme:     theme,
		keys:      keys,
		log:       logging.NewLogger("tui"),
		list:      l,
		width:     defaultWidth,
		height:    defaultHeight,
		addInput:  newInput("New item text..."),
		editInput: newInput("Edit item text..."),
	}
	m.refresh()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	return ti
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(s *store.Store, theme ui.Theme, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(s, theme), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	d, pn := model.Stats(s.Items())
	logging.NewLogger("tui").WithFields(logrus.Fields{"done": d, "pending": pn}).Info("session ended")
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdd(msg)
	}
	if m.editing {
		return m.updateEdit(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Submit):
			if strings.TrimSpace(m.addInput.Value()) == "" {
				m.addErr = "Text cannot be empty"
				m.log.Debug("blank add rejected")
				return m, nil
			}
			m.store.Add(m.addInput.Value())
			m.closeAdd()
			m.list.ResetFilter()
			m.refresh()
			m.list.Select(len(m.list.Items()) - 1)
			return m, nil
		case key.Matches(k, m.keys.Cancel):
			m.closeAdd()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Submit):
			m.store.CommitEdit(m.editID, m.editInput.Value())
			m.closeEdit()
			return m, nil
		case key.Matches(k, m.keys.Cancel):
			// Leaving without saving restores the original text.
			m.store.CommitEdit(m.editID, m.editOrig)
			m.closeEdit()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(k, m.keys.Force):
		return m, tea.Quit
	case key.Matches(k, m.keys.Quit):
		if m.list.FilterState() == list.FilterApplied {
			m.list.ResetFilter()
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(k, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.addInput.SetValue("")
		m.resize()
		return m, m.addInput.Focus()
	case key.Matches(k, m.keys.Edit):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.store.StartEdit(it.ID)
		m.editing = true
		m.editID = it.ID
		m.editOrig = it.Text
		m.editInput.SetValue(it.Text)
		m.editInput.CursorEnd()
		m.refresh()
		m.resize()
		return m, m.editInput.Focus()
	case key.Matches(k, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.store.ToggleDone(it.ID)
			m.refresh()
		}
		return m, nil
	case key.Matches(k, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.store.Delete(it.ID)
			m.refresh()
		}
		return m, nil
	case key.Matches(k, m.keys.Clear):
		m.log.WithField("count", m.store.Len()).Debug("clear all")
		m.store.ClearAll()
		m.list.ResetFilter()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		title := "Add new item"
		input := m.addInput.View()
		if m.editing {
			title = fmt.Sprintf("Edit item #%d", m.editID)
			input = m.editInput.View()
		}
		if m.adding && m.addErr != "" {
			title += " " + m.theme.Error.Render(m.addErr)
		}
		bar := m.theme.Frame.Render(title + "\n" + input)
		content = content + "\n" + bar
	}
	return m.theme.Frame.Render(content)
}

func (m *Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.Item, true
}

// refresh rebuilds the list from the store.
func (m *Model) refresh() {
	items := m.store.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{Item: it})
	}
	// With a filter applied SetItems drops the matches and returns the
	// command that recomputes them; run it now so VisibleItems stays valid.
	if cmd := m.list.SetItems(li); cmd != nil {
		if msg, ok := cmd().(list.FilterMatchesMsg); ok {
			m.list, _ = m.list.Update(msg)
		}
	}
	m.list.Title = m.theme.Header(items)
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding || m.editing {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
	m.addInput.Width = w - 6
	m.editInput.Width = w - 6
}

func (m *Model) closeAdd() {
	m.adding = false
	m.addErr = ""
	m.addInput.SetValue("")
	m.addInput.Blur()
	m.resize()
}

func (m *Model) closeEdit() {
	m.editing = false
	m.editID = 0
	m.editOrig = ""
	m.editInput.SetValue("")
	m.editInput.Blur()
	m.refresh()
	m.resize()
}
