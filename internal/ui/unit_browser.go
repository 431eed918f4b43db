package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idlab-discover/uom-cli/internal/apperr"
)

// BrowsedUnit is the unit picked in the browser.
type BrowsedUnit struct {
	Kind string
	Unit UnitRow
}

type unitItem struct {
	kind string
	unit UnitRow
}

func (i unitItem) Title() string {
	return i.unit.NameAndAbbr
}

func (i unitItem) Description() string {
	return Dim.Render(i.kind+" · ") + describeFactor(i.unit)
}

func (i unitItem) FilterValue() string {
	return i.kind + " " + i.unit.Name + " " + i.unit.Abbr
}

// unitBrowserModel is the Bubble Tea model for the interactive unit browser
type unitBrowserModel struct {
	textInput textinput.Model
	list      list.Model

	all       []list.Item
	query     string
	quitting  bool
	confirmed bool
}

// NewUnitBrowser creates a browser over the given kind tables.
func NewUnitBrowser(tables []KindTable) *unitBrowserModel {
	ti := textinput.New()
	ti.Placeholder = "Filter by kind, name or abbreviation..."
	ti.Focus()
	ti.CharLimit = 64
	ti.SetWidth(50)

	var items []list.Item
	for _, t := range tables {
		for _, u := range t.Units {
			items = append(items, unitItem{kind: t.Kind, unit: u})
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorHighlight).
		BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorTextDim).
		BorderForeground(ColorPrimary)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Units"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false) // filtered from the text input instead
	l.SetShowHelp(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.SetSize(76, 20)

	return &unitBrowserModel{
		textInput: ti,
		list:      l,
		all:       items,
	}
}

// Init initializes the model
func (m *unitBrowserModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *unitBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if _, ok := m.list.SelectedItem().(unitItem); ok {
				m.confirmed = true
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		if q := m.textInput.Value(); q != m.query {
			m.query = q
			m.list.SetItems(filterUnits(m.all, q))
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model
func (m *unitBrowserModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(Title.Render("Unit browser"))
	b.WriteString("\n\n")
	b.WriteString(Dim.Render("Filter: "))
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(Dim.Render("type to filter · ↑/↓: navigate · enter: select · esc: cancel"))

	return tea.NewView(b.String())
}

// Selected returns the highlighted unit, if any.
func (m *unitBrowserModel) Selected() (BrowsedUnit, bool) {
	i, ok := m.list.SelectedItem().(unitItem)
	if !ok {
		return BrowsedUnit{}, false
	}
	return BrowsedUnit{Kind: i.kind, Unit: i.unit}, true
}

// WasConfirmed returns true if the user confirmed the selection
func (m *unitBrowserModel) WasConfirmed() bool {
	return m.confirmed
}

// filterUnits keeps the items whose kind, name or abbreviation contain every
// whitespace-separated term of query, ignoring case.
func filterUnits(items []list.Item, query string) []list.Item {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return items
	}
	var out []list.Item
	for _, it := range items {
		hay := strings.ToLower(it.FilterValue())
		keep := true
		for _, term := range terms {
			if !strings.Contains(hay, term) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}
	return out
}

// RunUnitBrowser runs the interactive browser and returns the chosen unit.
func RunUnitBrowser(tables []KindTable) (BrowsedUnit, error) {
	p := tea.NewProgram(NewUnitBrowser(tables))
	m, err := p.Run()
	if err != nil {
		return BrowsedUnit{}, fmt.Errorf("unit browser: %w", err)
	}

	model := m.(*unitBrowserModel)
	if !model.WasConfirmed() {
		return BrowsedUnit{}, apperr.ErrCancelled
	}
	sel, _ := model.Selected()
	return sel, nil
}
