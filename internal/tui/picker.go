package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerKind identifies which selection a picker drives.
type pickerKind int

const (
	pickModel pickerKind = iota
	pickPersona
	pickPersonality
)

// pickedMsg is sent when a picker item is chosen.
type pickedMsg struct {
	kind pickerKind
	id   string
}

// pickerClosedMsg is sent when a picker is dismissed without choosing.
type pickerClosedMsg struct{}

// pickerItem is a generic bubbles list entry.
type pickerItem struct {
	id    string
	title string
	desc  string
}

// FilterValue implements list.Item.
func (i pickerItem) FilterValue() string { return i.title + " " + i.id }

// Title implements list.DefaultItem.
func (i pickerItem) Title() string { return i.title }

// Description implements list.DefaultItem.
func (i pickerItem) Description() string { return i.desc }

// picker is a modal list for choosing a model, persona, or personality.
type picker struct {
	kind   pickerKind
	list   list.Model
	width  int
	height int
}

func newPicker(kind pickerKind, title string, items []pickerItem) *picker {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorBg)).
		Background(lipgloss.Color(colorAccent)).
		Bold(true)
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorBg)).
		Background(lipgloss.Color(colorAccent))
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText))
	delegate.Styles.NormalDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted))

	l := list.New(listItems, delegate, 60, 20)
	l.Title = title
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.SetShowStatusBar(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAccent)).
		Bold(true).
		Padding(0, 1)

	return &picker{
		kind:   kind,
		list:   l,
		width:  60,
		height: 20,
	}
}

// SetSize sets the modal dimensions.
func (p *picker) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.list.SetSize(width-4, height-4) // account for border and padding
}

// Update handles key input while the picker is open.
func (p *picker) Update(msg tea.Msg) (*picker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if p.list.FilterState() == list.Filtering {
				break
			}
			return p, func() tea.Msg { return pickerClosedMsg{} }
		case "enter":
			if item, ok := p.list.SelectedItem().(pickerItem); ok {
				kind, id := p.kind, item.id
				return p, func() tea.Msg { return pickedMsg{kind: kind, id: id} }
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View renders the picker in a rounded border.
func (p *picker) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(0, 1).
		Width(p.width)
	return boxStyle.Render(p.list.View())
}
