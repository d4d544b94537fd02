package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jviolette/aituner/internal/catalog"
	"github.com/jviolette/aituner/internal/compose"
	"github.com/jviolette/aituner/internal/engine"
	"github.com/jviolette/aituner/internal/preset"
)

// focus tracks which surface receives key input.
type focus int

const (
	focusLevers focus = iota
	focusPicker
	focusSave
)

// presetSavedMsg reports the outcome of a save command.
type presetSavedMsg struct {
	name string
	err  error
}

// Model is the root bubbletea model for the tuner.
type Model struct {
	eng   *engine.Engine
	comp  *compose.Composer
	store preset.Store
	st    *engine.State

	keys   KeyMap
	styles Styles
	help   help.Model

	preview   viewport.Model
	nameInput textinput.Model
	picker    *picker

	levers []catalog.Lever
	cursor int
	focus  focus

	width  int
	height int

	status    string
	statusErr bool
}

// New creates the tuner model over a fresh session state.
func New(eng *engine.Engine, comp *compose.Composer, store preset.Store) Model {
	input := textinput.New()
	input.Placeholder = "preset name"
	input.CharLimit = 64
	input.Width = 32

	m := Model{
		eng:       eng,
		comp:      comp,
		store:     store,
		st:        engine.NewState(eng.Registry()),
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		preview:   viewport.New(60, 20),
		nameInput: input,
		levers:    eng.Registry().All(),
	}
	// Group the lever list by category for display.
	sort.SliceStable(m.levers, func(i, j int) bool {
		if m.levers[i].Category != m.levers[j].Category {
			return m.levers[i].Category < m.levers[j].Category
		}
		return m.levers[i].Name < m.levers[j].Name
	})
	m.refreshPreview()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		previewWidth := msg.Width/2 - 4
		if previewWidth < 30 {
			previewWidth = 30
		}
		m.preview.Width = previewWidth
		m.preview.Height = msg.Height - 8
		if m.picker != nil {
			m.picker.SetSize(min(msg.Width-4, 64), min(msg.Height-4, 24))
		}
		m.refreshPreview()
		return m, nil

	case pickedMsg:
		m.applyPick(msg)
		m.picker = nil
		m.focus = focusLevers
		m.refreshPreview()
		return m, nil

	case pickerClosedMsg:
		m.picker = nil
		m.focus = focusLevers
		return m, nil

	case presetSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			m.statusErr = true
		} else {
			m.status = fmt.Sprintf("saved preset %q", msg.name)
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case focusPicker:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		case focusSave:
			return m.updateSave(msg)
		default:
			return m.updateLevers(msg)
		}
	}

	if m.focus == focusPicker && m.picker != nil {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateLevers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.levers)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Decrease):
		lever := m.levers[m.cursor]
		m.eng.SetLever(m.st, lever.ID, m.st.Levers[lever.ID]-1)
		m.refreshPreview()

	case key.Matches(msg, m.keys.Increase):
		lever := m.levers[m.cursor]
		m.eng.SetLever(m.st, lever.ID, m.st.Levers[lever.ID]+1)
		m.refreshPreview()

	case key.Matches(msg, m.keys.ResetLever):
		m.eng.ResetLevers(m.st, []string{m.levers[m.cursor].ID})
		m.refreshPreview()

	case key.Matches(msg, m.keys.Model):
		m.picker = m.modelPicker()
		m.focus = focusPicker

	case key.Matches(msg, m.keys.Persona):
		m.picker = m.personaPicker()
		m.focus = focusPicker

	case key.Matches(msg, m.keys.Personality):
		m.picker = m.personalityPicker()
		m.focus = focusPicker

	case key.Matches(msg, m.keys.Emoji):
		m.st.EmojiShutoff = !m.st.EmojiShutoff
		m.refreshPreview()

	case key.Matches(msg, m.keys.Save):
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		m.focus = focusSave
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Reset):
		m.eng.ResetAll(m.st)
		m.status = "reset to defaults"
		m.statusErr = false
		m.refreshPreview()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nameInput.Blur()
		m.focus = focusLevers
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		m.nameInput.Blur()
		m.focus = focusLevers
		if name == "" {
			return m, nil
		}
		return m, m.saveCmd(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) saveCmd(name string) tea.Cmd {
	p := preset.FromState(name, m.st)
	store := m.store
	return func() tea.Msg {
		_, err := store.Save(context.Background(), p)
		return presetSavedMsg{name: name, err: err}
	}
}

func (m *Model) applyPick(msg pickedMsg) {
	var err error
	switch msg.kind {
	case pickModel:
		err = m.eng.SelectModel(m.st, msg.id)
	case pickPersona:
		err = m.eng.SelectPersona(m.st, msg.id)
	case pickPersonality:
		err = m.eng.SetPersonality(m.st, engine.Personality(msg.id))
	}
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.status = ""
	m.statusErr = false
}

func (m *Model) modelPicker() *picker {
	models := m.eng.Catalog().Models()
	items := make([]pickerItem, len(models))
	for i, model := range models {
		items[i] = pickerItem{id: model.ID, title: model.Name, desc: model.Description}
	}
	p := newPicker(pickModel, "Select Model", items)
	p.SetSize(min(m.width-4, 64), min(m.height-4, 24))
	return p
}

func (m *Model) personaPicker() *picker {
	personas := m.eng.Catalog().Personas()
	items := make([]pickerItem, 0, len(personas))
	for _, persona := range personas {
		if persona.Type == catalog.PersonaHidden {
			continue
		}
		desc := persona.Description
		if len(persona.BestModels) > 0 {
			desc = fmt.Sprintf("%s • best: %s", persona.Description, strings.Join(persona.BestModels, ", "))
		}
		items = append(items, pickerItem{id: persona.ID, title: persona.Name, desc: desc})
	}
	p := newPicker(pickPersona, "Select Persona", items)
	p.SetSize(min(m.width-4, 64), min(m.height-4, 24))
	return p
}

func (m *Model) personalityPicker() *picker {
	items := make([]pickerItem, len(engine.Personalities))
	for i, personality := range engine.Personalities {
		items[i] = pickerItem{id: string(personality), title: string(personality), desc: ""}
	}
	p := newPicker(pickPersonality, "Select Personality", items)
	p.SetSize(min(m.width-4, 64), min(m.height-4, 24))
	return p
}

func (m *Model) refreshPreview() {
	m.preview.SetContent(m.comp.Compose(m.st))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.focus == focusPicker && m.picker != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.picker.View())
	}

	title := m.styles.Title.Render("AI Tuner")
	selections := m.styles.Selection.Render(m.selectionLine())

	left := m.renderLevers()
	previewMode := "unguided"
	if m.comp.Guided(m.st) {
		previewMode = "guided"
	}
	right := m.styles.PreviewPane.Render(
		m.styles.PreviewTitle.Render(fmt.Sprintf("Prompt Preview (%s)", previewMode)) + "\n" + m.preview.View(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var bottom string
	switch {
	case m.focus == focusSave:
		bottom = m.styles.PromptBox.Render("Save preset as: " + m.nameInput.View())
	case m.statusErr:
		bottom = m.styles.StatusError.Render(m.status)
	default:
		bottom = m.styles.StatusBar.Render(m.status)
	}

	return strings.Join([]string{
		title + " " + selections,
		body,
		bottom,
		m.help.View(m.keys),
	}, "\n")
}

func (m Model) selectionLine() string {
	modelName := "none"
	if model, ok := m.eng.Catalog().FindModel(m.st.ModelID); ok {
		modelName = model.Name
	}
	personaName := "none"
	if persona, ok := m.eng.Catalog().FindPersona(m.st.PersonaID); ok {
		personaName = persona.Name
	}
	line := fmt.Sprintf("model: %s  persona: %s  personality: %s", modelName, personaName, m.st.Personality)
	if m.st.EmojiShutoff {
		line += "  [no emoji]"
	}
	return line
}

func (m Model) renderLevers() string {
	var b strings.Builder
	lastCategory := ""
	visible := m.visibleWindow()

	for i := visible.start; i < visible.end; i++ {
		lever := m.levers[i]
		if lever.Category != lastCategory {
			b.WriteString(m.styles.Category.Render(lever.Category))
			b.WriteString("\n")
			lastCategory = lever.Category
		}

		v := m.st.Levers[lever.ID]
		gauge := m.styles.GaugeFilled.Render(strings.Repeat("█", v)) +
			m.styles.GaugeEmpty.Render(strings.Repeat("░", 10-v))

		locked := m.st.ModelID != "" && lever.LockedFor(m.st.ModelID)
		name := lever.Name
		nameStyle := m.styles.LeverName
		switch {
		case locked:
			nameStyle = m.styles.LeverLocked
		case i == m.cursor:
			nameStyle = m.styles.LeverCursor
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, nameStyle.Render(fmt.Sprintf("%-24s", name)),
			gauge, m.styles.LeverValue.Render(fmt.Sprintf("%2d", v)))
		if locked {
			line += m.styles.LeverLocked.Render(" (locked)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

type window struct {
	start, end int
}

// visibleWindow keeps the cursor within the rows that fit on screen.
func (m Model) visibleWindow() window {
	rows := m.height - 8
	if rows <= 0 || rows >= len(m.levers) {
		return window{0, len(m.levers)}
	}
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > len(m.levers) {
		end = len(m.levers)
		start = end - rows
	}
	return window{start, end}
}
