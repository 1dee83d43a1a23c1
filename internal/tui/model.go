// Package tui implements the interactive task screen. The model wraps
// an already-loaded store, so every edit made on the screen is written
// through to the backend immediately.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/settings"
	"slate/internal/store"
)

// mode selects which key map is active.
type mode int

const (
	modeList   mode = iota // navigating the list
	modeInsert             // typing a new title
)

// Model is the bubbletea model for the task screen.
type Model struct {
	ctx          context.Context
	store        *store.Store
	cfg          settings.Settings
	settingsPath string

	mode     mode
	cursor   int
	input    string
	status   string
	quitting bool

	styles palette
}

// New builds the model over an already-loaded store. Preference
// changes made on the screen are saved to settingsPath.
func New(ctx context.Context, st *store.Store, cfg settings.Settings, settingsPath string) Model {
	return Model{
		ctx:          ctx,
		store:        st,
		cfg:          cfg,
		settingsPath: settingsPath,
		styles:       newPalette(cfg.DarkMode),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode == modeInsert {
		return m.updateInsert(key)
	}
	return m.updateList(key)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeInsert
		m.input = ""
		m.status = ""
	case " ":
		if id, ok := m.idAtCursor(); ok {
			m.store.ToggleCompletion(m.ctx, id)
		}
	case "m":
		if id, ok := m.idAtCursor(); ok {
			m.store.ToggleSelection(m.ctx, id)
		}
	case "x":
		if _, ok := m.idAtCursor(); ok {
			removed := m.store.DeleteAt(m.ctx, m.cursor)
			m.status = fmt.Sprintf("removed %d task(s)", removed)
			m.clampCursor()
		}
	case "d":
		if removed := m.store.DeleteSelected(m.ctx); removed > 0 {
			m.status = fmt.Sprintf("removed %d selected task(s)", removed)
			m.clampCursor()
		}
	case "D":
		m.store.DeleteAll(m.ctx)
		m.cursor = 0
		m.status = "list cleared"
	case "t":
		m.cfg.DarkMode = !m.cfg.DarkMode
		m.styles = newPalette(m.cfg.DarkMode)
		m.saveSettings()
	case "+", "=":
		m.cfg.FontSize++
		m.cfg.Clamp()
		m.saveSettings()
	case "-":
		m.cfg.FontSize--
		m.cfg.Clamp()
		m.saveSettings()
	}
	return m, nil
}

func (m Model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.mode = modeList
		m.input = ""
	case "enter":
		title := strings.TrimSpace(m.input)
		if title != "" {
			m.store.Add(m.ctx, title)
			m.cursor = m.store.Len() - 1
			m.status = fmt.Sprintf("added %q", title)
		}
		m.mode = modeList
		m.input = ""
	case "backspace":
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	case " ":
		m.input += " "
	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tasks := m.store.Tasks()
	done := 0
	for _, t := range tasks {
		if t.IsCompleted {
			done++
		}
	}

	scheme := "light"
	if m.cfg.DarkMode {
		scheme = "dark"
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("slate  %d/%d done  %s  font %d", done, len(tasks), scheme, m.cfg.FontSize)))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(m.styles.hint.Render("no tasks, press a to add one"))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = m.styles.cursor.Render("> ")
		}
		box := "[ ]"
		if t.IsCompleted {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, t.Title)
		if t.IsCompleted {
			line = m.styles.done.Render(line)
		}
		if t.IsSelected {
			line += m.styles.selected.Render("  *")
		}
		b.WriteString(cursor + line + "\n")
	}

	if m.mode == modeInsert {
		b.WriteString("\n")
		b.WriteString(m.styles.input.Render("new task: " + m.input + "█"))
		b.WriteString("\n")
		b.WriteString(m.styles.hint.Render("enter to add, esc to cancel"))
		b.WriteString("\n")
		return b.String()
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.hint.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render("a add  space done  m select  x remove  d remove selected  D clear  t theme  +/- font  q quit"))
	b.WriteString("\n")
	return b.String()
}

// idAtCursor resolves the cursor to a task id, if the cursor is on a
// task at all.
func (m Model) idAtCursor() (string, bool) {
	tasks := m.store.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return "", false
	}
	return tasks[m.cursor].ID, true
}

// clampCursor keeps the cursor on the list after removals.
func (m *Model) clampCursor() {
	if last := m.store.Len() - 1; m.cursor > last {
		m.cursor = last
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// saveSettings persists preference changes, logging instead of failing
// so a read-only config directory never breaks the screen.
func (m *Model) saveSettings() {
	if err := settings.Save(m.settingsPath, m.cfg); err != nil {
		slog.Warn("failed to save settings", "path", m.settingsPath, "error", err)
		m.status = "settings not saved"
	}
}
