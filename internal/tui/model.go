// Package tui implements the interactive payroll chat interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/paydirt/internal/cli"
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/workflow"
)

type chatLine struct {
	role    model.MessageRole
	content string
}

// Model holds the chat TUI state.
type Model struct {
	config    Config
	keymap    KeyMap
	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	history   []chatLine
	stage     model.Stage
	lastError error
	width     int
	height    int
	waiting   bool
	ready     bool
	quitting  bool
}

func newModel(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "Type a message, or \"confirm\" to approve a pending merge…"
	input.Focus()
	input.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.PrimaryColor)

	return Model{
		config:  cfg,
		keymap:  DefaultKeyMap(),
		input:   input,
		spinner: sp,
		stage:   model.StageInit,
	}
}

// Init starts the spinner and, when a document was attached on the command
// line, submits it as the opening turn.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.config.Document != nil {
		cmds = append(cmds, processTurn(m.config.Engine, m.config.SessionID, workflow.Turn{
			Document: m.config.Document,
		}))
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		footerHeight := 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.renderHistory())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Send):
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.history = append(m.history, chatLine{role: model.RoleUser, content: text})
			m.waiting = true
			m.lastError = nil
			m.refreshViewport()
			return m, processTurn(m.config.Engine, m.config.SessionID, workflow.Turn{Message: text})
		}

	case turnResultMsg:
		m.waiting = false
		m.history = append(m.history, chatLine{role: model.RoleAssistant, content: msg.reply})
		if msg.session != nil {
			m.stage = msg.session.Stage
		}
		m.refreshViewport()
		return m, nil

	case turnErrMsg:
		m.waiting = false
		m.lastError = msg.err
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the chat window.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting payroll assistant…"
	}

	header := cli.TitleStyle.Render(fmt.Sprintf("Payroll Assistant — session %s", m.config.SessionID)) +
		"  " + cli.SubtleStyle.Render(string(m.stage))

	status := ""
	if m.waiting {
		status = m.spinner.View() + " thinking…"
	} else if m.lastError != nil {
		status = cli.FormatError(m.lastError.Error())
	}

	footer := status + "\n" + m.input.View() + "\n" +
		cli.SubtleStyle.Render("enter: send • esc: quit")

	return header + "\n" + m.viewport.View() + "\n" + footer
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m Model) renderHistory() string {
	var b strings.Builder
	for _, line := range m.history {
		switch line.role {
		case model.RoleUser:
			b.WriteString(cli.PromptStyle.Render("You: "))
			b.WriteString(line.content)
		case model.RoleAssistant:
			b.WriteString(cli.AssistantStyle.Render("Assistant: "))
			b.WriteString(line.content)
		}
		b.WriteString("\n\n")
	}
	return b.String()
}
