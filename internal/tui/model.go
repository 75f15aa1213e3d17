// Package tui is a full-screen front end: a scrolling transcript of replies
// above a single-line command input.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"monet/internal/cli"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title, input line and the frame around the transcript
	chromeHeight = 5
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// replyMsg carries the result of one submitted line back to Update.
type replyMsg struct {
	response cli.Response
	err      error
}

// Model is the bubbletea model for a session.
type Model struct {
	ctx     context.Context
	app     *cli.App
	session *cli.Session
	errors  *cli.ErrorHandler

	input      textinput.Model
	viewport   viewport.Model
	transcript []string

	width    int
	height   int
	pending  bool
	quitting bool
}

// New creates a model that sends each entered line to app.
func New(ctx context.Context, app *cli.App, session *cli.Session) *Model {
	input := textinput.New()
	input.Placeholder = "todo read book /p 1"
	input.Prompt = "> "
	input.CharLimit = 512
	input.Focus()

	m := &Model{
		ctx:      ctx,
		app:      app,
		session:  session,
		errors:   cli.NewErrorHandler(app.Renderer()),
		input:    input,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.appendEntry(app.Renderer().Welcome())
	return m
}

// Init is called once when the program starts.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-chromeHeight)
		m.input.Width = max(10, msg.Width-4)
		m.refresh()
		return m, nil

	case replyMsg:
		m.pending = false
		if msg.response.Message != "" {
			m.appendEntry(msg.response.Message)
		}
		if msg.err != nil {
			m.appendEntry(errorStyle.Render(m.errors.Message(msg.err)))
		}
		if msg.response.Exit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript, the input and a key hint.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	title := titleStyle.Render("monet")
	body := frameStyle.Render(m.viewport.View())
	hint := hintStyle.Render("enter: send • pgup/pgdn: scroll • esc: quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.input.View(), hint)
}

// Transcript returns the entries shown so far, oldest first.
func (m *Model) Transcript() []string {
	out := make([]string, len(m.transcript))
	copy(out, m.transcript)
	return out
}

// submit clears the input and runs the line. Only one line is processed at a
// time since commands mutate the session.
func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" || m.pending {
		return nil
	}
	m.input.Reset()
	m.pending = true
	m.appendEntry(userStyle.Render("> " + line))

	ctx, app, session := m.ctx, m.app, m.session
	return func() tea.Msg {
		response, err := app.Respond(ctx, session, line)
		return replyMsg{response: response, err: err}
	}
}

func (m *Model) appendEntry(entry string) {
	m.transcript = append(m.transcript, entry)
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
	m.viewport.GotoBottom()
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, app *cli.App, session *cli.Session) error {
	program := tea.NewProgram(New(ctx, app, session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
