package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"monet/internal/config"
	"monet/internal/domain"
	"monet/internal/tasklist"
)

const indent = "  "

// Renderer builds reply text. Replies are plain text; the Style* methods add
// terminal colors when enabled and are applied by the front ends only.
type Renderer struct {
	dateLayout string
	divider    string
	color      bool

	headerStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	dividerStyle lipgloss.Style
}

// NewRenderer creates a renderer from the display configuration
func NewRenderer(cfg *config.Config) *Renderer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Renderer{
		dateLayout:   cfg.Display.DateFormat,
		divider:      cfg.Display.Divider,
		color:        cfg.Display.Color,
		headerStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		dividerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
	}
}

// Task renders one task with the configured date layout
func (r *Renderer) Task(t domain.Task) string {
	return t.Format(r.dateLayout)
}

// Welcome returns the greeting shown when a session starts
func (r *Renderer) Welcome() string {
	return "Hello! I'm Monet\nWhat can I do for you?"
}

// Goodbye returns the farewell shown by bye
func (r *Renderer) Goodbye() string {
	return "Bye. Hope to see you again soon!"
}

// Divider returns the line printed around each reply
func (r *Renderer) Divider() string {
	return r.divider
}

// Error formats a user-facing error message
func (r *Renderer) Error(message string) string {
	return "Sorry! " + message
}

// Added confirms a new task
func (r *Renderer) Added(t domain.Task, size int) string {
	return "Got it. I've added this task:\n" + indent + r.Task(t) + "\n" + r.count(size)
}

// Deleted confirms a removed task
func (r *Renderer) Deleted(t domain.Task, size int) string {
	return "Noted. I've removed this task:\n" + indent + r.Task(t) + "\n" + r.count(size)
}

// Marked confirms a task was set as done
func (r *Renderer) Marked(t domain.Task) string {
	return "Nice! I've marked this task as done:\n" + indent + r.Task(t)
}

// Unmarked confirms a task was set as not done
func (r *Renderer) Unmarked(t domain.Task) string {
	return "OK, I've marked this task as not done yet:\n" + indent + r.Task(t)
}

// List renders the whole list numbered from 1
func (r *Renderer) List(l *tasklist.TaskList) string {
	if l.IsEmpty() {
		return "Your task list is empty. Add some tasks!"
	}
	return "Here are the tasks in your list:\n" + r.numbered(l)
}

// Found renders the result of find
func (r *Renderer) Found(l *tasklist.TaskList) string {
	if l.IsEmpty() {
		return "No tasks matching your keyword were found."
	}
	return "Here are the matching tasks in your list:\n" + r.numbered(l)
}

// WithPriority renders the result of a priority filter
func (r *Renderer) WithPriority(l *tasklist.TaskList, p domain.Priority) string {
	if l.IsEmpty() {
		return fmt.Sprintf("No tasks with %s priority were found.", p)
	}
	return fmt.Sprintf("Here are the tasks with %s priority:\n", p) + r.numbered(l)
}

// StyleHeader colors the first line of a reply
func (r *Renderer) StyleHeader(s string) string {
	if !r.color {
		return s
	}
	head, rest, found := strings.Cut(s, "\n")
	head = r.headerStyle.Render(head)
	if !found {
		return head
	}
	return head + "\n" + rest
}

// StyleError colors an error reply
func (r *Renderer) StyleError(s string) string {
	if !r.color {
		return s
	}
	return r.errorStyle.Render(s)
}

// StyleDivider colors the divider
func (r *Renderer) StyleDivider(s string) string {
	if !r.color {
		return s
	}
	return r.dividerStyle.Render(s)
}

func (r *Renderer) count(size int) string {
	return fmt.Sprintf("Now you have %d tasks in the list.", size)
}

func (r *Renderer) numbered(l *tasklist.TaskList) string {
	lines := make([]string, 0, l.Size())
	for i, t := range l.Tasks() {
		lines = append(lines, fmt.Sprintf("%d.%s", i+1, r.Task(t)))
	}
	return strings.Join(lines, "\n")
}
