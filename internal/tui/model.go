package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusCached    = "cached"
	statusFailed    = "failed"
)

// VertexState is the view of one recorded phase.
type VertexState struct {
	ID     string
	Name   string
	Status string
	Err    string
}

type styles struct {
	title     lipgloss.Style
	running   lipgloss.Style
	completed lipgloss.Style
	cached    lipgloss.Style
	failed    lipgloss.Style
}

// Model is the Bubble Tea model listing vertices as they arrive on the tape.
type Model struct {
	tape     TapeSource
	title    string
	vertices []VertexState
	index    map[string]int
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
	// tapeErr is set when the tape broke before the recording finished.
	tapeErr error
}

// NewModel creates a model reading from tape, headed by title.
func NewModel(tape TapeSource, title string) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	return &Model{
		tape:    tape,
		title:   title,
		index:   make(map[string]int),
		spinner: s,
		styles: styles{
			title:     lipgloss.NewStyle().Bold(true),
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		},
	}
}

// Init starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.apply(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		m.tapeErr = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(update *progrock.StatusUpdate) {
	if update == nil {
		return
	}
	for _, v := range update.Vertexes {
		state := VertexState{ID: v.Id, Name: v.Name, Status: vertexStatus(v)}
		if v.Error != nil {
			state.Err = *v.Error
		}
		if i, ok := m.index[v.Id]; ok {
			m.vertices[i] = state
			continue
		}
		m.index[v.Id] = len(m.vertices)
		m.vertices = append(m.vertices, state)
	}
}

func vertexStatus(v *progrock.Vertex) string {
	switch {
	case v.Error != nil:
		return statusFailed
	case v.Cached:
		return statusCached
	case v.Completed != nil:
		return statusCompleted
	default:
		return statusRunning
	}
}

// Summary counts the vertices per status.
func (m *Model) Summary() map[string]int {
	counts := make(map[string]int, 4)
	for _, v := range m.vertices {
		counts[v.Status]++
	}
	return counts
}

// View renders the header and the most recent vertices that fit the window.
func (m *Model) View() string {
	var s strings.Builder

	counts := m.Summary()
	done := counts[statusCompleted] + counts[statusCached] + counts[statusFailed]
	header := fmt.Sprintf("%s %d/%d", m.title, done, len(m.vertices))
	if counts[statusCached] > 0 {
		header += fmt.Sprintf(", %d unchanged", counts[statusCached])
	}
	if counts[statusFailed] > 0 {
		header += fmt.Sprintf(", %d failed", counts[statusFailed])
	}
	s.WriteString(m.styles.title.Render(header))
	s.WriteByte('\n')

	start := 0
	if rows := m.height - 1; m.height > 0 && len(m.vertices) > rows {
		start = len(m.vertices) - rows
	}

	for _, v := range m.vertices[start:] {
		var icon string
		var style lipgloss.Style
		switch v.Status {
		case statusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusCached:
			icon = "="
			style = m.styles.cached
		default:
			icon = "✗"
			style = m.styles.failed
		}

		line := style.Render(icon) + " " + v.Name
		if v.Err != "" {
			line += " " + m.styles.failed.Render(v.Err)
		}
		s.WriteString(line)
		s.WriteByte('\n')
	}

	if m.tapeErr != nil {
		s.WriteString(m.styles.failed.Render("progress lost: " + m.tapeErr.Error()))
		s.WriteByte('\n')
	}
	return s.String()
}
