package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/fillbar/internal/anim"
	"github.com/pablasso/fillbar/internal/bar"
	"github.com/pablasso/fillbar/internal/render"
	"github.com/pablasso/fillbar/internal/scene"
	"github.com/pablasso/fillbar/internal/tui/components"
	"github.com/pablasso/fillbar/internal/tui/styles"
)

// Minimum terminal dimensions for drawing the scene.
const (
	MinTerminalWidth  = 20
	MinTerminalHeight = 5
)

// chromeHeight is the status line plus the help line.
const chromeHeight = 2

const meterWidth = 10

// frameMsg is sent once per frame.
type frameMsg time.Time

// Model is the Bubble Tea model hosting one progress bar scene.
type Model struct {
	bar      *bar.Bar
	steps    []scene.Step
	anims    []anim.Animation
	player   *anim.Player
	total    time.Duration
	renderer render.Renderer
	opts     Options

	keys   keyMap
	help   help.Model
	status components.StatusBar

	width     int
	height    int
	paused    bool
	lastFrame time.Time
	finished  bool
}

// NewModel prepares a model that plays steps on b.
func NewModel(b *bar.Bar, steps []scene.Step, opts Options) (Model, error) {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}

	m := Model{
		bar:      b,
		steps:    steps,
		player:   anim.NewPlayer(b),
		renderer: render.Renderer{Scale: opts.Scale, Background: opts.Background},
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		status:   components.NewStatusBar(),
	}
	if err := m.load(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts the TUI application.
func Run(b *bar.Bar, steps []scene.Step, opts Options) error {
	m, err := NewModel(b, steps, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *Model) load() error {
	anims, err := scene.Build(m.bar, m.steps)
	if err != nil {
		return err
	}
	m.anims = anims
	m.total = scene.Total(anims)
	m.player.Play(anims...)
	slog.Debug("scene loaded", "steps", len(m.steps), "total", m.total)
	return nil
}

// restart replays the scene from progress 0. Each animation resets its own
// state in Begin, so the built animations are queued again as they are.
func (m *Model) restart() {
	m.player.Clear()
	m.bar.ClearUpdaters()
	m.bar.UpdateProgressInstant(0)
	m.finished = false
	m.lastFrame = time.Time{}
	m.player.Play(m.anims...)
	slog.Debug("scene restarted")
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.frame()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			slog.Debug("pause toggled", "paused", m.paused, "progress", m.bar.Progress())
		case key.Matches(msg, m.keys.Restart):
			m.restart()
		case key.Matches(msg, m.keys.Skip):
			m.player.Skip()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now

		if !m.paused {
			m.player.Advance(dt)
		}
		if m.player.Done() && !m.finished {
			m.finished = true
			slog.Debug("scene finished", "elapsed", m.player.Elapsed(), "progress", m.bar.Progress())
			if m.opts.ExitWhenDone {
				return m, tea.Quit
			}
		}
		return m, m.frame()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	frame := m.renderer.Frame(m.bar.Snapshot(), m.width, m.height-chromeHeight)
	status := m.status.Render(m.width, m.statusItems(), styles.SubtleStyle.Render("? more"))
	return lipgloss.JoinVertical(lipgloss.Left, frame, status, m.help.View(m.keys))
}

func (m Model) statusItems() []string {
	items := []string{
		styles.MeterStyle.Render(components.NewMeter(m.bar.Progress(), meterWidth).View()),
		fmt.Sprintf("%.1fs / %.1fs", m.player.Elapsed().Seconds(), m.total.Seconds()),
	}
	switch {
	case m.paused:
		items = append(items, styles.PausedStyle.Render("paused"))
	case m.finished:
		items = append(items, styles.SuccessStyle.Render("done"))
	}
	return items
}

func (m Model) renderTerminalTooSmall() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Terminal too small"),
		fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight),
		fmt.Sprintf("Current: %dx%d", m.width, m.height),
	)
}
