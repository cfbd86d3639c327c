package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/skyburst/internal/config"
	"github.com/san-kum/skyburst/internal/randx"
	"github.com/san-kum/skyburst/internal/show"
)

const (
	defaultCols = 80
	defaultRows = 24
	sidebarCols = 30
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(sidebarCols)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the fireworks show inside a bubbletea program.
type Model struct {
	shw    *show.Show
	canvas *Canvas
	cfg    *config.Config
	seed   int64

	frame    time.Duration
	lastTick time.Time
	launched int
	bursts   int
}

func NewModel(cfg *config.Config, seed int64) Model {
	rng := randx.New(seed)
	return Model{
		shw:      show.New(rng, float64(cfg.Width), float64(cfg.Height)),
		canvas:   NewCanvas(defaultCols, defaultRows, float64(cfg.Width), float64(cfg.Height)),
		cfg:      cfg,
		seed:     seed,
		frame:    time.Second / time.Duration(cfg.FPS),
		lastTick: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			m.launched += m.shw.LaunchRandom(m.cfg.Burst.Min, m.cfg.Burst.Max)
			m.bursts++
		case "r":
			m.shw = show.New(randx.New(m.seed), float64(m.cfg.Width), float64(m.cfg.Height))
			m.canvas.Clear()
			m.launched = 0
			m.bursts = 0
		}
	case tea.WindowSizeMsg:
		cols := msg.Width - sidebarCols - 4
		rows := msg.Height - 2
		if cols < 20 {
			cols = 20
		}
		if rows < 10 {
			rows = 10
		}
		m.canvas.Resize(cols, rows)
	case TickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		m.shw.Step(dt)
		m.shw.Render(m.canvas)
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("SKYBURST") + "\n")

	status := "IDLE"
	if m.shw.Running() {
		status = "RUNNING"
	} else if m.shw.Completed() {
		status = doneStyle.Render("SHOW COMPLETE")
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", m.shw.Elapsed())) + "\n")
	s.WriteString(labelStyle.Render("Rockets") + valueStyle.Render(fmt.Sprintf("%d", m.shw.EntityCount())) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", m.shw.ParticleCount())) + "\n")
	s.WriteString(labelStyle.Render("Launched") + valueStyle.Render(fmt.Sprintf("%d", m.launched)) + "\n")
	s.WriteString(labelStyle.Render("Bursts") + valueStyle.Render(fmt.Sprintf("%d", m.bursts)) + "\n")

	s.WriteString(helpStyle.Render("\n───────────────────\nSPACE:Launch R:Reset\nQ:Quit"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
