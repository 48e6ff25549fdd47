package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ravenclaw900/dst-farming-ui/internal/config"
	"github.com/ravenclaw900/dst-farming-ui/internal/plant"
	"github.com/ravenclaw900/dst-farming-ui/internal/report"
)

type sessionState int

const (
	statePickSeason sessionState = iota
	statePickRatio
	stateFarmSize
	stateResults
)

type model struct {
	state        sessionState
	seasons      []plant.Season
	ratios       []plant.CropRatio
	seasonCursor int
	ratioCursor  int
	defaultFarm  plant.FarmSize
	sizeInput    textinput.Model
	viewport     viewport.Model
	report       report.Report
	err          error
	width        int
	height       int
	logger       *slog.Logger
}

func newModel(defaultFarm plant.FarmSize, logger *slog.Logger) model {
	ti := textinput.New()
	ti.Placeholder = defaultFarm.String()
	ti.CharLimit = 11
	ti.Width = 20

	return model{
		state:       statePickSeason,
		seasons:     plant.Seasons(),
		ratios:      plant.Ratios(),
		defaultFarm: defaultFarm,
		sizeInput:   ti,
		logger:      logger,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

		switch m.state {
		case statePickSeason:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				m.seasonCursor = (m.seasonCursor + len(m.seasons) - 1) % len(m.seasons)
			case "down", "j":
				m.seasonCursor = (m.seasonCursor + 1) % len(m.seasons)
			case "enter":
				m.state = statePickRatio
			}
			return m, nil

		case statePickRatio:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				m.ratioCursor = (m.ratioCursor + len(m.ratios) - 1) % len(m.ratios)
			case "down", "j":
				m.ratioCursor = (m.ratioCursor + 1) % len(m.ratios)
			case "backspace":
				m.state = statePickSeason
			case "enter":
				m.state = stateFarmSize
				m.err = nil
				return m, m.sizeInput.Focus()
			}
			return m, nil

		case stateFarmSize:
			if msg.Type == tea.KeyEnter {
				return m.showResults()
			}

		case stateResults:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "r":
				m.state = statePickSeason
				m.sizeInput.Reset()
				m.sizeInput.Blur()
				return m, nil
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		if m.state == stateResults {
			m.viewport.SetContent(RenderReport(m.report))
		}
	}

	if m.state == stateFarmSize {
		m.sizeInput, cmd = m.sizeInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// showResults parses the farm size and moves to the results view. A bad size
// keeps the user on the input with an error.
func (m model) showResults() (tea.Model, tea.Cmd) {
	farm := m.defaultFarm
	if v := strings.TrimSpace(m.sizeInput.Value()); v != "" {
		f, err := plant.ParseFarmSize(v)
		if err != nil {
			m.err = err
			return m, nil
		}
		farm = f
	}
	m.err = nil

	season, ratio := m.seasons[m.seasonCursor], m.ratios[m.ratioCursor]
	m.report = report.Build(season, ratio, &farm)
	m.logger.Debug("lookup", "season", season, "ratio", ratio, "farm", farm, "found", m.report.Found, "recipes", len(m.report.Recipes))

	if m.viewport.Width == 0 {
		w, h := m.width, m.height-4
		if w == 0 || h <= 0 {
			w, h = 80, 20
		}
		m.viewport = viewport.New(w, h)
	}
	m.viewport.SetContent(RenderReport(m.report))
	m.viewport.GotoTop()
	m.sizeInput.Blur()
	m.state = stateResults
	return m, nil
}

func (m model) View() string {
	var s string

	switch m.state {
	case statePickSeason:
		s = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Season"),
			renderChoices(m.seasons, m.seasonCursor),
			helpStyle.Render("↑/↓ to move, enter to choose, q to quit."),
		)

	case statePickRatio:
		s = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(fmt.Sprintf("Crop ratio for %s", m.seasons[m.seasonCursor])),
			renderChoices(m.ratios, m.ratioCursor),
			helpStyle.Render("↑/↓ to move, enter to choose, backspace to go back."),
		)

	case stateFarmSize:
		parts := []string{
			titleStyle.Render("Farm size"),
			"Width x height in cells (blank for " + m.defaultFarm.String() + "):",
			m.sizeInput.View(),
		}
		if m.err != nil {
			parts = append(parts, errorStyle.Render(m.err.Error()))
		}
		s = lipgloss.JoinVertical(lipgloss.Left, parts...)

	case stateResults:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			helpStyle.Render("r to start over, q to quit."),
		)
	}

	return "\n" + s + "\n"
}

func renderChoices[T fmt.Stringer](choices []T, cursor int) string {
	var b strings.Builder
	for i, c := range choices {
		if i == cursor {
			b.WriteString(cursorStyle.Render(c.String()))
		} else {
			b.WriteString("  " + c.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the interactive picker.
func Run(cfg *config.Config, logger *slog.Logger) error {
	p := tea.NewProgram(newModel(cfg.FarmSize, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start loads the configuration from the environment and runs the picker.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return Run(cfg, cfg.Logger())
}
