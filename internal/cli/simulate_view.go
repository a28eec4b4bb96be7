package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/vital/internal/cli/formatter"
	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/forecast"
)

const (
	sleepStep = 0.5
	stepsStep = 1000
)

// simulateModel is a live what-if view over a habit simulation. The target
// habits can be adjusted from the keyboard and the projection, feasibility
// and avatar are recomputed on every change.
type simulateModel struct {
	resp   *contract.SimulateResponse
	days   int
	cursor int
}

func newSimulateModel(resp *contract.SimulateResponse) *simulateModel {
	return &simulateModel{resp: resp, days: len(resp.Points)}
}

func (m *simulateModel) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "day")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "sleep")),
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "steps")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *simulateModel) Init() tea.Cmd {
	return nil
}

func (m *simulateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.resp.Points)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.resp.Points) - 1
	case "up", "k":
		m.adjust(sleepStep, 0)
	case "down", "j":
		m.adjust(-sleepStep, 0)
	case "+", "=":
		m.adjust(0, stepsStep)
	case "-", "_":
		m.adjust(0, -stepsStep)
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// adjust nudges the target habits and recomputes the projection. Data
// confidence is untouched, it grades the history rather than the scenario.
func (m *simulateModel) adjust(sleepDelta float64, stepsDelta int) {
	scenario := m.resp.Scenario
	scenario.TargetSleep += sleepDelta
	scenario.TargetSteps += stepsDelta
	if scenario.TargetSleep < 0 {
		scenario.TargetSleep = 0
	}
	if scenario.TargetSleep > 24 {
		scenario.TargetSleep = 24
	}
	if scenario.TargetSteps < 0 {
		scenario.TargetSteps = 0
	}
	m.resp.Scenario = scenario

	m.resp.Points = forecast.SimulateHabits(scenario, m.resp.Start, m.days)
	m.resp.Feasibility = forecast.AssessFeasibility(
		scenario.TargetSleep, scenario.TargetSteps,
		scenario.BaselineSleep, scenario.BaselineSteps,
	)

	currentEnergy := forecast.PredictedEnergy(scenario.BaselineSleep, scenario.BaselineSteps)
	targetEnergy := forecast.PredictedEnergy(scenario.TargetSleep, scenario.TargetSteps)
	m.resp.Insight = forecast.PredictionInsight(
		currentEnergy, targetEnergy,
		scenario.TargetSleep-scenario.BaselineSleep,
		scenario.TargetSteps-scenario.BaselineSteps,
	)
	m.resp.Avatar = forecast.InferAvatarDecision(scenario.TargetSleep, targetEnergy)

	if m.cursor >= len(m.resp.Points) {
		m.cursor = len(m.resp.Points) - 1
	}
}

func (m *simulateModel) View() string {
	if len(m.resp.Points) == 0 {
		return formatter.Dim("Nothing to show.") + "\n"
	}

	p := m.resp.Points[m.cursor]
	scenario := m.resp.Scenario

	energies := make([]int, len(m.resp.Points))
	for i, pt := range m.resp.Points {
		energies[i] = pt.PredictedEnergy
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Target  %s sleep  %s steps\n",
		formatter.Bold(formatter.FormatSleep(scenario.TargetSleep)),
		formatter.Bold(formatter.FormatSteps(scenario.TargetSteps)),
	))
	b.WriteString(fmt.Sprintf("From    %s sleep  %s steps\n\n",
		formatter.Dim(formatter.FormatSleep(scenario.BaselineSleep)),
		formatter.Dim(formatter.FormatSteps(scenario.BaselineSteps)),
	))

	b.WriteString(formatter.StyleBlue.Render(formatter.Sparkline(energies)) + "\n")
	b.WriteString(cursorMarker(m.cursor) + "\n\n")

	b.WriteString(fmt.Sprintf("Day %d  %s\n", p.Day, formatter.HumanDate(p.Date)))
	b.WriteString(fmt.Sprintf("Energy  %s\n", formatter.ScoreBar(float64(p.PredictedEnergy), 20)))
	b.WriteString(fmt.Sprintf("Mood    %s\n\n", formatter.Bold(string(p.PredictedMood))))

	b.WriteString(fmt.Sprintf("Feasibility  %s", formatter.ConfidenceBadge(m.resp.Feasibility.Confidence)))
	if m.resp.Feasibility.IsUnrealistic {
		b.WriteString("  " + formatter.StyleRed.Render("UNREALISTIC"))
	}
	b.WriteString("\n\n")

	b.WriteString(formatter.AvatarFace(m.resp.Avatar) + "\n")
	b.WriteString(formatter.Bold(m.resp.Insight) + "\n\n")

	var helps []string
	for _, binding := range m.shortHelp() {
		h := binding.Help()
		helps = append(helps, h.Key+" "+h.Desc)
	}
	b.WriteString(formatter.Dim(strings.Join(helps, "  ")))

	return formatter.RenderBox("Habit Simulation", b.String())
}

// cursorMarker draws a caret under the sparkline at the selected day.
func cursorMarker(cursor int) string {
	return strings.Repeat(" ", cursor) + "^"
}
