package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/oclkit/cl-runtime/clnative"
	"github.com/oclkit/cl-runtime/query"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	deviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	paramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectTarget struct {
	label  string
	src    query.Func
	params []query.Param
}

type modelState int

const (
	stateSelectTarget modelState = iota
	stateShowInfo
)

type interactiveModel struct {
	err      error
	targets  []inspectTarget
	selected int
	state    modelState
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

type loadedMsg struct {
	err     error
	targets []inspectTarget
}

type infoMsg struct {
	content string
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	m := &interactiveModel{state: stateSelectTarget}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return loadTargets
}

func loadTargets() tea.Msg {
	platforms, err := clnative.Platforms()
	if err != nil {
		return loadedMsg{err: err}
	}

	var targets []inspectTarget
	for i, platform := range platforms {
		src := clnative.PlatformSource(platform)
		targets = append(targets, inspectTarget{
			label:  fmt.Sprintf("Platform #%d: %s", i, renderInfo(src, query.PlatformName)),
			src:    src,
			params: query.PlatformParams(),
		})

		devices, err := clnative.Devices(platform, clnative.DeviceTypeAll)
		if err != nil {
			return loadedMsg{err: err}
		}
		for j, device := range devices {
			dsrc := clnative.DeviceSource(device)
			targets = append(targets, inspectTarget{
				label:  fmt.Sprintf("  Device #%d: %s", j, renderInfo(dsrc, query.DeviceName)),
				src:    dsrc,
				params: query.DeviceParams(),
			})
		}
	}
	if len(targets) == 0 {
		return loadedMsg{err: fmt.Errorf("no OpenCL platforms found")}
	}
	return loadedMsg{targets: targets}
}

func (m *interactiveModel) queryTarget() tea.Cmd {
	target := m.targets[m.selected]
	return func() tea.Msg {
		var b strings.Builder
		for _, p := range target.params {
			info, err := query.GetInfo(target.src, p.ID)
			if err != nil {
				b.WriteString(paramStyle.Render(p.Name))
				b.WriteString(" ")
				b.WriteString(errorStyle.Render(err.Error()))
				b.WriteString("\n")
				continue
			}
			b.WriteString(paramStyle.Render(p.Name))
			b.WriteString(" ")
			b.WriteString(info.String())
			b.WriteString("\n")
		}
		return infoMsg{content: b.String()}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		return m, nil

	case loadedMsg:
		m.err = msg.err
		m.targets = msg.targets
		return m, nil

	case infoMsg:
		m.viewport.SetContent(msg.content)
		m.viewport.GotoTop()
		m.state = stateShowInfo
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.state == stateShowInfo {
				m.state = stateSelectTarget
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.state == stateSelectTarget && m.selected > 0 {
				m.selected--
				return m, nil
			}
		case "down", "j":
			if m.state == stateSelectTarget && m.selected < len(m.targets)-1 {
				m.selected++
				return m, nil
			}
		case "enter":
			if m.state == stateSelectTarget && len(m.targets) > 0 {
				return m, m.queryTarget()
			}
		}
	}

	if m.state == stateShowInfo && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n" +
			helpStyle.Render("q: quit") + "\n"
	}
	if m.targets == nil {
		return helpStyle.Render("Enumerating OpenCL platforms...") + "\n"
	}

	var b strings.Builder
	switch m.state {
	case stateSelectTarget:
		b.WriteString(titleStyle.Render("clinspect"))
		b.WriteString("\n\n")
		for i, target := range m.targets {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + target.label))
			} else {
				b.WriteString(deviceStyle.Render("  " + target.label))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓: select · enter: inspect · q: quit"))

	case stateShowInfo:
		b.WriteString(titleStyle.Render(strings.TrimSpace(m.targets[m.selected].label)))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓: scroll · esc: back · q: quit"))
	}
	return b.String()
}
