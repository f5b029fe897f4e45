// Package ui hosts the interactive environment explorer: a prompt for
// resolving qualified names against a linked environment and for
// attaching new sentences to it without a full relink.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"weld/internal/ast"
	"weld/internal/linker"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type exploreModel struct {
	env   *linker.Environment
	input textinput.Model
	lines []string
	width int
}

// NewExploreModel returns a Bubble Tea model over a linked environment.
func NewExploreModel(env *linker.Environment) tea.Model {
	in := textinput.New()
	in.Placeholder = "name to resolve, :attach <context> <variable>, :quit"
	in.Prompt = promptStyle.Render("weld> ")
	in.Focus()
	return &exploreModel{
		env:   env,
		input: in,
		width: 80,
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == ":quit" || line == ":q" {
				return m, tea.Quit
			}
			if line != "" {
				m.lines = append(m.lines, m.eval(line))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *exploreModel) View() string {
	var b strings.Builder
	b.WriteString(noteStyle.Render("environment explorer, esc to leave"))
	b.WriteString("\n\n")
	// Keep the tail that fits a modest screen.
	lines := m.lines
	if len(lines) > 16 {
		lines = lines[len(lines)-16:]
	}
	for _, line := range lines {
		b.WriteString(truncate(line, m.width-2))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func (m *exploreModel) eval(line string) string {
	if rest, ok := strings.CutPrefix(line, ":attach "); ok {
		return m.attach(rest)
	}
	id, ok := m.env.Resolve(line)
	if !ok {
		return missStyle.Render(fmt.Sprintf("%s: not found", line))
	}
	return m.describe(id)
}

// attach links an uninitialized variable into the scope of a resolved
// context node, exercising incremental sentence attachment.
func (m *exploreModel) attach(args string) string {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return missStyle.Render("usage: :attach <context> <variable>")
	}
	contextName, varName := fields[0], fields[1]
	context, ok := m.env.Resolve(contextName)
	if !ok {
		return missStyle.Render(fmt.Sprintf("%s: not found", contextName))
	}
	src := ast.NewTree(m.env.Tree.Strings, 0)
	sentence := src.NewVariable(src.Strings.Intern(varName), src.NewLiteral())
	id := m.env.AttachSentence(src, sentence, context)
	return okStyle.Render(fmt.Sprintf("attached %s", m.env.FullName(id)))
}

func (m *exploreModel) describe(id ast.NodeID) string {
	n := m.env.Tree.Get(id)
	detail := fmt.Sprintf("%s %s", n.Kind, m.env.FullName(id))
	if len(n.Members) > 0 {
		detail += noteStyle.Render(fmt.Sprintf("  (%d members)", len(n.Members)))
	}
	return okStyle.Render(detail)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
