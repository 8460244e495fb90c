package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"uiscope/internal/engine/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
	severity    report.Severity
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list       list.Model
	results    []analysisResult
	lastUpdate time.Time
	fileCount  int
	issueCount int
	warnings   int
	errs       int
}

type updateMsg struct {
	results []analysisResult
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.results = msg.results
		m.lastUpdate = time.Now()
		m.fileCount, m.issueCount, m.warnings, m.errs = 0, 0, 0, 0

		files := map[string]bool{}
		items := []list.Item{}
		for _, result := range m.results {
			files[result.File] = true
			if result.Err != "" {
				m.errs++
				items = append(items, item{
					title:    fmt.Sprintf("[%s] analysis failed", result.Analyzer),
					desc:     fmt.Sprintf("%s: %s", result.File, result.Err),
					severity: report.SeverityError,
				})
				continue
			}
			for _, issue := range result.Issues {
				m.issueCount++
				switch issue.Severity {
				case report.SeverityWarning:
					m.warnings++
				case report.SeverityError:
					m.errs++
				}
				items = append(items, item{
					title:    fmt.Sprintf("[%s] %s", result.Analyzer, issue.Kind),
					desc:     fmt.Sprintf("%s: %s", issue.Location, issue.Description),
					severity: issue.Severity,
				})
			}
		}
		m.fileCount = len(files)
		m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf("Last update: %v | %d files | %d issues",
		m.lastUpdate.Format("15:04:05"), m.fileCount, m.issueCount))

	var summary string
	if m.issueCount == 0 && m.errs == 0 {
		summary = successStyle.Render("✅ No structural issues")
	} else {
		summary = fmt.Sprintf("⚠️  %s | %s",
			warningStyle.Render(fmt.Sprintf("%d Warnings", m.warnings)),
			errorStyle.Render(fmt.Sprintf("%d Errors", m.errs)))
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("Component Structure Monitor"), status, summary)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel() model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Detected Issues"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		lastUpdate: time.Now(),
	}
}

func runUI(ctx context.Context, app *App, target string) int {
	program := tea.NewProgram(initialModel(), tea.WithAltScreen())

	err := app.StartWatcher(ctx, []string{target}, func(batch []analysisResult) {
		program.Send(updateMsg{results: batch})
	})
	if err != nil {
		app.logger.Error("failed to start watcher", "error", err)
		return 1
	}

	// Seed the view with a full scan before the first change arrives.
	go func() {
		program.Send(updateMsg{results: analyzeTarget(ctx, app, target)})
	}()

	if _, err := program.Run(); err != nil {
		app.logger.Error("ui failed", "error", err)
		return 1
	}
	return 0
}
