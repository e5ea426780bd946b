// cmd/patterns/tui.go
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// demoItem adapts a demo to bubbles/list.Item.
type demoItem struct {
	demo
}

func (i demoItem) Title() string       { return i.name }
func (i demoItem) Description() string { return i.blurb }
func (i demoItem) FilterValue() string { return i.name + " " + i.category }

// itemDelegate renders one demo per line: category, name, blurb.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(demoItem)
	if !ok {
		return
	}

	line := fmt.Sprintf("%s %s %s",
		categoryStyle.Render(fmt.Sprintf("%-10s", it.category)),
		titleStyle.Render(fmt.Sprintf("%-10s", it.name)),
		blurbStyle.Render(it.blurb),
	)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// modelTUI drives the browser: the demo list, and once a demo ran, its
// transcript in a panel until esc goes back.
type modelTUI struct {
	list      list.Model
	log       *slog.Logger
	exportDir string

	viewing    bool
	current    string
	transcript []string
	status     string
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.viewing {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc", "enter":
				m.viewing = false
				m.status = ""
			case "s":
				path, err := exportTranscript(m.exportDir, m.current, m.transcript)
				if err != nil {
					m.log.Warn("export failed", "demo", m.current, "error", err)
					m.status = "save failed: " + err.Error()
					return m, nil
				}
				m.log.Info("transcript exported", "path", path)
				m.status = "saved " + path
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// While filtering, q is input, not quit.
			if m.list.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		case "enter":
			if it, ok := m.list.SelectedItem().(demoItem); ok {
				m.log.Debug("run demo", "name", it.name)
				m.current = it.name
				m.transcript = it.run()
				m.viewing = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	if m.viewing {
		view := transcriptPanel(m.current, m.transcript)
		if m.status != "" {
			view += "\n" + helpStyle.Render(m.status)
		}
		return view
	}
	return m.list.View()
}

// runTUI opens the demo browser. A non-empty preselect moves the cursor to
// that demo before the first frame. Transcripts saved with s land in
// exportDir, or the working directory when it is empty.
func runTUI(preselect, exportDir string, log *slog.Logger) error {
	items := make([]list.Item, 0, len(demos))
	for _, d := range demos {
		items = append(items, demoItem{demo: d})
	}

	l := list.New(items, itemDelegate{}, 0, 0)
	l.Title = "design patterns, one pizzeria at a time"
	l.SetShowHelp(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("demo", "demos")

	runBind := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{runBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{runBind} }

	if preselect != "" {
		for i, d := range demos {
			if d.name == preselect {
				l.Select(i)
				break
			}
		}
	}

	m := modelTUI{list: l, log: log, exportDir: exportDir}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
