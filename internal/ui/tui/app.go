package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type statusItem struct {
	status domain.Status
}

func (i statusItem) Title() string {
	return fmt.Sprintf("%d %s", i.status.Code, i.status.Description)
}

func (i statusItem) Description() string {
	if i.status.Reference == "" {
		return "(no reference)"
	}
	return clampString(i.status.Reference, 72)
}

func (i statusItem) FilterValue() string {
	return fmt.Sprintf("%d %s", i.status.Code, i.status.Description)
}

type model struct {
	theme Theme
	deps  Deps
	log   *zap.Logger

	scr      screen
	list     list.Model
	selected domain.Status
	toast    string
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, deps Deps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	items := make([]list.Item, 0, len(deps.Registry))
	for _, s := range deps.Registry {
		items = append(items, statusItem{status: s})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "HTTP status codes"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: t,
		deps:  deps,
		log:   log,
		scr:   screenList,
		list:  l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// While typing a filter every key belongs to the list.
		if m.scr == screenList && m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "enter":
			if m.scr == screenList {
				it, ok := m.list.SelectedItem().(statusItem)
				if !ok {
					return m, nil
				}
				m.selected = it.status
				m.scr = screenDetail
				m.toast = ""
				m.log.Debug("browse.open", zap.Int("code", it.status.Code))
				return m, nil
			}

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenList
				return m, nil
			}
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("heman") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%d status codes", len(m.deps.Registry))) + "\n"

	banner := m.theme.Help.Render("No workspace: official and unofficial codes only.")
	if m.deps.Workspace != "" {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.deps.Workspace))
	}
	if m.deps.LogPath != "" {
		banner += "\n" + m.theme.Help.Render(fmt.Sprintf("Log: %s", m.deps.LogPath))
	}
	if m.toast != "" {
		banner += "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenList:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / filter • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.list.View()) + "\n" + help)

	case screenDetail:
		card := m.theme.Card.Render(
			renderStatusDetails(m.theme, m.selected) + "\n\n" +
				m.theme.Help.Render("esc/b back • q quit"),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
