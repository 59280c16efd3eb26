// Package tui is an interactive browser over the containers and objects of
// a data file.
package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/rootplot/internal/domain"
)

type keyItem struct {
	key domain.KeyInfo
}

func (k keyItem) Title() string {
	if domain.IsDirectoryClass(k.key.Class) {
		return k.key.Name + "/"
	}
	return k.key.Name
}

func (k keyItem) Description() string {
	return fmt.Sprintf("%s;%d", k.key.Class, k.key.Cycle)
}

func (k keyItem) FilterValue() string { return k.key.Name }

type model struct {
	theme Theme
	deps  Deps

	folder string
	keys   list.Model

	loading bool
	preview string
	viewing string
	toast   string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "rootplot"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		folder:  strings.Trim(deps.Folder, "/"),
		keys:    l,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return cmdLoadFolder(m.deps.Archive, m.folder)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.keys.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case folderLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logError("folder.load", msg.path, msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.folder = msg.path
		m.toast = ""
		keys := domain.LatestKeys(msg.keys)
		items := make([]list.Item, 0, len(keys))
		for _, k := range keys {
			items = append(items, keyItem{key: k})
		}
		cmd := m.keys.SetItems(items)
		m.keys.ResetSelected()
		return m, cmd

	case objectPreviewMsg:
		m.loading = false
		if msg.err != nil {
			m.logError("object.preview", msg.name, msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.viewing = msg.name
		m.preview = msg.preview
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		if m.keys.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if m.preview != "" {
				return m, nil
			}
			it, ok := m.keys.SelectedItem().(keyItem)
			if !ok {
				return m, nil
			}
			m.loading = true
			if domain.IsDirectoryClass(it.key.Class) {
				return m, cmdLoadFolder(m.deps.Archive, path.Join(m.folder, it.key.Name))
			}
			return m, cmdPreviewObject(m.deps.Archive, m.folder, it.key.Name)

		case "esc", "backspace", "b":
			if m.preview != "" {
				m.preview, m.viewing = "", ""
				return m, nil
			}
			if m.folder == "" {
				return m, nil
			}
			m.loading = true
			return m, cmdLoadFolder(m.deps.Archive, parentFolder(m.folder))
		}
	}

	if m.preview != "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.keys, cmd = m.keys.Update(msg)
	return m, cmd
}

func parentFolder(folder string) string {
	p := path.Dir(folder)
	if p == "." || p == "/" {
		return ""
	}
	return p
}

func (m model) logError(event, p string, err error) {
	if m.deps.Logger != nil {
		m.deps.Logger.Error(event, "path", p, "err", err)
	}
}

func (m model) location() string {
	if m.folder == "" {
		return m.deps.File + ":/"
	}
	return m.deps.File + ":/" + m.folder
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("rootplot browse") + "\n" +
		m.theme.Subtitle.Render(clampString(m.location(), 80)) + "\n"

	var status string
	switch {
	case m.toast != "":
		status = m.theme.Warn.Render("⚠ " + m.toast)
	case m.loading:
		status = m.theme.Help.Render("loading…")
	}

	if m.preview != "" {
		card := m.theme.Card.Render(
			m.theme.Title.Render(clampString(m.viewing, 60)) + "\n\n" + m.preview + "\n" +
				m.theme.Help.Render("esc back • q quit"),
		)
		return wrap.Render(header + "\n" + status + "\n" + card)
	}

	help := m.theme.Help.Render("↑/↓ navigate • enter open • esc up • / search • q quit")
	return wrap.Render(header + "\n" + status + "\n" + m.theme.Card.Render(m.keys.View()) + "\n" + help)
}
