package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/rootplot/internal/ports"
)

func cmdLoadFolder(arc ports.Archive, path string) tea.Cmd {
	return func() tea.Msg {
		if arc == nil {
			return folderLoadedMsg{path: path, err: errors.New("archive is nil")}
		}
		dir, err := arc.Container(path)
		if err != nil {
			return folderLoadedMsg{path: path, err: err}
		}
		return folderLoadedMsg{path: path, keys: dir.Keys()}
	}
}

func cmdPreviewObject(arc ports.Archive, folder, name string) tea.Cmd {
	return func() tea.Msg {
		if arc == nil {
			return objectPreviewMsg{name: name, err: errors.New("archive is nil")}
		}
		dir, err := arc.Container(folder)
		if err != nil {
			return objectPreviewMsg{name: name, err: err}
		}
		obj, err := dir.Object(name, 0)
		if err != nil {
			return objectPreviewMsg{name: name, err: err}
		}
		return objectPreviewMsg{name: name, preview: renderObjectSummary(obj)}
	}
}
