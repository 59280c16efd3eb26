package tui

import "github.com/aalvaropc/rootplot/internal/domain"

type folderLoadedMsg struct {
	path string
	keys []domain.KeyInfo
	err  error
}

type objectPreviewMsg struct {
	name    string
	preview string
	err     error
}
