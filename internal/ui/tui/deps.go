package tui

import (
	"log/slog"

	"github.com/aalvaropc/rootplot/internal/ports"
)

type Deps struct {
	// Archive is the open data file to browse.
	Archive ports.Archive
	// File is shown in the header.
	File string
	// Folder is the container the browser starts in.
	Folder string

	Logger *slog.Logger
}
