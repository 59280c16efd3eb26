package ports

import "github.com/aalvaropc/rootplot/internal/domain"

// Canvas is a rendered figure that can be written in several formats.
type Canvas interface {
	// WriteFile encodes the canvas in the format named by path's extension.
	WriteFile(path string) error
}

// Renderer draws a composed figure.
type Renderer interface {
	Render(fig domain.Figure) (Canvas, error)
}

// FigureStore writes a canvas once per file type.
type FigureStore interface {
	SaveFigure(c Canvas, dir, name string, fileTypes []string) ([]string, error)
}
