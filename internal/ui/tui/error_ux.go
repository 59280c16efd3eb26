package tui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if kind := domain.KindOf(err); kind != "" {
		switch kind {
		case domain.KindNotFound:
			var oe *domain.OpError
			if errors.As(err, &oe) && strings.TrimSpace(oe.Path) != "" {
				return "Not found: " + filepath.Base(oe.Path)
			}
			return "Not found"

		case domain.KindUnsupported:
			return "Unsupported object (cannot be decoded)"

		case domain.KindInvalidConfig:
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid archive document"
			}
			return "Invalid data"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		return "Invalid archive document"
	}
	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}
