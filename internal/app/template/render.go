package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
)

// Output name placeholders.
const (
	VarJob  = "job"
	VarName = "name"
)

// RenderString replaces {{var}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if !strings.Contains(input, "{{") {
		return input, nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", templateError(input, fmt.Errorf("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", templateError(input, fmt.Errorf("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", templateError(input, fmt.Errorf("unknown placeholder %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func templateError(input string, err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Path: input,
		Err:  fmt.Errorf("%w: %w", err, domain.ErrInvalidConfig),
	}
}
