package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/infra/sources"
	"github.com/aalvaropc/rootplot/internal/usecase"
)

func lsCmd() *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "ls FILE [FOLDER]",
		Short: "List the keys of a container in a data file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := ""
			if len(args) == 2 {
				folder = args[1]
			}

			keys, err := usecase.NewListObjects(sources.NewRegistry()).Execute(args[0], folder, all)
			if err != nil {
				return err
			}
			return printKeys(cmd.OutOrStdout(), keys)
		},
	}

	c.Flags().BoolVarP(&all, "all", "a", false, "show every cycle")
	return c
}

var keyCell = lipgloss.NewStyle().PaddingRight(2)

func printKeys(w io.Writer, keys []domain.KeyInfo) error {
	if len(keys) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 2 {
				return lipgloss.NewStyle()
			}
			return keyCell
		})
	for _, k := range keys {
		name := k.Name
		if domain.IsDirectoryClass(k.Class) {
			name += "/"
		}
		t.Row(name, k.Class, strconv.Itoa(k.Cycle))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}
