package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rootplot/internal/infra/fsworkspace"
	"github.com/aalvaropc/rootplot/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Create a rootplot project with an example config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", dir, err)
			}

			written, err := usecase.NewInitProject(fsworkspace.NewInitializer()).Execute(root, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initialized rootplot project in %s\n", root)
			for _, f := range written {
				fmt.Fprintf(out, "  created %s\n", f)
			}
			fmt.Fprintf(out, "Try: rootplot %s\n", filepath.Join(dir, "plots.json"))
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite existing template files")
	return c
}
