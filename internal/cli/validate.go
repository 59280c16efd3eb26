package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rootplot/internal/infra/config"
	"github.com/aalvaropc/rootplot/internal/infra/sources"
	"github.com/aalvaropc/rootplot/internal/usecase"
)

func validateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate CONFIG",
		Short: "Check a config and its input files without drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := loadProject(args[0])
			if err != nil {
				return err
			}
			defer setupLogging(cmd, g, proj.verbosity(cmd, g))()

			uc := usecase.NewValidateConfig(config.NewLoader(), sources.NewRegistry())
			jobs, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, j := range jobs {
				fmt.Fprintf(out, "- %s (%d input(s))\n", j.Name, len(j.Inputs))
			}
			fmt.Fprintln(out, "OK")
			return nil
		},
	}
}
