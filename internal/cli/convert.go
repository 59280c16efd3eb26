package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rootplot/internal/infra/logger"
	"github.com/aalvaropc/rootplot/internal/infra/sources"
	"github.com/aalvaropc/rootplot/internal/infra/sqlarchive"
	"github.com/aalvaropc/rootplot/internal/ports"
	"github.com/aalvaropc/rootplot/internal/usecase"
)

func convertCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "convert SRC DST.db",
		Short: "Copy every supported object of a data file into a SQLite archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer setupLogging(cmd, g, g.verbosity)()

			create := func(p string) (ports.ArchiveWriter, error) {
				w, err := sqlarchive.Create(p)
				if err != nil {
					return nil, err
				}
				return w, nil
			}

			n, err := usecase.NewConvert(sources.NewRegistry(), create, logger.L()).Execute(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d object(s) written to %s\n", n, args[1])
			return nil
		},
	}
}
