package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rootplot/internal/infra/logger"
	"github.com/aalvaropc/rootplot/internal/infra/sources"
	"github.com/aalvaropc/rootplot/internal/ui/tui"
)

func browseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE [FOLDER]",
		Short: "Browse the containers and objects of a data file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the browser; log to a file or nowhere.
			verbosity := g.verbosity
			if g.logFile == "" {
				verbosity = -1
			}
			defer setupLoggingTo(cmd, g, verbosity, io.Discard)()

			arc, err := sources.NewRegistry().Open(args[0])
			if err != nil {
				return err
			}
			defer arc.Close()

			folder := ""
			if len(args) == 2 {
				folder = args[1]
			}
			return tui.Run(tui.Deps{
				Archive: arc,
				File:    args[0],
				Folder:  folder,
				Logger:  logger.L(),
			})
		},
	}
}
