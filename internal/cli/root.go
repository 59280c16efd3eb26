package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rootplot/internal/domain"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if h := hint(err); h != "" {
		fmt.Fprintf(w, "tip: %s\n", h)
	}
}

func hint(err error) string {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return "check filename and folder with `rootplot ls FILE [FOLDER]`"
	case domain.KindInvalidConfig:
		return "`rootplot validate CONFIG` lists every config problem"
	case domain.KindUnsupported:
		return "supported data files are .root, .yaml/.yml/.json and .db/.sqlite"
	}
	return ""
}

type globalFlags struct {
	verbosity int
	logFile   string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "rootplot CONFIG",
		Short: "rootplot draws overlay plots of histograms described by a JSON or YAML config",
		Long: "rootplot reads plot jobs from CONFIG, loads the listed histograms, graphs and\n" +
			"efficiencies from ROOT, YAML or SQLite files and writes one figure per\n" +
			"object group in every requested format.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runPlots(cmd, g, opts, args[0])
		},
	}

	cmd.PersistentFlags().IntVarP(&g.verbosity, "verbosity", "v", 1, "0 warnings only, 1 progress, 2 debug")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "write JSON logs to this file instead of stderr")

	cmd.Flags().CountVarP(&opts.fast, "fast", "f", "skip Gaussian fits")
	cmd.Flags().StringArrayVar(&opts.jobs, "job", nil, "run only this job (repeatable)")
	cmd.Flags().StringVar(&opts.manifest, "manifest", "", "write a run manifest under this directory")
	cmd.Flags().StringVar(&opts.format, "format", "pretty", "output format: pretty|json")

	cmd.AddCommand(
		validateCmd(g),
		lsCmd(),
		browseCmd(g),
		initCmd(),
		convertCmd(g),
		versionCmd(),
	)
	return cmd
}
