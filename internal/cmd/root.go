package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adamanr/corp_summary/internal/config"
	"github.com/adamanr/corp_summary/internal/controllers"
	"github.com/adamanr/corp_summary/internal/metrics"
	"github.com/adamanr/corp_summary/internal/storage"
	logging "github.com/adamanr/corp_summary/internal/utils"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	inputPath  string
	outputPath string
	logFile    string
	verbose    bool
}

// NewRootCmd builds the command tree. Without a subcommand it runs the
// interactive menu.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "corp_summary",
		Short: "Department hierarchy and salary report for an employee table",
		Long: `corp_summary reads a semicolon separated employee table and shows the
team hierarchy of every department or a per-department salary summary,
which can also be saved as a CSV file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to the TOML config file")
	flags.StringVarP(&opts.inputPath, "input", "i", "", "employee file (overrides config)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "report file (overrides config)")
	flags.StringVar(&opts.logFile, "log-file", "corp_summary.log", "path to the log file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newHierarchyCmd(opts),
		newReportCmd(opts),
		newServeCmd(opts),
	)

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap sets up logging and config, then loads the dataset once.
// The returned closer flushes the log file.
func bootstrap(opts *options, console io.Writer) (*controllers.Dependens, io.Closer, error) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
		if console == nil {
			console = os.Stderr
		}
	}

	logger, logFile := logging.SetupLogger(opts.logFile, level, console)

	cfg, err := config.GetConfig(opts.configPath, logger)
	if err != nil {
		logFile.Close()
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.inputPath != "" {
		cfg.Input.Path = opts.inputPath
	}
	if opts.outputPath != "" {
		cfg.Output.Path = opts.outputPath
	}

	deps := &controllers.Dependens{
		Store:   storage.NewFileStore(cfg.Comma(), logger),
		Logger:  logger,
		Config:  cfg,
		Metrics: metrics.New(),
	}

	if err := deps.Load(); err != nil {
		logFile.Close()
		return nil, nil, err
	}

	return deps, logFile, nil
}
