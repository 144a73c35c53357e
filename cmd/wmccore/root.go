package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/crillab/wmccore/config"
	"github.com/crillab/wmccore/report"
)

// appName is used for the root command's Use string and config lookup.
const appName = "wmccore"

// cli holds state shared by every subcommand: a logger built from the
// resolved verbosity and a run ID stamped onto every log line, plus
// the loaded config that subcommands fall back to when a flag was not
// set on the command line, the way stacktower's CLI struct carries a
// single *log.Logger into each command closure.
type cli struct {
	logger  *report.CharmLogger
	cfg     config.Config
	verbose bool
}

func newCLI(w io.Writer, level log.Level) *cli {
	return &cli{
		logger: report.NewCharmLogger(w, level).WithField("run_id", uuid.New().String()),
		cfg:    config.Default(),
	}
}

func rootCmd() *cobra.Command {
	c := newCLI(os.Stderr, log.InfoLevel)

	root := &cobra.Command{
		Use:          appName,
		Short:        "wmccore parses weighted CNF dialects and orders their variables",
		Long:         "wmccore is the parsing and elimination-ordering front end for a weighted model counter: it reads UNWEIGHTED, CACHET, MINIC2D, WCNF or WPCNF formulas and can report their statistics or compute a variable elimination ordering over their Gaifman graph.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config %s: %w", cfgPath, err)
			}
			c.cfg = cfg

			c.logger.SetLevel(parseLogLevel(cfg.LogLevel))
			if c.verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug-level logging, overriding the config file's log_level")
	root.PersistentFlags().String("config", defaultConfigPath(), "path to a wmccore.toml config file")

	root.AddCommand(c.parseCmd())
	root.AddCommand(c.orderCmd())

	return root
}

func defaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.config/wmccore/wmccore.toml"
	}
	return "wmccore.toml"
}

// parseLogLevel maps a config log_level string to a charmbracelet/log
// level, defaulting to Info for an unrecognized value.
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
