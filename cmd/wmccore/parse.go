package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crillab/wmccore/cnf"
)

type parseOpts struct {
	dialect string
}

// parseCmd builds the "parse" subcommand: it parses a single CNF file
// (or stdin, given "-") and prints the resulting formula's statistics,
// the way newParseCmd builds stacktower's own parse subcommand.
func (c *cli) parseCmd() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a CNF/WCNF/WPCNF file and print its statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialectName := opts.dialect
			if !cmd.Flags().Changed("dialect") {
				dialectName = c.cfg.Dialect
			}
			dialect, err := cnf.ParseDialect(dialectName)
			if err != nil {
				return err
			}

			f, err := cnf.ParseFile(args[0], dialect, c.logger)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			f.Describe(c.logger)

			if got, declared := len(f.Clauses()), f.DeclaredClauseCount(); got != declared {
				c.logger.Warnf("declared clause count %d does not match %d parsed clauses", declared, got)
			}

			fmt.Printf("declaredVars=%d apparentVars=%d clauses=%d additiveVars=%d disjunctiveVars=%d emptyClauseIndex=%d\n",
				f.DeclaredVarCount(), len(f.ApparentVars()), len(f.Clauses()),
				len(f.AdditiveVars()), len(f.DisjunctiveVars()), f.EmptyClauseIndex())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.dialect, "dialect", "unweighted",
		"input dialect: unweighted, cachet, minic2d, wcnf, wpcnf (overrides the config file's dialect)")
	return cmd
}
