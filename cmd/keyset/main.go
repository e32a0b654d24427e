/*
Command keyset applies a script of insert and delete operations to a fresh
set and prints the sequence set after every step.

	keyset run --order 3 10 20 30 -20 +40
	keyset run --dot 1 2 3 4 5 | dot -Tsvg > tree.svg

An operation "+k" or "k" inserts integer key k, "-k" deletes it. Flags
must precede the operations; use "--" if the first operation is a delete:

	keyset run -m 3 -- -5 5 -5
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/keyset/console"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// Version is the version of the keyset command.
var Version = "v0.1.0"

var (
	order     int
	dumpDot   bool
	checkEach bool
	traceOn   bool
)

var rootCmd = &cobra.Command{
	Use:   "keyset",
	Short: "Drive an ordered key set from the command line",
	Long:  "A command line driver which applies insert/delete operations to a B+ tree backed key set and shows its leaves.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if traceOn {
			setupTracing()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [op...]",
	Short: "Apply operations to a fresh set",
	Long:  "Apply operations '+k' (insert), 'k' (insert) and '-k' (delete) in order, printing the sequence set after each one.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := parseOps(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !console.IsTerminal(int(os.Stdout.Fd())) {
			color.NoColor = true
		}
		p := console.NewPrinter(out, nil, console.WidthFromTerminal(int(os.Stdout.Fd())))
		return runScript(ops, p, out, scriptOptions{
			order: order,
			dot:   dumpDot,
			check: checkEach,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "keyset %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&traceOn, "trace", "t", false, "trace tree restructuring to stderr")
	runCmd.Flags().IntVarP(&order, "order", "m", 4, "fanout order of the tree")
	runCmd.Flags().BoolVar(&dumpDot, "dot", false, "print the final tree in Graphviz DOT format")
	runCmd.Flags().BoolVar(&checkEach, "check", false, "validate the tree structure after each operation")
	runCmd.Flags().SetInterspersed(false) // "-k" after the first operation is a delete, not a flag
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupTracing() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return gtrace.CoreTracer
	}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
