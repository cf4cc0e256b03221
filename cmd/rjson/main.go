// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program rjson inspects RJSON configuration files.
//
// Usage:
//
//	rjson keys  <file> [path]    # list the keys of an object
//	rjson get   <file> <path>    # print a single value
//	rjson dump  <file>           # convert a document to JSON or YAML
//	rjson check <file>...        # check that documents are well-formed
//
// A path is a dot-separated sequence of object keys and array indices, for
// example "window.size.width" or "plugins.-1".
package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// env carries the state shared by all subcommands.
type env struct {
	out     io.Writer
	logger  log.Logger
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	e := &env{out: stdout, logger: log.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:          "rjson",
		Short:        "Inspect RJSON configuration files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
			logger = log.With(logger, "cmd", cmd.Name())
			if e.verbose {
				e.logger = level.NewFilter(logger, level.AllowDebug())
			} else {
				e.logger = level.NewFilter(logger, level.AllowWarn())
			}
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newKeysCmd(e))
	rootCmd.AddCommand(newGetCmd(e))
	rootCmd.AddCommand(newDumpCmd(e))
	rootCmd.AddCommand(newCheckCmd(e))
	return rootCmd
}
