// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

func newCheckCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that documents are well-formed",
		Long: `Parse each document and decode every value in it.

Parsing alone does not decode values, so check also reports errors in
nested values that would otherwise be found only when they are used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				doc, err := e.loadDocument(path)
				if err == nil {
					_, err = materializeDocument(doc)
					if err != nil {
						err = fmt.Errorf("%s: %w", path, err)
					}
				}
				if err != nil {
					failed++
					level.Warn(e.logger).Log("msg", "check failed", "file", path, "err", err)
					fmt.Fprintf(e.out, "FAIL %v\n", err)
					continue
				}
				fmt.Fprintf(e.out, "ok   %s\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
