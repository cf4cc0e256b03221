// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file> [path]",
		Short: "List the keys of an object in sorted order",
		Long: `List the keys of an object, one per line, in sorted order.

With no path, list the top-level keys of the document.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := e.loadDocument(args[0])
			if err != nil {
				return err
			}
			keys := doc.Keys()
			if len(args) == 2 {
				elt, err := lookup(doc, args[1])
				if err != nil {
					return err
				}
				keys, err = elt.Keys()
				if err != nil {
					return fmt.Errorf("%s: %w", args[1], err)
				}
			}
			for _, key := range keys {
				fmt.Fprintln(e.out, key)
			}
			return nil
		},
	}
}
