// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func newDumpCmd(e *env) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Convert a document to JSON or YAML",
		Long: `Decode every value in a document and write it to stdout as JSON or YAML.

Comments are discarded, and object keys are written in sorted order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := e.loadDocument(args[0])
			if err != nil {
				return err
			}
			v, err := materializeDocument(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			var out []byte
			switch dumpFormat {
			case "json":
				out, err = json.MarshalIndent(v, "", "  ")
				out = append(out, '\n')
			case "yaml":
				out, err = yaml.MarshalWithOptions(toMapSlice(v), yaml.AutoInt(), yaml.IndentSequence(true))
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", dumpFormat)
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", dumpFormat, err)
			}
			_, err = e.out.Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "output format (json or yaml)")
	return cmd
}

// toMapSlice converts objects in v to ordered YAML mappings with sorted keys.
func toMapSlice(v any) any {
	switch t := v.(type) {
	case map[string]any:
		ms := make(yaml.MapSlice, 0, len(t))
		for _, key := range slices.Sorted(maps.Keys(t)) {
			ms = append(ms, yaml.MapItem{Key: key, Value: toMapSlice(t[key])})
		}
		return ms
	case []any:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = toMapSlice(elt)
		}
		return out
	default:
		return v
	}
}
