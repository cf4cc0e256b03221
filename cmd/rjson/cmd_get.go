// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/rjson"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

func newGetCmd(e *env) *cobra.Command {
	var getDefault string
	var getQuote bool

	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path",
		Long: `Print the value at a path in a document.

Strings are printed without quotes unless --quote is set. Arrays and objects
are printed as JSON. If the path does not exist or its value is null, the
value of --default is printed if it is set, otherwise it is an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := e.loadDocument(args[0])
			if err != nil {
				return err
			}
			hasDefault := cmd.Flags().Changed("default")

			elt, err := lookup(doc, args[1])
			if errors.Is(err, rjson.ErrNotFound) && hasDefault {
				level.Debug(e.logger).Log("msg", "using default", "path", args[1])
				fmt.Fprintln(e.out, getDefault)
				return nil
			} else if err != nil {
				return err
			}
			if elt.IsNil() && hasDefault {
				fmt.Fprintln(e.out, getDefault)
				return nil
			}

			text, err := formatValue(elt, getQuote)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			fmt.Fprintln(e.out, text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&getDefault, "default", "d", "", "value to print if the path is missing or null")
	cmd.Flags().BoolVarP(&getQuote, "quote", "q", false, "print strings in quoted form")
	return cmd
}

// formatValue renders e as text for output.
func formatValue(e rjson.Element, quote bool) (string, error) {
	switch e.Kind() {
	case rjson.String:
		s, err := e.ToString("")
		if err != nil {
			return "", err
		} else if quote {
			return rjson.Quote(s), nil
		}
		return s, nil
	case rjson.Number:
		v, err := e.ToFloat64(0)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case rjson.Bool:
		v, err := e.ToBool(false)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	}
	v, err := materialize(e)
	if err != nil {
		return "", err
	}
	bits, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(bits), nil
}
