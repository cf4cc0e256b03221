// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"errors"
	"strings"

	"github.com/creachadair/rjson/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as an RJSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unquote decodes an RJSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unquote reports an error for an escape outside the fixed RJSON set. The
// error gives the offset of the offending backslash in src.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		var eerr *escape.Error
		if errors.As(err, &eerr) {
			// Report the offset relative to src, which includes the open quote.
			fixed := *eerr
			fixed.Offset++
			return "", &fixed
		}
		return "", err
	}
	return string(dec), nil
}
