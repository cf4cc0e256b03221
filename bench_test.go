// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/rjson"
)

// benchInput constructs equivalent RJSON and JSON documents with n top-level
// members of mixed kinds.
func benchInput(n int) (rj, js []byte) {
	var r, j strings.Builder
	j.WriteString("{")
	for i := range n {
		fmt.Fprintf(&r, "// entry %d\nkey%d = { name = \"item %d\\t\", size = %d.5, tags = [1, 2, 3], on = true }\n", i, i, i, i)
		if i > 0 {
			j.WriteString(",")
		}
		fmt.Fprintf(&j, `"key%d": {"name": "item %d\t", "size": %d.5, "tags": [1, 2, 3], "on": true}`, i, i, i)
	}
	j.WriteString("}")
	return []byte(r.String()), []byte(j.String())
}

func BenchmarkParse(b *testing.B) {
	rj, js := benchInput(1000)
	b.Logf("Benchmark input: %d bytes RJSON, %d bytes JSON", len(rj), len(js))

	b.Run("Unmarshal", func(b *testing.B) {
		for b.Loop() {
			var v map[string]any
			if err := json.Unmarshal(js, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for b.Loop() {
			if _, err := rjson.Parse(rj); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	// Unmarshal decodes everything, so for a fair comparison touch every value.
	b.Run("ParseAndRead", func(b *testing.B) {
		for b.Loop() {
			doc, err := rjson.Parse(rj)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			for _, elt := range doc.All() {
				m, err := elt.Members()
				if err != nil {
					b.Fatalf("Members: %v", err)
				}
				m["name"].ToString("")
				m["size"].ToFloat64(0)
				m["on"].ToBool(false)
				tags, _ := m["tags"].Elements()
				for _, t := range tags {
					t.ToInt(0)
				}
			}
		}
	})
}
