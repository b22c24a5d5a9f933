// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jdq/jdq/internal/value"
)

// Pretty reformats raw JSON text with the given indent width and object keys
// sorted alphabetically, so equal documents always format identically. Text
// that fails to parse is passed through unmodified rather than failing the
// caller's render.
func Pretty(raw string, indent int) string {
	if indent <= 0 {
		indent = DefaultOptions().Indent
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !gjson.Valid(trimmed) {
		return raw
	}

	var sb strings.Builder
	writePretty(&sb, value.FromGJSON(gjson.Parse(trimmed)), strings.Repeat(" ", indent), 0)
	return sb.String()
}

func writePretty(sb *strings.Builder, v *value.Value, indent string, depth int) {
	switch v.Kind {
	case value.KindObject:
		if len(v.Keys) == 0 {
			sb.WriteString("{}")
			return
		}
		keys := make([]string, len(v.Keys))
		copy(keys, v.Keys)
		sort.Strings(keys)

		sb.WriteString("{\n")
		for i, key := range keys {
			sb.WriteString(strings.Repeat(indent, depth+1))
			sb.WriteString(value.QuoteString(key))
			sb.WriteString(": ")
			writePretty(sb, v.Fields[key], indent, depth+1)
			if i < len(keys)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat(indent, depth))
		sb.WriteByte('}')
	case value.KindArray:
		if len(v.Items) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, item := range v.Items {
			sb.WriteString(strings.Repeat(indent, depth+1))
			writePretty(sb, item, indent, depth+1)
			if i < len(v.Items)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat(indent, depth))
		sb.WriteByte(']')
	case value.KindString:
		sb.WriteString(value.QuoteString(v.Str))
	default:
		sb.WriteString(v.PrimitiveString())
	}
}
