// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "key and string value",
			line: `  "name": "x",`,
			want: []Span{
				{SpanWhitespace, "  "},
				{SpanKey, `"name"`},
				{SpanPunct, ":"},
				{SpanWhitespace, " "},
				{SpanString, `"x"`},
				{SpanPunct, ","},
			},
		},
		{
			name: "key and number",
			line: `  "n": -1.5e3`,
			want: []Span{
				{SpanWhitespace, "  "},
				{SpanKey, `"n"`},
				{SpanPunct, ":"},
				{SpanWhitespace, " "},
				{SpanNumber, "-1.5e3"},
			},
		},
		{
			name: "booleans and null",
			line: `[true, false, null]`,
			want: []Span{
				{SpanPunct, "["},
				{SpanBool, "true"},
				{SpanPunct, ","},
				{SpanWhitespace, " "},
				{SpanBool, "false"},
				{SpanPunct, ","},
				{SpanWhitespace, " "},
				{SpanNull, "null"},
			},
		},
		{
			name: "escaped quote inside string",
			line: `"he said \"hi\""`,
			want: []Span{{SpanString, `"he said \"hi\""`}},
		},
		{
			name: "structural only",
			line: `},`,
			want: []Span{{SpanPunct, "},"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Kind, got[i].Kind, "span %d kind", i)
				assert.Equal(t, want.Text, got[i].Text, "span %d text", i)
			}
		})
	}
}

// Concatenated span text always reproduces the input, even for lines that
// are not JSON at all.
func TestTokenize_Lossless(t *testing.T) {
	lines := []string{
		`  "a": [1, true, null],`,
		`this is not json`,
		``,
		`   `,
		`"unterminated`,
	}

	for _, line := range lines {
		var sb strings.Builder
		for _, span := range Tokenize(line) {
			sb.WriteString(span.Text)
		}
		assert.Equal(t, line, sb.String(), "line=%q", line)
	}
}
