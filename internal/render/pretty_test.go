// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPretty(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		indent int
		want   string
	}{
		{
			name:   "sorted keys",
			raw:    `{"b":2,"a":1}`,
			indent: 2,
			want:   "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			name:   "nested containers",
			raw:    `{"z":{"y":[1,2]}}`,
			indent: 2,
			want:   "{\n  \"z\": {\n    \"y\": [\n      1,\n      2\n    ]\n  }\n}",
		},
		{
			name:   "empty containers stay inline",
			raw:    `{"a":{},"b":[]}`,
			indent: 2,
			want:   "{\n  \"a\": {},\n  \"b\": []\n}",
		},
		{
			name:   "indent width four",
			raw:    `{"a":1}`,
			indent: 4,
			want:   "{\n    \"a\": 1\n}",
		},
		{
			name:   "whole number without decimal point",
			raw:    `{"n":2.0}`,
			indent: 2,
			want:   "{\n  \"n\": 2\n}",
		},
		{
			name:   "bare primitive",
			raw:    `true`,
			indent: 2,
			want:   "true",
		},
		{
			name:   "invalid input passes through",
			raw:    "not json at all",
			indent: 2,
			want:   "not json at all",
		},
		{
			name:   "zero indent falls back to default",
			raw:    `{"a":1}`,
			indent: 0,
			want:   "{\n  \"a\": 1\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pretty(tt.raw, tt.indent))
		})
	}
}

// Structurally equal documents always format to identical text, whatever
// their source key order.
func TestPretty_Deterministic(t *testing.T) {
	a := Pretty(`{"b":{"d":1,"c":2},"a":[1]}`, 2)
	b := Pretty(`{"a":[1],"b":{"c":2,"d":1}}`, 2)
	assert.Equal(t, a, b)
}
