// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"jdq", "dq"},
			expected: []string{"jdq", "dq"},
		},
		{
			name:     "no duplicates",
			args:     []string{"jdq", "dq", "--output", "text", "--titles"},
			expected: []string{"jdq", "dq", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"jdq", "dq", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"jdq", "dq", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"jdq", "dq", "--titles", "--loose", "--titles"},
			expected: []string{"jdq", "dq", "--loose", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"jdq", "dq", "--output=json", "--titles", "--output=text"},
			expected: []string{"jdq", "dq", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"jdq", "dq", "--output=json", "--output", "text"},
			expected: []string{"jdq", "dq", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"jdq", "sv", "--indent", "2", "--context", "3", "--indent", "4", "--context", "5"},
			expected: []string{"jdq", "sv", "--indent", "4", "--context", "5"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"jdq", "dq", "a.json", "b.json", "--output", "json", "--output", "text"},
			expected: []string{"jdq", "dq", "a.json", "b.json", "--output", "text"},
		},
		{
			name:     "stdin marker preserved",
			args:     []string{"jdq", "dq", "-", "b.json", "--output", "json", "--output", "text"},
			expected: []string{"jdq", "dq", "-", "b.json", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"jdq", "dq", "-o", "json", "-o", "text"},
			expected: []string{"jdq", "dq", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"jdq", "dq", "--color", "--loose"},
			expected: []string{"jdq", "dq", "--color", "--loose"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"jdq", "dq", "--sort", "path", "--sort", "type", "--sort", "left"},
			expected: []string{"jdq", "dq", "--sort", "left"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	// Ensure non-duplicate flags maintain their relative order.
	args := []string{"jdq", "dq", "--alpha", "--beta", "--gamma"}
	result := deduplicateFlags(args)
	expected := []string{"jdq", "dq", "--alpha", "--beta", "--gamma"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Order not preserved: got %v, want %v", result, expected)
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no command gets help",
			args:     []string{"jdq"},
			expected: []string{"jdq", "--help"},
		},
		{
			name:     "command passes through",
			args:     []string{"jdq", "dq"},
			expected: []string{"jdq", "dq"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		configVal []string
		expected  []string
	}{
		{
			name:      "empty config returns args unchanged",
			args:      []string{"jdq", "dq", "--titles"},
			insertIdx: 2,
			configVal: nil,
			expected:  []string{"jdq", "dq", "--titles"},
		},
		{
			name:      "single entry injected",
			args:      []string{"jdq", "dq", "--titles"},
			insertIdx: 2,
			configVal: []string{"--loose"},
			expected:  []string{"jdq", "dq", "--loose", "--titles"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"jdq", "dq", "--titles"},
			insertIdx: 2,
			configVal: []string{"--output text"},
			expected:  []string{"jdq", "dq", "--output", "text", "--titles"},
		},
		{
			name:      "multiple entries",
			args:      []string{"jdq", "dq"},
			insertIdx: 2,
			configVal: []string{"--loose", "--output json"},
			expected:  []string{"jdq", "dq", "--loose", "--output", "json"},
		},
		{
			name:      "insert after documents",
			args:      []string{"jdq", "dq", "a.json", "b.json", "--titles"},
			insertIdx: 4,
			configVal: []string{"--loose"},
			expected:  []string{"jdq", "dq", "a.json", "b.json", "--loose", "--titles"},
		},
		{
			name:      "complex multi-word entries",
			args:      []string{"jdq", "sv"},
			insertIdx: 2,
			configVal: []string{"--indent 4", "--context 5"},
			expected:  []string{"jdq", "sv", "--indent", "4", "--context", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := injectConfigSetTestable(tt.args, tt.configVal, tt.insertIdx)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("injectConfigSet() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// injectConfigSetTestable is a test-friendly version that accepts config values
// directly instead of reading from global config.
func injectConfigSetTestable(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, splitFields(entry)...)
	}

	return append(args[:insertIdx], append(expanded, args[insertIdx:]...)...)
}

// splitFields splits a string by whitespace, matching strings.Fields behavior.
func splitFields(s string) []string {
	var result []string
	start := -1

	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if start >= 0 {
				result = append(result, s[start:i])
				start = -1
			}
		} else {
			if start < 0 {
				start = i
			}
		}
	}

	if start >= 0 {
		result = append(result, s[start:])
	}

	return result
}
