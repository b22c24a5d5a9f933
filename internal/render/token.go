// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import "strings"

// SpanKind classifies a run of characters within one line for syntax
// coloring.
type SpanKind int

const (
	SpanWhitespace SpanKind = iota
	SpanKey
	SpanString
	SpanNumber
	SpanBool
	SpanNull
	SpanPunct
)

// Span is one typed run of text within a line.
type Span struct {
	Kind SpanKind
	Text string
}

// Tokenize splits one line of pretty-printed JSON into typed spans. A quoted
// string followed by a colon is a key; everything the scanner does not
// recognize lands in a punctuation span so the concatenated spans always
// reproduce the input exactly.
func Tokenize(line string) []Span {
	var spans []Span
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			j := i
			for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
				j++
			}
			spans = append(spans, Span{Kind: SpanWhitespace, Text: line[i:j]})
			i = j
		case c == '"':
			j := i + 1
			for j < len(line) {
				if line[j] == '\\' {
					j += 2
					continue
				}
				if line[j] == '"' {
					j++
					break
				}
				j++
			}
			if j > len(line) {
				j = len(line)
			}
			kind := SpanString
			if isKeyAt(line, j) {
				kind = SpanKey
			}
			spans = append(spans, Span{Kind: kind, Text: line[i:j]})
			i = j
		case c == '-' || (c >= '0' && c <= '9'):
			j := i + 1
			for j < len(line) && strings.ContainsRune("0123456789.eE+-", rune(line[j])) {
				j++
			}
			spans = append(spans, Span{Kind: SpanNumber, Text: line[i:j]})
			i = j
		case strings.HasPrefix(line[i:], "true"):
			spans = append(spans, Span{Kind: SpanBool, Text: "true"})
			i += 4
		case strings.HasPrefix(line[i:], "false"):
			spans = append(spans, Span{Kind: SpanBool, Text: "false"})
			i += 5
		case strings.HasPrefix(line[i:], "null"):
			spans = append(spans, Span{Kind: SpanNull, Text: "null"})
			i += 4
		default:
			j := i
			for j < len(line) && strings.ContainsRune("{}[],:", rune(line[j])) {
				j++
			}
			if j == i {
				// Unrecognized character, likely from passthrough of invalid
				// input. Sweep to the next recognizable boundary.
				for j < len(line) && !strings.ContainsRune("{}[],: \t\"", rune(line[j])) {
					j++
				}
			}
			spans = append(spans, Span{Kind: SpanPunct, Text: line[i:j]})
			i = j
		}
	}
	return spans
}

// isKeyAt reports whether the next non-space character at or after pos is a
// colon, which makes the preceding string a key.
func isKeyAt(line string, pos int) bool {
	for pos < len(line) {
		switch line[pos] {
		case ' ', '\t':
			pos++
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}
