// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"

	"github.com/jdq/jdq/internal/diff"
)

// SortRecords orders records by a comma-separated field spec. Fields are
// path, type, left and right. A leading - reverses a field, a leading !
// makes its comparison case sensitive. An empty spec leaves the records in
// document order.
func SortRecords(records []diff.Record, spec string) {
	if spec == "" {
		return
	}

	fields := strings.Split(spec, ",")

	sort.SliceStable(records, func(one, two int) bool {

		for _, field := range fields {
			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			caseSensitive := false
			if strings.HasPrefix(field, "!") {
				field = strings.TrimPrefix(field, "!")
				caseSensitive = true
			}

			oneValue := recordField(records[one], field)
			twoValue := recordField(records[two], field)

			if !caseSensitive {
				oneValue = strings.ToLower(oneValue)
				twoValue = strings.ToLower(twoValue)
			}

			if oneValue != twoValue {
				if ascending {
					return oneValue < twoValue
				}
				return oneValue > twoValue
			}
		}
		return false
	})
}

// recordField maps a sort field name to the record value it addresses.
// Unknown fields compare as empty so a typo degrades to a no-op rather than
// an error.
func recordField(r diff.Record, field string) string {
	switch field {
	case "path":
		return r.Path
	case "type":
		return r.Type
	case "left":
		return r.Left
	case "right":
		return r.Right
	}
	return ""
}
