// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"strings"

	"github.com/jdq/jdq/internal/value"
)

// Type categorizes a single difference.
type Type int

const (
	Unchanged Type = iota
	Added
	Removed
	Modified
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unchanged"
	}
}

// Item is one node of the comparison result tree. Left is present unless the
// item is Added; Right is present unless it is Removed. A container item is
// Unchanged iff no descendant differs, otherwise Modified. The tree is
// immutable once built.
type Item struct {
	// Path segments from the document root, array indices as decimal strings.
	Path []string
	Type Type
	// Key is the last path segment, empty at the root.
	Key      string
	Left     *value.Value
	Right    *value.Value
	Children []*Item
	Depth    int
}

// HasDiff reports whether the item or any of its descendants differ. Because
// container items are always Modified when a descendant differs, the item's
// own type answers this.
func (it *Item) HasDiff() bool {
	return it.Type != Unchanged
}

// Pointer renders the item's path as a JSON Pointer (RFC 6901).
func (it *Item) Pointer() string {
	if len(it.Path) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, seg := range it.Path {
		sb.WriteByte('/')
		seg = strings.ReplaceAll(seg, "~", "~0")
		seg = strings.ReplaceAll(seg, "/", "~1")
		sb.WriteString(seg)
	}
	return sb.String()
}

// childPath returns a copy of path with seg appended. Paths are never
// mutated in place so sibling branches cannot corrupt each other.
func childPath(path []string, seg string) []string {
	next := make([]string, len(path), len(path)+1)
	copy(next, path)
	return append(next, seg)
}
