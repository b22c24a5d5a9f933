// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

// Result wraps the root of a comparison tree. It is created once per
// comparison and read-only thereafter; counts and the flattened view are
// computed on demand from the tree, never cached.
type Result struct {
	root *Item
}

// Root returns the root item of the comparison tree.
func (r *Result) Root() *Item {
	return r.root
}

// AddedCount returns the number of added leaf diffs.
func (r *Result) AddedCount() int {
	return countLeaves(r.root, Added)
}

// RemovedCount returns the number of removed leaf diffs.
func (r *Result) RemovedCount() int {
	return countLeaves(r.root, Removed)
}

// ModifiedCount returns the number of modified leaf diffs.
func (r *Result) ModifiedCount() int {
	return countLeaves(r.root, Modified)
}

// TotalDiffCount returns the number of leaf diffs of any type.
func (r *Result) TotalDiffCount() int {
	return r.AddedCount() + r.RemovedCount() + r.ModifiedCount()
}

// IsIdentical reports whether the two documents carried no difference.
func (r *Result) IsIdentical() bool {
	return !r.root.HasDiff()
}

// Flattened returns the leaf-oriented view of the tree: an item appears if
// it differs and none of its children do; otherwise its differing children
// are visited instead. This mirrors the counting rule so that
// len(Flattened()) always equals TotalDiffCount().
func (r *Result) Flattened() []*Item {
	var out []*Item
	flatten(r.root, &out)
	return out
}

// Record is one flattened diff in serializable form. Left is included only
// for removed/modified items, Right only for added/modified; both carry the
// value's canonical JSON text.
type Record struct {
	Path  string `json:"path" yaml:"path"`
	Type  string `json:"type" yaml:"type"`
	Left  string `json:"left,omitempty" yaml:"left,omitempty"`
	Right string `json:"right,omitempty" yaml:"right,omitempty"`
}

// Records converts the flattened view to records, the shape used to copy a
// diff as text and by machine-readable command output.
func (r *Result) Records() []Record {
	items := r.Flattened()
	records := make([]Record, 0, len(items))
	for _, it := range items {
		rec := Record{
			Path: it.Pointer(),
			Type: it.Type.String(),
		}
		if it.Type == Removed || it.Type == Modified {
			rec.Left = it.Left.Canonical()
		}
		if it.Type == Added || it.Type == Modified {
			rec.Right = it.Right.Canonical()
		}
		records = append(records, rec)
	}
	return records
}

// countLeaves counts items of type t at the level where the diff actually
// lives: a node counts itself only when none of its children carry a diff,
// otherwise the differing children are counted instead. This prevents
// double-counting a parent alongside its children.
func countLeaves(it *Item, t Type) int {
	if !it.HasDiff() {
		return 0
	}
	anyChild := false
	for _, c := range it.Children {
		if c.HasDiff() {
			anyChild = true
			break
		}
	}
	if !anyChild {
		if it.Type == t {
			return 1
		}
		return 0
	}
	n := 0
	for _, c := range it.Children {
		n += countLeaves(c, t)
	}
	return n
}

func flatten(it *Item, out *[]*Item) {
	if !it.HasDiff() {
		return
	}
	anyChild := false
	for _, c := range it.Children {
		if c.HasDiff() {
			anyChild = true
			break
		}
	}
	if !anyChild {
		*out = append(*out, it)
		return
	}
	for _, c := range it.Children {
		flatten(c, out)
	}
}
