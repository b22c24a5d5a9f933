// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"sort"
	"strconv"

	"github.com/jdq/jdq/internal/value"
)

// matchingKeyPriority is the order identity-candidate fields are tried before
// any remaining common keys are considered alphabetically.
var matchingKeyPriority = []string{"id", "_id", "uuid", "key", "name"}

// Compare diffs two value trees under the given options. It is deterministic
// and total: every input pair yields a valid tree, mismatched types become a
// modified leaf rather than an error.
func Compare(left, right *value.Value, opts Options) *Result {
	if left == nil {
		left = &value.Value{Kind: value.KindNull}
	}
	if right == nil {
		right = &value.Value{Kind: value.KindNull}
	}
	return &Result{root: compareValues(left, right, nil, "", 0, opts)}
}

func compareValues(left, right *value.Value, path []string, key string, depth int, opts Options) *Item {
	if left.Kind != right.Kind {
		// A type mismatch is never decomposed further. Under loose typing two
		// primitives still count as equal when they render the same.
		if !opts.StrictType && left.IsPrimitive() && right.IsPrimitive() &&
			left.PrimitiveString() == right.PrimitiveString() {
			return leaf(Unchanged, path, key, left, right, depth)
		}
		return leaf(Modified, path, key, left, right, depth)
	}

	switch left.Kind {
	case value.KindObject:
		return compareObjects(left, right, path, key, depth, opts)
	case value.KindArray:
		if opts.IgnoreArrayOrder {
			return compareArraysUnordered(left, right, path, key, depth, opts)
		}
		return container(path, key, left, right,
			orderedChildren(left, right, path, depth, opts), depth)
	default:
		if left.Equal(right) {
			return leaf(Unchanged, path, key, left, right, depth)
		}
		return leaf(Modified, path, key, left, right, depth)
	}
}

// compareObjects partitions keys into removed, added and common sets and
// emits one child per key. The parent carries both full object values no
// matter what its computed type ends up being.
func compareObjects(left, right *value.Value, path []string, key string, depth int, opts Options) *Item {
	var order []string
	if opts.IgnoreKeyOrder {
		seen := make(map[string]bool, len(left.Keys)+len(right.Keys))
		for _, k := range left.Keys {
			seen[k] = true
			order = append(order, k)
		}
		for _, k := range right.Keys {
			if !seen[k] {
				order = append(order, k)
			}
		}
		sort.Strings(order)
	} else {
		// Left-document order for common and removed keys, added keys appended
		// in right-document order.
		order = append(order, left.Keys...)
		for _, k := range right.Keys {
			if _, ok := left.Fields[k]; !ok {
				order = append(order, k)
			}
		}
	}

	children := make([]*Item, 0, len(order))
	for _, k := range order {
		lc, inLeft := left.Fields[k]
		rc, inRight := right.Fields[k]
		cp := childPath(path, k)
		switch {
		case inLeft && inRight:
			children = append(children, compareValues(lc, rc, cp, k, depth+1, opts))
		case inLeft:
			children = append(children, leaf(Removed, cp, k, lc, nil, depth+1))
		default:
			children = append(children, leaf(Added, cp, k, nil, rc, depth+1))
		}
	}

	return container(path, key, left, right, children, depth)
}

// orderedChildren compares arrays pairwise by index up to the longer length.
// Indices past one side's length yield removed/added leaves.
func orderedChildren(left, right *value.Value, path []string, depth int, opts Options) []*Item {
	n := len(left.Items)
	if len(right.Items) > n {
		n = len(right.Items)
	}

	children := make([]*Item, 0, n)
	for i := 0; i < n; i++ {
		k := strconv.Itoa(i)
		cp := childPath(path, k)
		switch {
		case i < len(left.Items) && i < len(right.Items):
			children = append(children, compareValues(left.Items[i], right.Items[i], cp, k, depth+1, opts))
		case i < len(left.Items):
			children = append(children, leaf(Removed, cp, k, left.Items[i], nil, depth+1))
		default:
			children = append(children, leaf(Added, cp, k, nil, right.Items[i], depth+1))
		}
	}
	return children
}

// compareArraysUnordered picks a matching strategy from the element
// composition: greedy value matching for primitive arrays, identity-key or
// content-hash matching for object arrays, and a positional fallback for
// mixed arrays.
func compareArraysUnordered(left, right *value.Value, path []string, key string, depth int, opts Options) *Item {
	var children []*Item
	switch {
	case allPrimitive(left.Items) && allPrimitive(right.Items):
		children = matchPrimitives(left, right, path, depth, opts)
	case len(left.Items) > 0 && len(right.Items) > 0 &&
		allObjects(left.Items) && allObjects(right.Items):
		if mk, ok := inferMatchingKey(left.Items, right.Items); ok {
			children = matchByKey(left, right, mk, path, depth, opts)
		} else {
			children = matchByHash(left, right, path, depth)
		}
	default:
		children = orderedChildren(left, right, path, depth, opts)
	}
	return container(path, key, left, right, children, depth)
}

// matchPrimitives greedily pairs each left element with the first
// not-yet-matched right element of equivalent value. Unmatched lefts are
// removed, leftover rights are added in right-array order.
func matchPrimitives(left, right *value.Value, path []string, depth int, opts Options) []*Item {
	matched := make([]bool, len(right.Items))
	var children []*Item

	for i, le := range left.Items {
		k := strconv.Itoa(i)
		cp := childPath(path, k)
		found := false
		for j, re := range right.Items {
			if matched[j] || !primitiveEquivalent(le, re, opts) {
				continue
			}
			matched[j] = true
			children = append(children, leaf(Unchanged, cp, k, le, re, depth+1))
			found = true
			break
		}
		if !found {
			children = append(children, leaf(Removed, cp, k, le, nil, depth+1))
		}
	}

	for j, re := range right.Items {
		if !matched[j] {
			k := strconv.Itoa(j)
			children = append(children, leaf(Added, childPath(path, k), k, nil, re, depth+1))
		}
	}
	return children
}

// matchByKey pairs object elements across the arrays by the stringified
// value of the inferred matching key.
func matchByKey(left, right *value.Value, mk string, path []string, depth int, opts Options) []*Item {
	rightByKey := make(map[string]int, len(right.Items))
	for j, re := range right.Items {
		rightByKey[re.Fields[mk].PrimitiveString()] = j
	}

	consumed := make([]bool, len(right.Items))
	var children []*Item
	for i, le := range left.Items {
		k := strconv.Itoa(i)
		cp := childPath(path, k)
		if j, ok := rightByKey[le.Fields[mk].PrimitiveString()]; ok {
			consumed[j] = true
			children = append(children, compareValues(le, right.Items[j], cp, k, depth+1, opts))
		} else {
			children = append(children, leaf(Removed, cp, k, le, nil, depth+1))
		}
	}

	for j, re := range right.Items {
		if !consumed[j] {
			k := strconv.Itoa(j)
			children = append(children, leaf(Added, childPath(path, k), k, nil, re, depth+1))
		}
	}
	return children
}

// matchByHash pairs elements by their canonical JSON string, first
// occurrence wins. The remainder becomes removed/added leaves.
func matchByHash(left, right *value.Value, path []string, depth int) []*Item {
	rightHashes := make([]string, len(right.Items))
	for j, re := range right.Items {
		rightHashes[j] = re.Canonical()
	}

	matched := make([]bool, len(right.Items))
	var children []*Item
	for i, le := range left.Items {
		k := strconv.Itoa(i)
		cp := childPath(path, k)
		hash := le.Canonical()
		found := false
		for j := range right.Items {
			if matched[j] || rightHashes[j] != hash {
				continue
			}
			matched[j] = true
			children = append(children, leaf(Unchanged, cp, k, le, right.Items[j], depth+1))
			found = true
			break
		}
		if !found {
			children = append(children, leaf(Removed, cp, k, le, nil, depth+1))
		}
	}

	for j, re := range right.Items {
		if !matched[j] {
			k := strconv.Itoa(j)
			children = append(children, leaf(Added, childPath(path, k), k, nil, re, depth+1))
		}
	}
	return children
}

// inferMatchingKey finds an object field that can serve as a unique
// identifier across both arrays: present in every element on both sides,
// primitive-valued, and pairwise distinct within each array independently.
// Candidates are tried in priority order, then alphabetically.
func inferMatchingKey(left, right []*value.Value) (string, bool) {
	common := commonKeys(left)
	rightCommon := commonKeys(right)
	for k := range common {
		if !rightCommon[k] {
			delete(common, k)
		}
	}

	var rest []string
	inPriority := make(map[string]bool, len(matchingKeyPriority))
	for _, k := range matchingKeyPriority {
		inPriority[k] = true
	}
	for k := range common {
		if !inPriority[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	var candidates []string
	for _, k := range matchingKeyPriority {
		if _, ok := common[k]; ok {
			candidates = append(candidates, k)
		}
	}
	candidates = append(candidates, rest...)

	for _, k := range candidates {
		if keyIdentifies(left, k) && keyIdentifies(right, k) {
			return k, true
		}
	}
	return "", false
}

// commonKeys returns the set of keys present in every object of items.
func commonKeys(items []*value.Value) map[string]bool {
	common := make(map[string]bool)
	for i, it := range items {
		if i == 0 {
			for _, k := range it.Keys {
				common[k] = true
			}
			continue
		}
		for k := range common {
			if _, ok := it.Fields[k]; !ok {
				delete(common, k)
			}
		}
	}
	return common
}

// keyIdentifies reports whether key is a usable identifier within one array:
// present everywhere, primitive, and with no duplicate stringified values.
func keyIdentifies(items []*value.Value, key string) bool {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		v, ok := it.Fields[key]
		if !ok || !v.IsPrimitive() {
			return false
		}
		s := v.PrimitiveString()
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

// primitiveEquivalent reports value equality under the current typing rules.
func primitiveEquivalent(l, r *value.Value, opts Options) bool {
	if l.Kind == r.Kind {
		return l.Equal(r)
	}
	if !opts.StrictType && l.IsPrimitive() && r.IsPrimitive() {
		return l.PrimitiveString() == r.PrimitiveString()
	}
	return false
}

func allPrimitive(items []*value.Value) bool {
	for _, it := range items {
		if !it.IsPrimitive() {
			return false
		}
	}
	return true
}

func allObjects(items []*value.Value) bool {
	for _, it := range items {
		if it.Kind != value.KindObject {
			return false
		}
	}
	return true
}

func leaf(t Type, path []string, key string, left, right *value.Value, depth int) *Item {
	return &Item{
		Path:  path,
		Type:  t,
		Key:   key,
		Left:  left,
		Right: right,
		Depth: depth,
	}
}

// container builds a parent item whose type derives from its children:
// modified iff any child carries a diff, unchanged otherwise.
func container(path []string, key string, left, right *value.Value, children []*Item, depth int) *Item {
	t := Unchanged
	for _, c := range children {
		if c.HasDiff() {
			t = Modified
			break
		}
	}
	return &Item{
		Path:     path,
		Type:     t,
		Key:      key,
		Left:     left,
		Right:    right,
		Children: children,
		Depth:    depth,
	}
}
