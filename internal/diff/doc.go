// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff compares two parsed JSON documents and produces a tree of
// typed differences.
//
// Compare is a pure function: any pair of well-formed value trees yields a
// valid result, never an error. Mismatched types become a modified leaf,
// empty containers are data cases, and every edge resolves to a defined
// result.
//
// Three independent switches shape a comparison (see Options):
//
//   - IgnoreKeyOrder: object children are diffed in sorted key order rather
//     than left-document order.
//   - IgnoreArrayOrder: array elements are matched by content or inferred
//     identity instead of position. Object arrays first look for a field
//     that works as a unique identifier on both sides (id, _id, uuid, key,
//     name, then any common key alphabetically); failing that they match by
//     canonical-JSON content hash.
//   - StrictType: when false, primitives of different JSON types compare
//     equal if their string renderings match ("1" vs 1).
//
// The Result wrapper exposes leaf-oriented counts, a flattened view that is
// always consistent with those counts, and a record serialization intended
// for copying a diff as text.
package diff
