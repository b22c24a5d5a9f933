// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

// Options are the switches that shape a comparison. The zero value is not
// the default; use DefaultOptions.
type Options struct {
	// IgnoreKeyOrder diffs object children in sorted key order rather than
	// left-document order.
	IgnoreKeyOrder bool `yaml:"ignoreKeyOrder" json:"IgnoreKeyOrder"`
	// IgnoreArrayOrder matches array elements by content or inferred identity
	// rather than by position.
	IgnoreArrayOrder bool `yaml:"ignoreArrayOrder" json:"IgnoreArrayOrder"`
	// StrictType treats primitives of different JSON types as different even
	// when their string renderings match.
	StrictType bool `yaml:"strictType" json:"StrictType"`
}

// DefaultOptions returns the standard comparison behavior: key order
// ignored, array order significant, types strict.
func DefaultOptions() Options {
	return Options{
		IgnoreKeyOrder:   true,
		IgnoreArrayOrder: false,
		StrictType:       true,
	}
}
