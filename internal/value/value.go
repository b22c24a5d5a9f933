// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind identifies the JSON type of a Value.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns the lowercase JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// Value is one node of a parsed JSON document. Only the fields relevant to
// Kind are populated. Keys preserves the order object keys appeared in the
// source document; Fields indexes the same children by name.
type Value struct {
	Kind   Kind
	Str    string
	Num    float64
	Bool   bool
	Keys   []string
	Fields map[string]*Value
	Items  []*Value
}

// Parse converts raw JSON text into a Value tree. Invalid input returns an
// error; this is the only failure surface of the core.
func Parse(raw string) (*Value, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	return FromGJSON(gjson.Parse(raw)), nil
}

// FromGJSON converts a gjson result into a Value tree, preserving object key
// order as encountered in the source text.
func FromGJSON(res gjson.Result) *Value {
	switch {
	case res.IsObject():
		v := &Value{
			Kind:   KindObject,
			Fields: make(map[string]*Value),
		}
		res.ForEach(func(key, child gjson.Result) bool {
			name := key.String()
			// Duplicate keys are invalid per object invariant; last one wins.
			if _, ok := v.Fields[name]; !ok {
				v.Keys = append(v.Keys, name)
			}
			v.Fields[name] = FromGJSON(child)
			return true
		})
		return v
	case res.IsArray():
		v := &Value{Kind: KindArray}
		res.ForEach(func(_, child gjson.Result) bool {
			v.Items = append(v.Items, FromGJSON(child))
			return true
		})
		return v
	case res.Type == gjson.String:
		return &Value{Kind: KindString, Str: res.Str}
	case res.Type == gjson.Number:
		return &Value{Kind: KindNumber, Num: res.Num}
	case res.Type == gjson.True:
		return &Value{Kind: KindBool, Bool: true}
	case res.Type == gjson.False:
		return &Value{Kind: KindBool, Bool: false}
	default:
		return &Value{Kind: KindNull}
	}
}

// IsPrimitive reports whether v is a string, number, boolean or null.
func (v *Value) IsPrimitive() bool {
	return v.Kind != KindObject && v.Kind != KindArray
}

// Equal reports strict structural equality. Types must match exactly; a
// string "1" is never equal to the number 1 here.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindObject:
		if len(v.Fields) != len(o.Fields) {
			return false
		}
		for key, vc := range v.Fields {
			oc, ok := o.Fields[key]
			if !ok || !vc.Equal(oc) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i, vc := range v.Items {
			if !vc.Equal(o.Items[i]) {
				return false
			}
		}
		return true
	case KindString:
		return v.Str == o.Str
	case KindNumber:
		return v.Num == o.Num
	case KindBool:
		return v.Bool == o.Bool
	default:
		return true
	}
}

// PrimitiveString renders a primitive value for equivalence checks and line
// matching. Whole numbers render without a decimal point. Containers fall
// back to their canonical form.
func (v *Value) PrimitiveString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return FormatNumber(v.Num)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return "null"
	default:
		return v.Canonical()
	}
}

// Canonical serializes the value as compact JSON with object keys sorted
// alphabetically. This string doubles as the content hash used to match
// array elements that have no reliable identity key.
func (v *Value) Canonical() string {
	var sb strings.Builder
	v.writeCanonical(&sb)
	return sb.String()
}

func (v *Value) writeCanonical(sb *strings.Builder) {
	switch v.Kind {
	case KindObject:
		keys := make([]string, len(v.Keys))
		copy(keys, v.Keys)
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(QuoteString(key))
			sb.WriteByte(':')
			v.Fields[key].writeCanonical(sb)
		}
		sb.WriteByte('}')
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.writeCanonical(sb)
		}
		sb.WriteByte(']')
	case KindString:
		sb.WriteString(QuoteString(v.Str))
	default:
		sb.WriteString(v.PrimitiveString())
	}
}

// FormatNumber renders a float the way JSON documents usually carry it:
// whole values without a decimal point, everything else in the shortest
// round-trippable form.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// QuoteString returns s as a JSON string literal.
func QuoteString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the raw text if it ever does.
		return `"` + s + `"`
	}
	return string(b)
}
