// Package models defines the output document structures for workbook export.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// ScalarKind identifies which case of the Scalar union is populated.
type ScalarKind int

const (
	// ScalarNil is an absent value (empty cell or missing cached result).
	ScalarNil ScalarKind = iota
	// ScalarString is a native text value.
	ScalarString
	// ScalarNumber is a numeric value.
	ScalarNumber
	// ScalarBool is a boolean value.
	ScalarBool
	// ScalarTime is a date/time value, serialized as ISO-8601.
	ScalarTime
	// ScalarStringified is a best-effort string rendering of a value that
	// could not be represented as any other case.
	ScalarStringified
)

// Scalar is a closed tagged union over the cell value types a workbook can
// hold. The zero value is the nil scalar.
type Scalar struct {
	kind ScalarKind
	str  string
	num  float64
	b    bool
	t    time.Time
}

// NilScalar returns the absent-value scalar.
func NilScalar() Scalar { return Scalar{} }

// StringScalar returns a text scalar.
func StringScalar(s string) Scalar { return Scalar{kind: ScalarString, str: s} }

// NumberScalar returns a numeric scalar.
func NumberScalar(f float64) Scalar { return Scalar{kind: ScalarNumber, num: f} }

// BoolScalar returns a boolean scalar.
func BoolScalar(b bool) Scalar { return Scalar{kind: ScalarBool, b: b} }

// TimeScalar returns a date/time scalar.
func TimeScalar(t time.Time) Scalar { return Scalar{kind: ScalarTime, t: t} }

// StringifiedScalar returns a fallback scalar carrying a diagnostic string
// rendering of an unrepresentable value.
func StringifiedScalar(s string) Scalar { return Scalar{kind: ScalarStringified, str: s} }

// Kind returns the populated case.
func (s Scalar) Kind() ScalarKind { return s.kind }

// IsNil reports whether the scalar is the absent value.
func (s Scalar) IsNil() bool { return s.kind == ScalarNil }

// MarshalJSON emits the scalar as a JSON value. It is total: every case,
// including non-finite numbers, has a JSON rendering.
func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case ScalarNil:
		return []byte("null"), nil
	case ScalarString, ScalarStringified:
		return json.Marshal(s.str)
	case ScalarNumber:
		if math.IsNaN(s.num) || math.IsInf(s.num, 0) {
			// JSON has no encoding for these; degrade to a string.
			return json.Marshal(strconv.FormatFloat(s.num, 'g', -1, 64))
		}
		return json.Marshal(s.num)
	case ScalarBool:
		return json.Marshal(s.b)
	case ScalarTime:
		return json.Marshal(s.t.Format(time.RFC3339))
	default:
		return []byte("null"), nil
	}
}
