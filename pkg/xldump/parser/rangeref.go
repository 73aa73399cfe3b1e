// Package parser provides workbook reading utilities: range addressing,
// scalar normalization, and the two extraction passes.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidRangeFormat indicates a range string that does not match
// "<colLetters><row>:<colLetters><row>".
var ErrInvalidRangeFormat = errors.New("invalid range format")

// ErrInvertedRange indicates a range whose end bound precedes its start
// bound on either axis.
var ErrInvertedRange = errors.New("inverted range")

// ErrInvalidColumnLetters indicates a column code containing a non-letter
// character.
var ErrInvalidColumnLetters = errors.New("invalid column letters")

var rangePattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+):([A-Za-z]+)([0-9]+)$`)

// Range is an inclusive rectangular cell region, 1-based on both axes.
type Range struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// ParseRange converts an A1-style range string like "A1:DN500" into bounds.
// Letters are case-insensitive and surrounding whitespace is ignored.
func ParseRange(text string) (Range, error) {
	m := rangePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Range{}, fmt.Errorf(`%w: range must look like "A1:DN500", got %q`, ErrInvalidRangeFormat, text)
	}

	minCol, err := ColumnLettersToIndex(m[1])
	if err != nil {
		return Range{}, err
	}
	maxCol, err := ColumnLettersToIndex(m[3])
	if err != nil {
		return Range{}, err
	}
	minRow, err := strconv.Atoi(m[2])
	if err != nil || minRow < 1 {
		return Range{}, fmt.Errorf("%w: bad start row in %q", ErrInvalidRangeFormat, text)
	}
	maxRow, err := strconv.Atoi(m[4])
	if err != nil || maxRow < 1 {
		return Range{}, fmt.Errorf("%w: bad end row in %q", ErrInvalidRangeFormat, text)
	}

	if minRow > maxRow || minCol > maxCol {
		return Range{}, fmt.Errorf("%w: %q", ErrInvertedRange, text)
	}

	return Range{MinRow: minRow, MinCol: minCol, MaxRow: maxRow, MaxCol: maxCol}, nil
}

// Contains reports whether the 1-based coordinate falls inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}

// String renders the range back to A1 notation.
func (r Range) String() string {
	return ColumnIndexToLetters(r.MinCol) + strconv.Itoa(r.MinRow) +
		":" + ColumnIndexToLetters(r.MaxCol) + strconv.Itoa(r.MaxRow)
}

// ColumnLettersToIndex converts column letters to a 1-based index, treating
// the letters as a base-26 numeral with A–Z mapped to 1–26.
// "A"→1, "Z"→26, "AA"→27.
func ColumnLettersToIndex(letters string) (int, error) {
	letters = strings.ToUpper(strings.TrimSpace(letters))
	if letters == "" {
		return 0, fmt.Errorf("%w: empty column code", ErrInvalidColumnLetters)
	}
	n := 0
	for _, ch := range letters {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumnLetters, letters)
		}
		n = n*26 + int(ch-'A') + 1
	}
	return n, nil
}

// ColumnIndexToLetters converts a 1-based column index to its letter code.
// 1→"A", 26→"Z", 27→"AA".
func ColumnIndexToLetters(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
