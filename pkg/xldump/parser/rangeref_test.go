package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input string
		want  Range
	}{
		{"A1:B2", Range{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 2}},
		{"A1:DN500", Range{MinRow: 1, MinCol: 1, MaxRow: 500, MaxCol: 118}},
		{"a1:b2", Range{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 2}},
		{"  C7:C7  ", Range{MinRow: 7, MinCol: 3, MaxRow: 7, MaxCol: 3}},
		{"AA10:AB20", Range{MinRow: 10, MinCol: 27, MaxRow: 20, MaxCol: 28}},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseRangeInvalidFormat(t *testing.T) {
	inputs := []string{
		"",
		"A1",
		"1A:B2",
		"A1:B",
		"A:B",
		"A1:B2:C3",
		"A1-B2",
		"A0:B2",
		"Sheet1!A1:B2",
	}

	for _, input := range inputs {
		_, err := ParseRange(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidRangeFormat, "input %q", input)
	}
}

func TestParseRangeInverted(t *testing.T) {
	for _, input := range []string{"B2:A1", "A2:A1", "B1:A1"} {
		_, err := ParseRange(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvertedRange, "input %q", input)
	}
}

func TestColumnLettersToIndex(t *testing.T) {
	tests := []struct {
		letters string
		want    int
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"ZZ", 702},
		{"AAA", 703},
		{"dn", 118},
	}

	for _, tt := range tests {
		got, err := ColumnLettersToIndex(tt.letters)
		require.NoError(t, err, "letters %q", tt.letters)
		assert.Equal(t, tt.want, got, "letters %q", tt.letters)
	}

	_, err := ColumnLettersToIndex("A1")
	assert.ErrorIs(t, err, ErrInvalidColumnLetters)
	_, err = ColumnLettersToIndex("")
	assert.ErrorIs(t, err, ErrInvalidColumnLetters)
}

func TestColumnLettersRoundTrip(t *testing.T) {
	for _, col := range []int{1, 2, 25, 26, 27, 52, 701, 702, 703, 16384} {
		letters := ColumnIndexToLetters(col)
		back, err := ColumnLettersToIndex(letters)
		require.NoError(t, err)
		assert.Equal(t, col, back, "col %d rendered as %q", col, letters)
	}
}

func TestRangeString(t *testing.T) {
	rng, err := ParseRange("a1:dn500")
	require.NoError(t, err)
	assert.Equal(t, "A1:DN500", rng.String())
}

func TestRangeContains(t *testing.T) {
	rng := Range{MinRow: 2, MinCol: 2, MaxRow: 4, MaxCol: 4}

	assert.True(t, rng.Contains(2, 2))
	assert.True(t, rng.Contains(4, 4))
	assert.True(t, rng.Contains(3, 3))
	assert.False(t, rng.Contains(1, 2))
	assert.False(t, rng.Contains(2, 5))
	assert.False(t, rng.Contains(5, 4))
}
