// Package xldump exports a workbook's structure (constants plus formula
// text) and its cached formula results as two correlated JSON documents,
// restricted to one rectangular cell range across every sheet.
package xldump

import (
	"path/filepath"
	"strings"
)

// DefaultRange is the range exported when the caller specifies none.
const DefaultRange = "A1:DN500"

// Options configures one export run.
type Options struct {
	// Range is the rectangle to export, in A1 notation, applied to every
	// sheet. Defaults to DefaultRange.
	Range string
	// OutDir is the directory the two documents are written to, created if
	// missing. Defaults to the workbook's directory.
	OutDir string
	// Prefix names the output files <Prefix>_structure.json and
	// <Prefix>_values.json. Defaults to the workbook's base name without
	// extension.
	Prefix string
}

// DefaultOptions returns the default export options.
func DefaultOptions() Options {
	return Options{Range: DefaultRange}
}

// withDefaults fills unset fields from the workbook path.
func (o Options) withDefaults(path string) Options {
	o.Range = strings.TrimSpace(o.Range)
	if o.Range == "" {
		o.Range = DefaultRange
	}
	if o.OutDir == "" {
		o.OutDir = filepath.Dir(path)
	}
	if o.Prefix == "" {
		base := filepath.Base(path)
		o.Prefix = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return o
}
