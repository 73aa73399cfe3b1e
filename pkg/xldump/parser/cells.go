package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xldump-go/pkg/xldump/models"
)

// FormulaAddrSet is the per-sheet set of cell addresses the structure pass
// classified as formulas. It is the only state shared between the two
// passes: the values pass emits exactly its members, nothing else.
type FormulaAddrSet map[string]struct{}

// Contains reports set membership.
func (s FormulaAddrSet) Contains(addr string) bool {
	_, ok := s[addr]
	return ok
}

// sheetWalker holds per-sheet scan state shared by both passes.
type sheetWalker struct {
	f        *excelize.File
	sheet    string
	rng      Range
	date1904 bool
	formats  map[int]cellFormat // style id → resolved format
}

func newSheetWalker(f *excelize.File, sheet string, rng Range) *sheetWalker {
	w := &sheetWalker{
		f:       f,
		sheet:   sheet,
		rng:     rng,
		formats: make(map[int]cellFormat),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		w.date1904 = *props.Date1904
	}
	return w
}

// format resolves the display format of a cell, caching per style id.
func (w *sheetWalker) format(addr string) cellFormat {
	styleID, err := w.f.GetCellStyle(w.sheet, addr)
	if err != nil {
		return cellFormat{code: "General"}
	}
	cf, ok := w.formats[styleID]
	if !ok {
		cf = resolveFormat(w.f, styleID)
		w.formats[styleID] = cf
	}
	return cf
}

// rawValue reads the stored value and declared type of a cell. An empty
// string means the cell holds nothing.
func (w *sheetWalker) rawValue(addr string) (string, excelize.CellType) {
	raw, err := w.f.GetCellValue(w.sheet, addr, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", excelize.CellTypeUnset
	}
	ctype, err := w.f.GetCellType(w.sheet, addr)
	if err != nil {
		ctype = excelize.CellTypeUnset
	}
	return raw, ctype
}

// StructurePass walks the bounded rectangle of one sheet and returns the
// kept cell records in row-major order plus the sheet's formula address
// set. Formula cells keep their formula text and a null value; non-empty
// constants keep their value; empty cells are not materialized.
//
// The walk covers the full requested rectangle. The stored sheet dimension
// is never consulted: writers do not reliably maintain it, so trusting it
// can drop populated cells.
func StructurePass(f *excelize.File, sheet string, rng Range) ([]models.StructureCell, FormulaAddrSet, error) {
	w := newSheetWalker(f, sheet, rng)
	cells := make([]models.StructureCell, 0)
	addrs := make(FormulaAddrSet)

	for row := rng.MinRow; row <= rng.MaxRow; row++ {
		for col := rng.MinCol; col <= rng.MaxCol; col++ {
			addr, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, nil, err
			}

			formula, err := f.GetCellFormula(sheet, addr)
			if err != nil {
				return nil, nil, err
			}

			if formula != "" {
				text := formulaText(formula)
				cells = append(cells, models.StructureCell{
					Addr:         addr,
					Value:        models.NilScalar(),
					Formula:      &text,
					NumberFormat: w.format(addr).code,
				})
				addrs[addr] = struct{}{}
				continue
			}

			raw, ctype := w.rawValue(addr)
			if raw == "" {
				continue
			}
			cf := w.format(addr)
			cells = append(cells, models.StructureCell{
				Addr:         addr,
				Value:        NormalizeValue(raw, ctype, cf.date, w.date1904),
				Formula:      nil,
				NumberFormat: cf.code,
			})
		}
	}

	return cells, addrs, nil
}

// ValuesPass walks the same rectangle and emits one cached-value record per
// member of the structure pass's address set. The set is authoritative: a
// cell this pass would itself classify as a formula is skipped unless the
// structure pass saw it, keeping the two documents addr-for-addr consistent
// by construction. The int return counts records with no cached value.
func ValuesPass(f *excelize.File, sheet string, rng Range, addrs FormulaAddrSet) ([]models.ValueCell, int, error) {
	w := newSheetWalker(f, sheet, rng)
	cells := make([]models.ValueCell, 0, len(addrs))
	missing := 0

	for row := rng.MinRow; row <= rng.MaxRow; row++ {
		for col := rng.MinCol; col <= rng.MaxCol; col++ {
			addr, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, 0, err
			}
			if !addrs.Contains(addr) {
				continue
			}

			raw, ctype := w.rawValue(addr)
			cf := w.format(addr)
			value := NormalizeValue(raw, ctype, cf.date, w.date1904)
			if value.IsNil() {
				missing++
			}
			cells = append(cells, models.ValueCell{
				Addr:         addr,
				Value:        value,
				NumberFormat: cf.code,
			})
		}
	}

	return cells, missing, nil
}

// formulaText renders stored formula content the way a user reads it, with
// a leading "=". Array formulas already arrive as plain expression text.
func formulaText(formula string) string {
	if strings.HasPrefix(formula, "=") {
		return formula
	}
	return "=" + formula
}
