package xldump

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xldump-go/pkg/xldump/models"
	"github.com/ukaji3/xldump-go/pkg/xldump/output"
	"github.com/ukaji3/xldump-go/pkg/xldump/parser"
)

const (
	structureNote = "Non-empty constants + formula text for formula cells."
	calcNote      = "No recalculation performed."
	valuesNote    = "Cached values for formula cells only (what Excel last saved)."
)

// Result is what one export run produced: the two written file paths and
// the two documents in memory for summary reporting.
type Result struct {
	StructurePath string
	ValuesPath    string
	Structure     *models.StructureDocument
	Values        *models.ValuesDocument
}

// Export runs both passes over the workbook at path and writes
// <prefix>_structure.json and <prefix>_values.json.
//
// The run is synchronous and owns its workbook handles; each pass opens its
// own and closes it before the next step. The range is parsed before any
// file I/O, so malformed input never leaves partial output. The structure
// file is written before the values pass starts; if the values write fails,
// the structure file remains and the failure is returned.
func Export(path string, opts Options) (*Result, error) {
	opts = opts.withDefaults(path)

	rng, err := parser.ParseRange(opts.Range)
	if err != nil {
		return nil, err
	}

	structure, addrMap, err := buildStructure(path, opts.Range, rng)
	if err != nil {
		return nil, err
	}

	structurePath := filepath.Join(opts.OutDir, opts.Prefix+"_structure.json")
	if err := output.WriteFile(structurePath, structure); err != nil {
		return nil, &WriteError{Path: structurePath, Err: err}
	}

	values, err := buildValues(path, opts.Range, rng, addrMap)
	if err != nil {
		return nil, err
	}

	valuesPath := filepath.Join(opts.OutDir, opts.Prefix+"_values.json")
	if err := output.WriteFile(valuesPath, values); err != nil {
		return nil, &WriteError{Path: valuesPath, Err: err}
	}

	return &Result{
		StructurePath: structurePath,
		ValuesPath:    valuesPath,
		Structure:     structure,
		Values:        values,
	}, nil
}

// buildStructure is the first pass: it reads formula text and constants and
// records each sheet's formula address set for the values pass to consume.
func buildStructure(path, rangeText string, rng parser.Range) (*models.StructureDocument, map[string]parser.FormulaAddrSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	definedNames := parser.DefinedNames(f)
	sheetList := f.GetSheetList()

	addrMap := make(map[string]parser.FormulaAddrSet, len(sheetList))
	sheets := make([]models.StructureSheet, 0, len(sheetList))
	totalCells := 0
	totalFormulas := 0

	for _, name := range sheetList {
		cells, addrs, err := parser.StructurePass(f, name, rng)
		if err != nil {
			return nil, nil, err
		}
		addrMap[name] = addrs
		totalCells += len(cells)
		totalFormulas += len(addrs)

		sheets = append(sheets, models.StructureSheet{
			Name:             name,
			State:            sheetState(f, name),
			Dimensions:       rangeText,
			CellCount:        len(cells),
			FormulaCellCount: len(addrs),
			Cells:            cells,
		})
	}

	doc := &models.StructureDocument{
		SourceFile:        path,
		RangeExported:     rangeText,
		SheetCount:        len(sheetList),
		DefinedNameCount:  len(definedNames),
		DefinedNames:      definedNames,
		TotalCellsKept:    totalCells,
		TotalFormulaCells: totalFormulas,
		Sheets:            sheets,
		Notes: models.StructureNotes{
			Structure: structureNote,
			Calc:      calcNote,
		},
	}
	return doc, addrMap, nil
}

// buildValues is the second pass: it reads the cached results of exactly
// the cells the structure pass classified as formulas. Both passes must see
// the same range and sheet ordering for the documents to correlate.
func buildValues(path, rangeText string, rng parser.Range, addrMap map[string]parser.FormulaAddrSet) (*models.ValuesDocument, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make([]models.ValuesSheet, 0, len(sheetList))
	totalValues := 0
	totalMissing := 0

	for _, name := range sheetList {
		cells, missing, err := parser.ValuesPass(f, name, rng, addrMap[name])
		if err != nil {
			return nil, err
		}
		totalValues += len(cells)
		totalMissing += missing

		sheets = append(sheets, models.ValuesSheet{
			Name:                    name,
			State:                   sheetState(f, name),
			Dimensions:              rangeText,
			FormulaValueCount:       len(cells),
			MissingCachedValueCount: missing,
			Cells:                   cells,
		})
	}

	doc := &models.ValuesDocument{
		SourceFile:               path,
		RangeExported:            rangeText,
		SheetCount:               len(sheetList),
		TotalFormulaValues:       totalValues,
		TotalMissingCachedValues: totalMissing,
		Sheets:                   sheets,
		Notes:                    models.ValuesNotes{Values: valuesNote},
	}
	return doc, nil
}

// sheetState maps a sheet's visibility to "visible" or "hidden". A lookup
// failure degrades to "visible" (the workbook default) rather than aborting
// the export.
func sheetState(f *excelize.File, name string) string {
	visible, err := f.GetSheetVisible(name)
	if err != nil || visible {
		return "visible"
	}
	return "hidden"
}
