package models

// StructureNotes documents what the structure export contains.
type StructureNotes struct {
	Structure string `json:"structure"`
	Calc      string `json:"calc"`
}

// StructureDocument is the full structure export: constants plus formula
// text, no recalculation. Built once per run and never mutated afterwards.
type StructureDocument struct {
	// SourceFile is the path of the exported workbook.
	SourceFile string `json:"source_file"`
	// RangeExported is the range applied to every sheet, in A1 notation.
	RangeExported string `json:"range_exported"`
	// SheetCount is the number of sheets in the workbook.
	SheetCount int `json:"sheet_count"`
	// DefinedNameCount is the number of defined-name records.
	DefinedNameCount int `json:"defined_name_count"`
	// DefinedNames holds the workbook's defined names.
	DefinedNames []DefinedName `json:"defined_names"`
	// TotalCellsKept is the sum of per-sheet cell counts.
	TotalCellsKept int `json:"total_cells_kept"`
	// TotalFormulaCells is the sum of per-sheet formula cell counts.
	TotalFormulaCells int `json:"total_formula_cells"`
	// Sheets holds the per-sheet sections in workbook order.
	Sheets []StructureSheet `json:"sheets"`
	// Notes describes the export semantics.
	Notes StructureNotes `json:"notes"`
}

// ValuesNotes documents what the values export contains.
type ValuesNotes struct {
	Values string `json:"values"`
}

// ValuesDocument is the full values export: last-saved cached results for
// the formula cells the structure pass identified.
type ValuesDocument struct {
	// SourceFile is the path of the exported workbook.
	SourceFile string `json:"source_file"`
	// RangeExported is the range applied to every sheet, in A1 notation.
	RangeExported string `json:"range_exported"`
	// SheetCount is the number of sheets in the workbook.
	SheetCount int `json:"sheet_count"`
	// TotalFormulaValues is the sum of per-sheet cached-value record counts.
	TotalFormulaValues int `json:"total_formula_values"`
	// TotalMissingCachedValues is the sum of per-sheet null-value counts.
	TotalMissingCachedValues int `json:"total_missing_cached_values"`
	// Sheets holds the per-sheet sections in workbook order.
	Sheets []ValuesSheet `json:"sheets"`
	// Notes describes the export semantics.
	Notes ValuesNotes `json:"notes"`
}
