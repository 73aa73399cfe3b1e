package models

// StructureSheet is the per-sheet section of the structure document.
type StructureSheet struct {
	// Name is the sheet name, unique within the workbook.
	Name string `json:"name"`
	// State is the sheet visibility state ("visible" or "hidden").
	State string `json:"state"`
	// Dimensions is the exported range in A1 notation.
	Dimensions string `json:"dimensions"`
	// CellCount is the number of cells kept (constants plus formulas).
	CellCount int `json:"cell_count"`
	// FormulaCellCount is the number of formula cells found in the range.
	FormulaCellCount int `json:"formula_cell_count"`
	// Cells holds the kept cell records in row-major order.
	Cells []StructureCell `json:"cells"`
}

// ValuesSheet is the per-sheet section of the values document.
type ValuesSheet struct {
	// Name is the sheet name, unique within the workbook.
	Name string `json:"name"`
	// State is the sheet visibility state ("visible" or "hidden").
	State string `json:"state"`
	// Dimensions is the exported range in A1 notation.
	Dimensions string `json:"dimensions"`
	// FormulaValueCount is the number of cached-value records emitted.
	FormulaValueCount int `json:"formula_value_count"`
	// MissingCachedValueCount is how many of those records have a null value.
	MissingCachedValueCount int `json:"missing_cached_value_count"`
	// Cells holds the cached-value records in row-major order.
	Cells []ValueCell `json:"cells"`
}
