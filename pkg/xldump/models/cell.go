package models

// StructureCell is one populated cell as seen by the structure pass.
type StructureCell struct {
	// Addr is the A1 coordinate of the cell.
	Addr string `json:"addr"`
	// Value is the constant held by the cell, or null for formula cells.
	Value Scalar `json:"value"`
	// Formula is the formula text (with leading "="), or null for constants.
	Formula *string `json:"formula"`
	// NumberFormat is the display-format string applied to the cell.
	NumberFormat string `json:"number_format"`
}

// ValueCell is one formula cell's cached result as seen by the values pass.
type ValueCell struct {
	// Addr is the A1 coordinate of the cell.
	Addr string `json:"addr"`
	// Value is the last-saved computed result, or null if the workbook holds
	// no cached result for the formula.
	Value Scalar `json:"value"`
	// NumberFormat is the display-format string applied to the cell.
	NumberFormat string `json:"number_format"`
}
