package models

// DefinedName is a named reference to a cell, range, or expression.
type DefinedName struct {
	// Name is the defined name.
	Name string `json:"name"`
	// LocalSheetID is the index of the sheet the name is scoped to, or null
	// for workbook-global names.
	LocalSheetID *int `json:"localSheetId"`
	// RefersTo is the reference expression the name resolves to.
	RefersTo string `json:"refers_to"`
	// Comment is the optional author comment attached to the name.
	Comment *string `json:"comment"`
}
