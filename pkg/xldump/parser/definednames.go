package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xldump-go/pkg/xldump/models"
)

// DefinedNames collects the workbook's defined names. A name scoped to one
// sheet carries that sheet's index as localSheetId; workbook-global names
// carry null. Enumeration problems degrade to an empty list, never an error.
func DefinedNames(f *excelize.File) []models.DefinedName {
	out := make([]models.DefinedName, 0)
	if f == nil {
		return out
	}

	for _, dn := range f.GetDefinedName() {
		var localID *int
		if dn.Scope != "" && dn.Scope != "Workbook" {
			if idx, err := f.GetSheetIndex(dn.Scope); err == nil && idx >= 0 {
				localID = &idx
			}
		}

		var comment *string
		if dn.Comment != "" {
			c := dn.Comment
			comment = &c
		}

		out = append(out, models.DefinedName{
			Name:         dn.Name,
			LocalSheetID: localID,
			RefersTo:     refersToText(dn),
			Comment:      comment,
		})
	}
	return out
}

// refersToText returns the name's reference expression, falling back to a
// generic rendering of the reference-bearing fields when no structured
// reference text is available.
func refersToText(dn excelize.DefinedName) string {
	if dn.RefersTo != "" {
		return dn.RefersTo
	}
	if dn.Scope != "" {
		return fmt.Sprintf("<no reference text, scope %s>", dn.Scope)
	}
	return "<no reference text>"
}
