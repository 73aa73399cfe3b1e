package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xldump-go/pkg/xldump/models"
)

// iso8601 layouts accepted for ISO-typed ("d") cells, longest first.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeValue canonicalizes a raw stored cell value into a Scalar. It is
// total: values that fit no native case degrade to a string rendering
// instead of failing, so value coercion can never abort an export.
//
// raw is the stored value with no number-format applied, ctype the cell's
// declared type, dateFmt whether the cell's number format renders dates, and
// date1904 the workbook's date epoch.
func NormalizeValue(raw string, ctype excelize.CellType, dateFmt, date1904 bool) models.Scalar {
	if raw == "" {
		return models.NilScalar()
	}

	switch ctype {
	case excelize.CellTypeBool:
		switch strings.ToUpper(raw) {
		case "1", "TRUE":
			return models.BoolScalar(true)
		case "0", "FALSE":
			return models.BoolScalar(false)
		}
		return models.StringifiedScalar(raw)

	case excelize.CellTypeError:
		// Error literals like #DIV/0! pass through as text.
		return models.StringScalar(raw)

	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.StringScalar(raw)

	case excelize.CellTypeFormula:
		// "str" cells hold a cached string result.
		return models.StringScalar(raw)

	case excelize.CellTypeDate:
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return models.TimeScalar(t)
			}
		}
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, date1904); err == nil {
				return models.TimeScalar(t)
			}
		}
		return models.StringifiedScalar(raw)

	default:
		// Number cells and untyped cells, which store numbers.
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.StringScalar(raw)
		}
		if dateFmt {
			if t, err := excelize.ExcelDateToTime(num, date1904); err == nil {
				return models.TimeScalar(t)
			}
		}
		return models.NumberScalar(num)
	}
}
