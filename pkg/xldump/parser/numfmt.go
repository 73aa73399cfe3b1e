package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// builtInNumFmt maps the ECMA-376 built-in number format ids to their
// format codes. Ids outside the table render as "General".
var builtInNumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

// builtInDateFmtIDs is the set of built-in format ids that render dates or
// times, including the CJK locale variants 27–36 and 50–58.
var builtInDateFmtIDs = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true,
	21: true, 22: true, 27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true, 45: true, 46: true,
	47: true, 50: true, 51: true, 52: true, 53: true, 54: true, 55: true,
	56: true, 57: true, 58: true,
}

// cellFormat is the resolved display format for one style id.
type cellFormat struct {
	code string
	date bool
}

// resolveFormat turns a style id into its format code and date-ness. Lookup
// failures degrade to "General"; they never abort a pass.
func resolveFormat(f *excelize.File, styleID int) cellFormat {
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return cellFormat{code: "General"}
	}
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		code := *style.CustomNumFmt
		return cellFormat{code: code, date: isDateFormatCode(code)}
	}
	code, ok := builtInNumFmt[style.NumFmt]
	if !ok {
		code = "General"
	}
	return cellFormat{code: code, date: builtInDateFmtIDs[style.NumFmt]}
}

// isDateFormatCode reports whether a number format code renders date or time
// components. It scans the first section of the code for y/m/d/h/s tokens,
// ignoring quoted literals, bracketed sections, and escaped characters.
func isDateFormatCode(code string) bool {
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	inQuote := false
	inBracket := false
	escaped := false
	for _, ch := range code {
		switch {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		default:
			switch ch {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}
