package inspect

import (
	"strings"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas returns the print areas of a workbook by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !isPrintArea(dn.Name) {
			continue
		}
		for _, part := range strings.Split(dn.RefersTo, ",") {
			sheet, area, ok := parseAreaReference(part)
			if !ok {
				continue
			}
			if sheet == "" {
				sheet = dn.Scope
			}
			result[sheet] = append(result[sheet], area)
		}
	}

	return result
}

func isPrintArea(name string) bool {
	name = strings.TrimPrefix(strings.ToLower(name), "_xlnm.")
	return name == "print_area"
}

// parseAreaReference parses 'Sheet Name'!$A$1:$D$10 or Sheet!A1:D10.
func parseAreaReference(ref string) (string, models.PrintArea, bool) {
	ref = strings.TrimSpace(ref)
	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = ref[:idx]
		ref = ref[idx+1:]
		if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
	}

	start, end, found := strings.Cut(strings.ReplaceAll(ref, "$", ""), ":")
	if !found {
		end = start
	}
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return "", models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return "", models.PrintArea{}, false
	}
	return sheet, models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
