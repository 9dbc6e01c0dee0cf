package salary

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// buildSheetPDF renders the sheet as a minimal single-page PDF: a header, a
// fixed-width row per employee, failures, then the totals line.
func buildSheetPDF(sheet SheetResponse) ([]byte, error) {
	lines := []string{
		fmt.Sprintf("Salary Sheet - %s - %s %d", sheet.Org, time.Month(sheet.Month), sheet.Year),
		fmt.Sprintf("Effective days: %d", sheet.EffectiveDays),
		"",
		fmt.Sprintf("%-8s %-24s %-8s %8s %10s %10s %10s", "Code", "Name", "Type", "Days", "Actual", "Advances", "Net"),
	}
	for _, row := range sheet.Rows {
		lines = append(lines, fmt.Sprintf("%-8s %-24s %-8s %8s %10.2f %10.2f %10.2f",
			row.EmpCode, row.Name, row.SalaryType, row.TotalDays,
			row.Actual, row.Advances, row.NetPayable,
		))
	}
	if len(sheet.Failures) > 0 {
		lines = append(lines, "", "Not computed:")
		for _, f := range sheet.Failures {
			lines = append(lines, fmt.Sprintf("%-8s %-24s %s", f.EmpCode, f.Name, f.Reason))
		}
	}
	lines = append(lines, "",
		fmt.Sprintf("%-42s %10.2f %10.2f %10.2f", "TOTAL",
			sheet.Totals.Actual, sheet.Totals.Advances, sheet.Totals.NetPayable),
	)

	var content strings.Builder
	content.WriteString("BT\n/F1 9 Tf\n12 TL\n40 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
