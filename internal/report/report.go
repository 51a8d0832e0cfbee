// Package report renders the downloadable credit portfolio PDF. It only
// lays out rows the service has already computed; no business state is
// derived here.
package report

import (
	"bytes"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// Row is one credit line in the report, fully formatted by the caller
type Row struct {
	Status        string
	ClientName    string
	StartDate     string
	EndDate       string
	OriginalTotal string
	Remaining     string
}

var colWidths = []float64{32, 52, 24, 24, 32, 32}

// Render produces the credits report as PDF bytes
func Render(rows []Row, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Client names carry accented characters; the core fonts need them
	// translated to cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(0, 10, "Credit Portfolio Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 6, "Generated: "+generatedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeHeader(pdf)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)

	fill := false
	for _, r := range rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(30, 30, 30)
		}
		pdf.SetFillColor(245, 245, 245)
		cells := []string{r.Status, trimTo(r.ClientName, 38), r.StartDate, r.EndDate, r.OriginalTotal, r.Remaining}
		aligns := []string{"C", "L", "C", "C", "R", "R"}
		for i, c := range cells {
			last := 0
			if i == len(cells)-1 {
				last = 1
			}
			pdf.CellFormat(colWidths[i], 8, tr(c), "1", last, aligns[i], fill, 0, "")
		}
		fill = !fill
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(30, 30, 30)
	pdf.SetTextColor(245, 245, 245)
	headers := []string{"STATUS", "CLIENT", "START", "END", "ORIGINAL", "REMAINING"}
	for i, h := range headers {
		last := 0
		if i == len(headers)-1 {
			last = 1
		}
		pdf.CellFormat(colWidths[i], 9, h, "1", last, "C", true, 0, "")
	}
}

// FormatMoney renders a decimal as a dollar amount with thousands
// grouping, e.g. $1,234.50.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := "$" + strings.Join(grouped, ",") + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

func trimTo(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
