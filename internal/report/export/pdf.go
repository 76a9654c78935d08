package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"ulms/internal/report"
)

func WritePDF(w io.Writer, title, subtitle string, cols []report.Column, rows []report.Row) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	if subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, subtitle)
		pdf.Ln(8)
	}

	widths := columnWidths(pdf, cols)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, col := range cols {
			pdf.CellFormat(widths[i], 7, col.Header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	drawHeader()

	pdf.SetFont("Helvetica", "", 9)
	_, pageHeight := pdf.GetPageSize()
	for _, row := range rows {
		if pdf.GetY() > pageHeight-20 {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Helvetica", "", 9)
		}
		for i, cell := range report.Cells(cols, row) {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// columnWidths spreads the usable page width over the columns, giving the
// name and job-role columns double weight.
func columnWidths(pdf *gofpdf.Fpdf, cols []report.Column) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	weights := make([]float64, len(cols))
	var total float64
	for i, col := range cols {
		weights[i] = 1
		if col.Header == "Name" || col.Header == "Job Role" {
			weights[i] = 2
		}
		total += weights[i]
	}

	widths := make([]float64, len(cols))
	for i := range cols {
		widths[i] = usable * weights[i] / total
	}
	return widths
}
