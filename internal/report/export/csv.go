// Package export renders formatted report rows as CSV, XLSX and PDF
// downloads. Writers consume rows only through the shared column tables, so
// every format emits identical headers and cell order.
package export

import (
	"encoding/csv"
	"io"

	"ulms/internal/report"
)

func WriteCSV(w io.Writer, cols []report.Column, rows []report.Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(report.Headers(cols)); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(report.Cells(cols, row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
