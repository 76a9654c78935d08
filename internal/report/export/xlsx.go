package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"ulms/internal/report"
)

const sheetName = "Leave Report"

func WriteXLSX(w io.Writer, title string, cols []report.Column, rows []report.Row) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	file.SetSheetName("Sheet1", sheetName)

	if err := writeXLSXRow(file, 1, []string{title}); err != nil {
		return err
	}
	if err := writeXLSXRow(file, 2, report.Headers(cols)); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeXLSXRow(file, i+3, report.Cells(cols, row)); err != nil {
			return err
		}
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 2)
	if err != nil {
		return err
	}
	if err := file.SetCellStyle(sheetName, "A2", last, headerStyle); err != nil {
		return err
	}

	_, err = file.WriteTo(w)
	return err
}

func writeXLSXRow(file *excelize.File, rowNum int, values []string) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
