package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ulms/internal/report"
)

func sampleRows() ([]report.Column, []report.Row) {
	cols := report.EmployeeColumns()
	rows := []report.Row{
		{
			EmployeeID: "1001", Name: "Nimal Perera", JobTitle: "Senior Lecturer",
			Casual: "2.00", Sick: "-", HalfDay: "-", ShortLeave: "1",
			Duty: "-", Vacation: "-", Total: "2.00", NoPay: "-",
		},
		{
			EmployeeID: "1002", Name: "Kamala Silva", JobTitle: "Instructor",
			Casual: "-", Sick: "5.00", HalfDay: "-", ShortLeave: "-",
			Duty: "-", Vacation: "-", Total: "5.00", NoPay: "3.00",
		},
	}
	return cols, rows
}

func TestWriteCSV(t *testing.T) {
	cols, rows := sampleRows()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cols, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Employee Id,Name,Job Role,Casual,Sick,Half Day,Short Leave,Duty,Vacation,Total,No Pay Days", lines[0])
	assert.Equal(t, "1001,Nimal Perera,Senior Lecturer,2.00,-,-,1,-,-,2.00,-", lines[1])
	assert.Equal(t, "1002,Kamala Silva,Instructor,-,5.00,-,-,-,-,5.00,3.00", lines[2])
}

func TestWriteXLSX(t *testing.T) {
	cols, rows := sampleRows()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Employee Leave Report", cols, rows))

	file, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	title, err := file.GetCellValue("Leave Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Employee Leave Report", title)

	header, err := file.GetCellValue("Leave Report", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Employee Id", header)

	name, err := file.GetCellValue("Leave Report", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Nimal Perera", name)

	noPay, err := file.GetCellValue("Leave Report", "K4")
	require.NoError(t, err)
	assert.Equal(t, "3.00", noPay)
}

func TestWritePDF(t *testing.T) {
	cols, rows := sampleRows()

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Employee Leave Report", "2025-01-01 to 2025-01-31", cols, rows))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}
