package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "-", FormatDays(0))
	assert.Equal(t, "3.00", FormatDays(3))
	assert.Equal(t, "3.50", FormatDays(3.5))
	assert.Equal(t, "0.25", FormatDays(0.25))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "-", FormatCount(0))
	assert.Equal(t, "1", FormatCount(1))
	assert.Equal(t, "12", FormatCount(12))
}

func TestColumnsAlignment(t *testing.T) {
	row := Row{
		EmployeeID: "E1", Name: "Nimal Perera", JobTitle: "Senior Lecturer",
		Casual: "2.00", Sick: "-", HalfDay: "-", ShortLeave: "1",
		Duty: "-", Vacation: "-", Total: "2.00", NoPay: "-",
	}

	cols := EmployeeColumns()
	require.Equal(t, []string{
		"Employee Id", "Name", "Job Role", "Casual", "Sick", "Half Day",
		"Short Leave", "Duty", "Vacation", "Total", "No Pay Days",
	}, Headers(cols))
	require.Equal(t, []string{
		"E1", "Nimal Perera", "Senior Lecturer", "2.00", "-", "-",
		"1", "-", "-", "2.00", "-",
	}, Cells(cols, row))

	monthly := MonthColumns()
	assert.Equal(t, "Month", monthly[0].Header)
	assert.Len(t, monthly, len(cols)-2)
}

func TestBuildRowsMonthNames(t *testing.T) {
	buckets := Aggregate(DefaultConfig(GroupByMonth), nil, nil)
	rows := BuildRows(DefaultConfig(GroupByMonth), buckets)
	require.Len(t, rows, 12)
	assert.Equal(t, "January", rows[0].Month)
	assert.Equal(t, "December", rows[11].Month)
	assert.Equal(t, "0.00", rows[0].Total)
}
