package report

import "fmt"

// Row is one formatted report line. Every consumer — the JSON payload, the
// CSV/XLSX writers and the PDF table — reads rows through the Column tables
// below, so headers and cells cannot drift out of alignment.
type Row struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Name       string `json:"name,omitempty"`
	JobTitle   string `json:"jobTitle,omitempty"`
	Month      string `json:"month,omitempty"`
	Casual     string `json:"casual"`
	Sick       string `json:"sick"`
	HalfDay    string `json:"halfDay"`
	ShortLeave string `json:"shortLeave"`
	Duty       string `json:"duty"`
	Vacation   string `json:"vacation"`
	Total      string `json:"total"`
	NoPay      string `json:"noPayDays"`
}

type Column struct {
	Header string
	Value  func(Row) string
}

var dayColumns = []Column{
	{"Casual", func(r Row) string { return r.Casual }},
	{"Sick", func(r Row) string { return r.Sick }},
	{"Half Day", func(r Row) string { return r.HalfDay }},
	{"Short Leave", func(r Row) string { return r.ShortLeave }},
	{"Duty", func(r Row) string { return r.Duty }},
	{"Vacation", func(r Row) string { return r.Vacation }},
	{"Total", func(r Row) string { return r.Total }},
	{"No Pay Days", func(r Row) string { return r.NoPay }},
}

func EmployeeColumns() []Column {
	cols := []Column{
		{"Employee Id", func(r Row) string { return r.EmployeeID }},
		{"Name", func(r Row) string { return r.Name }},
		{"Job Role", func(r Row) string { return r.JobTitle }},
	}
	return append(cols, dayColumns...)
}

func MonthColumns() []Column {
	cols := []Column{
		{"Month", func(r Row) string { return r.Month }},
	}
	return append(cols, dayColumns...)
}

func Columns(groupBy GroupBy) []Column {
	if groupBy == GroupByMonth {
		return MonthColumns()
	}
	return EmployeeColumns()
}

func Headers(cols []Column) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = col.Header
	}
	return out
}

func Cells(cols []Column, row Row) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = col.Value(row)
	}
	return out
}

// FormatDays renders a day quantity: a dash for zero, two decimals otherwise.
func FormatDays(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatCount renders an occurrence count. Counts are never decimal-formatted.
func FormatCount(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}

// BuildRows formats buckets for display. The Total column always shows two
// decimals, even at zero, so an employee with no leave reads as an explicit
// 0.00 rather than an empty line.
func BuildRows(cfg Config, buckets []Bucket) []Row {
	rows := make([]Row, 0, len(buckets))
	for _, b := range buckets {
		row := Row{
			EmployeeID: b.EmployeeID,
			Name:       b.Name,
			JobTitle:   b.JobTitle,
			Casual:     FormatDays(b.Casual),
			Sick:       FormatDays(b.Sick),
			HalfDay:    FormatDays(b.HalfDay),
			ShortLeave: FormatCount(b.ShortLeaveCount),
			Duty:       FormatDays(b.Duty),
			Vacation:   FormatDays(b.Vacation),
			Total:      fmt.Sprintf("%.2f", b.TotalLeaveDays),
			NoPay:      FormatDays(b.NoPayDays),
		}
		if cfg.GroupBy == GroupByMonth {
			row.Month = b.Month.String()
		}
		rows = append(rows, row)
	}
	return rows
}
