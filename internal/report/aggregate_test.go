package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ulms/internal/domain/employee"
	"ulms/internal/domain/leave"
)

func testRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "E1", EmployeeNo: "1001", FirstName: "Nimal", LastName: "Perera", JobTitle: "Senior Lecturer"},
		{ID: "E2", EmployeeNo: "1002", FirstName: "Kamala", LastName: "Silva", JobTitle: "Instructor"},
		{ID: "E3", EmployeeNo: "1003", FirstName: "Ruwan", LastName: "Fernando", JobTitle: "Management Assistant"},
	}
}

func approved(empID, leaveType string, days float64, from time.Time) leave.Record {
	rec := leave.Record{
		LeaveType:    leaveType,
		Status:       leave.StatusApproved,
		NumberOfDays: days,
		Employee:     &employee.Employee{ID: empID},
	}
	if leave.KindOf(leaveType) == leave.KindRegular {
		to := from
		rec.FromDate, rec.ToDate = &from, &to
	} else {
		rec.ShortLeaveDate = &from
	}
	return rec
}

func TestAggregateScenario(t *testing.T) {
	jan10 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []leave.Record{
		approved("E1", "Casual Leave", 2, jan10),
		approved("E1", "Short Leave", 0.25, jan10),
		approved("E2", "Sick", 5, jan10),
	}

	buckets := Aggregate(DefaultConfig(GroupByEmployee), testRoster(), records)
	require.Len(t, buckets, 3)

	e1 := buckets[0]
	assert.Equal(t, "E1", e1.EmployeeID)
	assert.Equal(t, 2.0, e1.Casual)
	assert.Equal(t, 1, e1.ShortLeaveCount)
	assert.Equal(t, 2.0, e1.TotalLeaveDays)
	assert.Equal(t, 0.0, e1.NoPayDays)

	e2 := buckets[1]
	assert.Equal(t, 5.0, e2.Sick)
	assert.Equal(t, 5.0, e2.TotalLeaveDays)
	assert.Equal(t, 3.0, e2.NoPayDays)

	e3 := buckets[2]
	assert.Equal(t, 0.0, e3.TotalLeaveDays)
	assert.Equal(t, 0.0, e3.NoPayDays)

	rows := BuildRows(DefaultConfig(GroupByEmployee), buckets)
	require.Len(t, rows, 3)
	assert.Equal(t, "2.00", rows[0].Casual)
	assert.Equal(t, "1", rows[0].ShortLeave)
	assert.Equal(t, "2.00", rows[0].Total)
	assert.Equal(t, "-", rows[0].NoPay)
	assert.Equal(t, "5.00", rows[1].Sick)
	assert.Equal(t, "3.00", rows[1].NoPay)
	assert.Equal(t, "-", rows[2].Casual)
	assert.Equal(t, "0.00", rows[2].Total)
	assert.Equal(t, "-", rows[2].NoPay)
}

func TestAggregateZeroRecordsKeepsRoster(t *testing.T) {
	buckets := Aggregate(DefaultConfig(GroupByEmployee), testRoster(), nil)
	require.Len(t, buckets, 3)
	for _, b := range buckets {
		assert.Equal(t, 0.0, b.TotalLeaveDays)
		assert.Equal(t, 0, b.ShortLeaveCount)
	}

	rows := BuildRows(DefaultConfig(GroupByEmployee), buckets)
	for _, row := range rows {
		assert.Equal(t, "-", row.Casual)
		assert.Equal(t, "-", row.ShortLeave)
		assert.Equal(t, "-", row.NoPay)
	}
}

func TestAggregateShortLeaveExcludedFromTotals(t *testing.T) {
	jan := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	records := []leave.Record{
		approved("E1", "Short Leave", 0.25, jan),
		approved("E1", "Short Leave", 0.125, jan),
	}

	buckets := Aggregate(DefaultConfig(GroupByEmployee), testRoster(), records)
	assert.Equal(t, 2, buckets[0].ShortLeaveCount)
	assert.Equal(t, 0.0, buckets[0].TotalLeaveDays)
}

func TestAggregateCategoryIndependence(t *testing.T) {
	jan := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	before := Aggregate(DefaultConfig(GroupByEmployee), testRoster(), nil)
	after := Aggregate(DefaultConfig(GroupByEmployee), testRoster(), []leave.Record{
		approved("E1", "Casual Leave", 3, jan),
	})

	assert.Equal(t, 3.0, after[0].Casual)
	assert.Equal(t, 3.0, after[0].TotalLeaveDays)
	assert.Equal(t, before[0].Sick, after[0].Sick)
	assert.Equal(t, before[0].HalfDay, after[0].HalfDay)
	assert.Equal(t, before[1], after[1])
	assert.Equal(t, before[2], after[2])
}

func TestAggregateIncludeFilter(t *testing.T) {
	jan := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	records := []leave.Record{
		approved("E1", "Duty Leave", 4, jan),
		approved("E1", "Vacation Leave", 10, jan),
		approved("E1", "Casual Leave", 1, jan),
	}

	buckets := Aggregate(AcademicSupportConfig(GroupByEmployee), testRoster(), records)
	assert.Equal(t, 0.0, buckets[0].Duty)
	assert.Equal(t, 0.0, buckets[0].Vacation)
	assert.Equal(t, 1.0, buckets[0].TotalLeaveDays)
}

func TestAggregateByMonth(t *testing.T) {
	records := []leave.Record{
		approved("E1", "Casual Leave", 2, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)),
		approved("E2", "Sick Leave", 1, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
		approved("E1", "Short Leave", 0.25, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
	}

	buckets := Aggregate(DefaultConfig(GroupByMonth), testRoster(), records)
	require.Len(t, buckets, 12)

	jan := buckets[0]
	assert.Equal(t, time.January, jan.Month)
	assert.Equal(t, 2.0, jan.Casual)
	assert.Equal(t, 1.0, jan.Sick)
	assert.Equal(t, 3.0, jan.TotalLeaveDays)
	assert.Equal(t, 1.0, jan.NoPayDays)

	mar := buckets[2]
	assert.Equal(t, 1, mar.ShortLeaveCount)
	assert.Equal(t, 0.0, mar.TotalLeaveDays)

	for i := 3; i < 12; i++ {
		assert.Equal(t, 0.0, buckets[i].TotalLeaveDays, "month %d", i+1)
	}
}

func TestAggregateTolerance(t *testing.T) {
	jan := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	noEmployee := leave.Record{LeaveType: "Casual Leave", NumberOfDays: 2, FromDate: &jan, ToDate: &jan}
	unknownType := approved("E1", "Study Leave", 5, jan)
	missingDays := approved("E1", "Casual Leave", 0, jan)

	buckets := Aggregate(DefaultConfig(GroupByEmployee), testRoster(),
		[]leave.Record{noEmployee, unknownType, missingDays})
	require.Len(t, buckets, 3)
	assert.Equal(t, 0.0, buckets[0].TotalLeaveDays)
}

func TestAggregateOffRosterEmployeeAppended(t *testing.T) {
	jan := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	rec := approved("E9", "Casual Leave", 1, jan)
	rec.Employee.FirstName = "Gone"
	rec.Employee.LastName = "Staffer"

	buckets := Aggregate(DefaultConfig(GroupByEmployee), testRoster(), []leave.Record{rec})
	require.Len(t, buckets, 4)
	assert.Equal(t, "E9", buckets[3].EmployeeID)
	assert.Equal(t, 1.0, buckets[3].Casual)
}

func TestNoPayDays(t *testing.T) {
	assert.Equal(t, 0.0, NoPayDays(0, FreeLeaveAllowanceDays))
	assert.Equal(t, 0.0, NoPayDays(2, FreeLeaveAllowanceDays))
	assert.Equal(t, 0.5, NoPayDays(2.5, FreeLeaveAllowanceDays))
	assert.Equal(t, 3.0, NoPayDays(5, FreeLeaveAllowanceDays))

	// Non-decreasing in the total.
	prev := 0.0
	for total := 0.0; total <= 10; total += 0.25 {
		got := NoPayDays(total, FreeLeaveAllowanceDays)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
