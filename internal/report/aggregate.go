package report

import (
	"log/slog"
	"time"

	"ulms/internal/domain/employee"
	"ulms/internal/domain/leave"
)

// Bucket is the running per-employee or per-month summary. Day categories
// accumulate NumberOfDays; short leave is counted by occurrence and never
// contributes to TotalLeaveDays.
type Bucket struct {
	EmployeeID      string
	Name            string
	JobTitle        string
	Month           time.Month
	Casual          float64
	Sick            float64
	HalfDay         float64
	Duty            float64
	Vacation        float64
	ShortLeaveCount int
	TotalLeaveDays  float64
	NoPayDays       float64
}

func (b *Bucket) add(cat Category, days float64) {
	if cat == CategoryShortLeave {
		b.ShortLeaveCount++
		return
	}
	switch cat {
	case CategoryCasual:
		b.Casual += days
	case CategorySick:
		b.Sick += days
	case CategoryHalfDay:
		b.HalfDay += days
	case CategoryDuty:
		b.Duty += days
	case CategoryVacation:
		b.Vacation += days
	default:
		return
	}
	b.TotalLeaveDays += days
}

// NoPayDays is the portion of the total beyond the free allowance.
func NoPayDays(totalLeaveDays, allowanceDays float64) float64 {
	if totalLeaveDays > allowanceDays {
		return totalLeaveDays - allowanceDays
	}
	return 0
}

// Aggregate folds approved leave records into summary buckets. Callers are
// responsible for restricting records to APPROVED status; the fold trusts its
// input. Roster members with no records still get an all-zero bucket, and for
// month grouping every month of the year is seeded. Accumulation stays
// unrounded; rounding happens only in the formatter.
func Aggregate(cfg Config, roster []employee.Employee, records []leave.Record) []Bucket {
	fold := newFold(cfg, roster)

	for _, record := range records {
		cat := Classify(record.LeaveType)
		if cat == CategoryUnknown {
			slog.Warn("leave record excluded from report: unrecognized leave type",
				"recordId", record.ID, "leaveType", record.LeaveType)
			continue
		}
		if !cfg.includes(cat) {
			continue
		}
		if bucket := fold.bucketFor(record); bucket != nil {
			bucket.add(cat, record.NumberOfDays)
		}
	}

	return fold.finish(cfg.AllowanceDays)
}

type fold struct {
	groupBy GroupBy
	buckets []*Bucket
	byID    map[string]*Bucket
}

func newFold(cfg Config, roster []employee.Employee) *fold {
	f := &fold{groupBy: cfg.GroupBy, byID: map[string]*Bucket{}}

	if cfg.GroupBy == GroupByMonth {
		for m := time.January; m <= time.December; m++ {
			f.buckets = append(f.buckets, &Bucket{Month: m})
		}
		return f
	}

	for _, e := range roster {
		b := &Bucket{EmployeeID: e.ID, Name: e.FullName(), JobTitle: e.JobTitle}
		f.buckets = append(f.buckets, b)
		f.byID[e.ID] = b
	}
	return f
}

func (f *fold) bucketFor(record leave.Record) *Bucket {
	if f.groupBy == GroupByMonth {
		month, ok := recordMonth(record)
		if !ok {
			slog.Warn("leave record excluded from report: no usable date", "recordId", record.ID)
			return nil
		}
		return f.buckets[int(month)-1]
	}

	if record.Employee == nil {
		slog.Warn("leave record excluded from report: no employee reference", "recordId", record.ID)
		return nil
	}
	if b, ok := f.byID[record.Employee.ID]; ok {
		return b
	}
	// Off-roster employees (e.g. deactivated after the period) still appear.
	b := &Bucket{
		EmployeeID: record.Employee.ID,
		Name:       record.Employee.FullName(),
		JobTitle:   record.Employee.JobTitle,
	}
	f.buckets = append(f.buckets, b)
	f.byID[record.Employee.ID] = b
	return b
}

func (f *fold) finish(allowanceDays float64) []Bucket {
	out := make([]Bucket, 0, len(f.buckets))
	for _, b := range f.buckets {
		b.NoPayDays = NoPayDays(b.TotalLeaveDays, allowanceDays)
		out = append(out, *b)
	}
	return out
}

func recordMonth(record leave.Record) (time.Month, bool) {
	if record.FromDate != nil {
		return record.FromDate.Month(), true
	}
	if record.ShortLeaveDate != nil {
		return record.ShortLeaveDate.Month(), true
	}
	return 0, false
}
