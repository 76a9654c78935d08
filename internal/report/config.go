package report

// FreeLeaveAllowanceDays is the number of approved leave days per period that
// carry no pay deduction.
const FreeLeaveAllowanceDays = 2

type GroupBy int

const (
	GroupByEmployee GroupBy = iota
	GroupByMonth
)

// Config parameterizes one report generation. Include limits the categories
// that contribute to buckets; a nil map includes every known category.
type Config struct {
	GroupBy       GroupBy
	Include       map[Category]bool
	AllowanceDays float64
	Year          int
}

func DefaultConfig(groupBy GroupBy) Config {
	return Config{
		GroupBy:       groupBy,
		AllowanceDays: FreeLeaveAllowanceDays,
	}
}

// AcademicSupportConfig is the report variant that leaves duty and vacation
// leave out of the summary.
func AcademicSupportConfig(groupBy GroupBy) Config {
	cfg := DefaultConfig(groupBy)
	cfg.Include = map[Category]bool{
		CategoryCasual:     true,
		CategorySick:       true,
		CategoryHalfDay:    true,
		CategoryShortLeave: true,
	}
	return cfg
}

func (c Config) includes(cat Category) bool {
	if c.Include == nil {
		return true
	}
	return c.Include[cat]
}
