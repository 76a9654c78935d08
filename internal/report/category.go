package report

import "strings"

// Category is the fixed classification a free-text leave-type label maps to.
type Category string

const (
	CategoryCasual     Category = "CASUAL"
	CategorySick       Category = "SICK"
	CategoryHalfDay    Category = "HALF_DAY"
	CategoryShortLeave Category = "SHORT_LEAVE"
	CategoryDuty       Category = "DUTY"
	CategoryVacation   Category = "VACATION"
	CategoryUnknown    Category = "UNKNOWN"
)

// Leave-type labels are free text end to end, so classification is a
// case-insensitive substring match. Order matters: "short" and "half" are
// tested before the generic labels so "Short Leave" never falls through to a
// broader match.
var classifications = []struct {
	keyword  string
	category Category
}{
	{"short", CategoryShortLeave},
	{"half", CategoryHalfDay},
	{"casual", CategoryCasual},
	{"sick", CategorySick},
	{"medical", CategorySick},
	{"duty", CategoryDuty},
	{"vacation", CategoryVacation},
}

// Classify maps a leave-type label to its category. Unrecognized or blank
// labels classify as CategoryUnknown.
func Classify(label string) Category {
	folded := strings.ToLower(strings.TrimSpace(label))
	if folded == "" {
		return CategoryUnknown
	}
	for _, c := range classifications {
		if strings.Contains(folded, c.keyword) {
			return c.category
		}
	}
	return CategoryUnknown
}
