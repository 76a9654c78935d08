package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := map[string]Category{
		"Casual Leave":   CategoryCasual,
		"casual":         CategoryCasual,
		"CASUAL LEAVE":   CategoryCasual,
		"Sick Leave":     CategorySick,
		"Medical Leave":  CategorySick,
		"Half Day":       CategoryHalfDay,
		"Half Day Leave": CategoryHalfDay,
		"Short Leave":    CategoryShortLeave,
		"short":          CategoryShortLeave,
		"Duty Leave":     CategoryDuty,
		"Vacation Leave": CategoryVacation,
		"Study Leave":    CategoryUnknown,
		"":               CategoryUnknown,
		"   ":            CategoryUnknown,
	}

	for label, want := range cases {
		assert.Equal(t, want, Classify(label), "label %q", label)
	}
}

func TestClassifyCaseIdempotence(t *testing.T) {
	labels := []string{
		"Casual Leave", "Sick", "Half Day", "Short Leave",
		"Duty", "Vacation", "Something Else",
	}
	for _, label := range labels {
		base := Classify(label)
		assert.Equal(t, base, Classify(strings.ToUpper(label)), "upper %q", label)
		assert.Equal(t, base, Classify(strings.ToLower(label)), "lower %q", label)
	}
}

func TestClassifyShortBeforeGeneric(t *testing.T) {
	// "Short Leave" contains "leave" like every other label; the short
	// keyword must win.
	assert.Equal(t, CategoryShortLeave, Classify("Short Leave"))
	assert.Equal(t, CategoryShortLeave, Classify("short casual leave"))
}
