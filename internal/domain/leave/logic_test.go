package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCalculateDays(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day, got %v", days)
	}

	end = time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	days, err = CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 days, got %v", days)
	}
}

func TestCalculateDaysInvalid(t *testing.T) {
	start := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)

	_, err := CalculateDays(start, end)
	if err == nil {
		t.Fatal("expected error for invalid range")
	}
}

func TestShortLeaveDays(t *testing.T) {
	days, err := ShortLeaveDays("09:00", "11:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 0.25 {
		t.Fatalf("expected 0.25 days for two hours, got %v", days)
	}

	if _, err := ShortLeaveDays("11:00", "09:00"); err == nil {
		t.Fatal("expected error for inverted window")
	}
	if _, err := ShortLeaveDays("nine", "11:00"); err == nil {
		t.Fatal("expected error for malformed time")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf("Short Leave") != KindShortLeave {
		t.Fatal("short leave misclassified")
	}
	if KindOf("HALF DAY") != KindHalfDay {
		t.Fatal("half day misclassified")
	}
	if KindOf("Casual Leave") != KindRegular {
		t.Fatal("casual leave misclassified")
	}
}

func TestDaysFor(t *testing.T) {
	days, err := DaysFor(SubmitInput{
		LeaveType: "Casual Leave",
		FromDate:  date(2025, 3, 3),
		ToDate:    date(2025, 3, 5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 days, got %v", days)
	}

	days, err = DaysFor(SubmitInput{
		LeaveType:      "Half Day",
		ShortLeaveDate: date(2025, 3, 3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 0.5 {
		t.Fatalf("expected 0.5 days, got %v", days)
	}

	days, err = DaysFor(SubmitInput{
		LeaveType:       "Short Leave",
		ShortLeaveDate:  date(2025, 3, 3),
		ShortLeaveStart: "14:00",
		ShortLeaveEnd:   "16:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 0.25 {
		t.Fatalf("expected 0.25 days, got %v", days)
	}
}

func TestDaysForShapeViolations(t *testing.T) {
	if _, err := DaysFor(SubmitInput{LeaveType: "Casual Leave", FromDate: date(2025, 3, 3)}); err == nil {
		t.Fatal("expected error for missing to date")
	}
	if _, err := DaysFor(SubmitInput{
		LeaveType:      "Casual Leave",
		FromDate:       date(2025, 3, 3),
		ToDate:         date(2025, 3, 4),
		ShortLeaveDate: date(2025, 3, 3),
	}); err == nil {
		t.Fatal("expected error for mixed date shapes")
	}
	if _, err := DaysFor(SubmitInput{LeaveType: "Short Leave", ShortLeaveDate: date(2025, 3, 3)}); err == nil {
		t.Fatal("expected error for missing time window")
	}
}
