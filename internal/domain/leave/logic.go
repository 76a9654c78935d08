package leave

import (
	"errors"
	"strings"
	"time"
)

type Kind int

const (
	KindRegular Kind = iota
	KindHalfDay
	KindShortLeave
)

const workdayHours = 8

// KindOf determines the date shape a leave-type label requires. Labels are
// free text, so the check is a case-insensitive substring match.
func KindOf(leaveType string) Kind {
	label := strings.ToLower(leaveType)
	switch {
	case strings.Contains(label, "short"):
		return KindShortLeave
	case strings.Contains(label, "half"):
		return KindHalfDay
	default:
		return KindRegular
	}
}

// CalculateDays returns the inclusive day count between start and end.
func CalculateDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// ShortLeaveDays converts an intra-day HH:MM window into a day fraction of an
// eight-hour workday.
func ShortLeaveDays(startTime, endTime string) (float64, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0, errors.New("invalid start time")
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0, errors.New("invalid end time")
	}
	if !end.After(start) {
		return 0, errors.New("end time not after start time")
	}
	return end.Sub(start).Hours() / workdayHours, nil
}

// DaysFor computes NumberOfDays for a submission and validates that exactly
// the date fields its leave type requires are present.
func DaysFor(in SubmitInput) (float64, error) {
	switch KindOf(in.LeaveType) {
	case KindShortLeave:
		if in.ShortLeaveDate == nil || in.ShortLeaveStart == "" || in.ShortLeaveEnd == "" {
			return 0, errors.New("short leave requires a date and a time window")
		}
		if in.FromDate != nil || in.ToDate != nil {
			return 0, errors.New("short leave must not carry a date range")
		}
		return ShortLeaveDays(in.ShortLeaveStart, in.ShortLeaveEnd)
	case KindHalfDay:
		if in.ShortLeaveDate == nil {
			return 0, errors.New("half day leave requires a date")
		}
		if in.FromDate != nil || in.ToDate != nil {
			return 0, errors.New("half day leave must not carry a date range")
		}
		return 0.5, nil
	default:
		if in.FromDate == nil || in.ToDate == nil {
			return 0, errors.New("leave requires a from and to date")
		}
		if in.ShortLeaveDate != nil {
			return 0, errors.New("regular leave must not carry a short leave date")
		}
		return CalculateDays(*in.FromDate, *in.ToDate)
	}
}
