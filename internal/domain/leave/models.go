package leave

import (
	"time"

	"ulms/internal/domain/employee"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type LeaveType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	IntraDay  bool      `json:"intraDay"`
	CreatedAt time.Time `json:"createdAt"`
}

// Record is one leave application. Regular leave carries FromDate/ToDate;
// short and half-day leave carry ShortLeaveDate plus a time window. Exactly
// one of the two shapes is populated, determined by the leave type.
type Record struct {
	ID                 string             `json:"id"`
	Employee           *employee.Employee `json:"user,omitempty"`
	LeaveType          string             `json:"leaveType"`
	Status             string             `json:"status"`
	FromDate           *time.Time         `json:"fromDate,omitempty"`
	ToDate             *time.Time         `json:"toDate,omitempty"`
	ShortLeaveDate     *time.Time         `json:"shortLeaveDate,omitempty"`
	ShortLeaveStart    string             `json:"shortLeaveStartTime,omitempty"`
	ShortLeaveEnd      string             `json:"shortLeaveEndTime,omitempty"`
	NumberOfDays       float64            `json:"numberOfDays"`
	Purpose            string             `json:"purpose,omitempty"`
	RejectionReason    string             `json:"rejectionReason,omitempty"`
	ActingOfficer      string             `json:"actingOfficer,omitempty"`
	ContactDuringLeave string             `json:"contactDuringLeave,omitempty"`
	DecidedBy          string             `json:"decidedBy,omitempty"`
	DecidedAt          *time.Time         `json:"decidedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

type SubmitInput struct {
	LeaveType          string     `json:"leaveType"`
	FromDate           *time.Time `json:"fromDate,omitempty"`
	ToDate             *time.Time `json:"toDate,omitempty"`
	ShortLeaveDate     *time.Time `json:"shortLeaveDate,omitempty"`
	ShortLeaveStart    string     `json:"shortLeaveStartTime,omitempty"`
	ShortLeaveEnd      string     `json:"shortLeaveEndTime,omitempty"`
	Purpose            string     `json:"purpose"`
	ActingOfficer      string     `json:"actingOfficer,omitempty"`
	ContactDuringLeave string     `json:"contactDuringLeave,omitempty"`
}
