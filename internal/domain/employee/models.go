package employee

import "time"

const (
	CategoryAcademic        = "ACADEMIC"
	CategoryAcademicSupport = "ACADEMIC_SUPPORT"
	CategoryNonAcademic     = "NON_ACADEMIC"
)

type Employee struct {
	ID                 string    `json:"id"`
	EmployeeNo         string    `json:"employeeNo"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	Faculty            string    `json:"faculty"`
	Department         string    `json:"department"`
	StaffCategory      string    `json:"staffCategory"`
	TypeOfRegistration string    `json:"typeOfRegistration"`
	JobTitle           string    `json:"jobTitle"`
	Role               string    `json:"role"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
