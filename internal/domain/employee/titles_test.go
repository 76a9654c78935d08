package employee

import "testing"

func TestDeriveJobTitle(t *testing.T) {
	cases := []struct {
		faculty      string
		category     string
		registration string
		want         string
	}{
		{"Science", "ACADEMIC", "PERMANENT", "Senior Lecturer, Faculty of Science"},
		{"Science", "academic", "permanent", "Senior Lecturer, Faculty of Science"},
		{"", "ACADEMIC", "TEMPORARY", "Temporary Lecturer"},
		{"Arts", "ACADEMIC", "VISITING", "Visiting Lecturer, Faculty of Arts"},
		{"Arts", "ACADEMIC", "UNLISTED", "Lecturer, Faculty of Arts"},
		{"Science", "ACADEMIC_SUPPORT", "PERMANENT", "Instructor"},
		{"Science", "ACADEMIC_SUPPORT", "", "Academic Support Officer"},
		{"", "NON_ACADEMIC", "PERMANENT", "Management Assistant"},
		{"", "NON_ACADEMIC", "CONTRACT", "Contract Officer"},
		{"", "NON_ACADEMIC", "CASUAL", "Non Academic Staff"},
		{"", "", "", "Staff Member"},
		{"", "LIBRARY", "", "Library"},
	}

	for _, tc := range cases {
		got := DeriveJobTitle(tc.faculty, tc.category, tc.registration)
		if got != tc.want {
			t.Errorf("DeriveJobTitle(%q,%q,%q) = %q, want %q", tc.faculty, tc.category, tc.registration, got, tc.want)
		}
	}
}

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "Nimal", LastName: "Perera"}
	if e.FullName() != "Nimal Perera" {
		t.Fatalf("unexpected full name %q", e.FullName())
	}
	if (Employee{LastName: "Perera"}).FullName() != "Perera" {
		t.Fatal("expected bare last name")
	}
}
