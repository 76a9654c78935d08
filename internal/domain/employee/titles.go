package employee

import "strings"

type titleRule struct {
	category     string
	registration string
	title        string
}

// Evaluated top to bottom; the first matching rule wins. An empty
// registration matches any registration type.
var titleRules = []titleRule{
	{CategoryAcademic, "PERMANENT", "Senior Lecturer"},
	{CategoryAcademic, "PROBATIONARY", "Lecturer (Probationary)"},
	{CategoryAcademic, "TEMPORARY", "Temporary Lecturer"},
	{CategoryAcademic, "VISITING", "Visiting Lecturer"},
	{CategoryAcademic, "", "Lecturer"},
	{CategoryAcademicSupport, "PERMANENT", "Instructor"},
	{CategoryAcademicSupport, "TEMPORARY", "Temporary Instructor"},
	{CategoryAcademicSupport, "", "Academic Support Officer"},
	{CategoryNonAcademic, "PERMANENT", "Management Assistant"},
	{CategoryNonAcademic, "CONTRACT", "Contract Officer"},
	{CategoryNonAcademic, "", "Non Academic Staff"},
}

// DeriveJobTitle maps a staff category / registration type combination to the
// display job title used on dashboards and reports. Unknown combinations fall
// back to the bare category name rather than failing.
func DeriveJobTitle(faculty, category, registration string) string {
	category = strings.ToUpper(strings.TrimSpace(category))
	registration = strings.ToUpper(strings.TrimSpace(registration))

	for _, rule := range titleRules {
		if rule.category != category {
			continue
		}
		if rule.registration != "" && rule.registration != registration {
			continue
		}
		if rule.category == CategoryAcademic && faculty != "" {
			return rule.title + ", Faculty of " + faculty
		}
		return rule.title
	}

	if category == "" {
		return "Staff Member"
	}
	words := strings.Fields(strings.ToLower(strings.ReplaceAll(category, "_", " ")))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
