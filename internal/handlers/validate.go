package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"folio/internal/models"
)

// Validation limits for portfolio and contact form fields.
const (
	maxNameLen     = 200
	maxTitleLen    = 300
	maxSubjectLen  = 300
	maxMessageLen  = 10_000
	minUsernameLen = 3
	minPasswordLen = 6
)

// emailPattern is a shape check, not an RFC 5322 parser: one @, no
// whitespace, at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateContactMessage checks a contact form submission and returns the
// first error found.
func validateContactMessage(name, email, subject, message string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if strings.TrimSpace(email) == "" {
		return "Email is required."
	}
	if !emailPattern.MatchString(email) {
		return "Email address is not valid."
	}
	if strings.TrimSpace(subject) == "" {
		return "Subject is required."
	}
	if utf8.RuneCountInString(subject) > maxSubjectLen {
		return "Subject is too long (max 300 characters)."
	}
	if strings.TrimSpace(message) == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}

// validateCredentials checks a username/password change.
func validateCredentials(username, password string) string {
	if utf8.RuneCountInString(strings.TrimSpace(username)) < minUsernameLen {
		return "Username must be at least 3 characters."
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "Password must be at least 6 characters."
	}
	return ""
}

// validatePersonal checks the owner profile before it replaces the stored row.
func validatePersonal(p *models.PersonalInfo) string {
	if strings.TrimSpace(p.Name) == "" {
		return "Name is required."
	}
	if p.Email != "" && !emailPattern.MatchString(p.Email) {
		return "Email address is not valid."
	}
	return ""
}

// validateAcademic checks an education entry.
func validateAcademic(a *models.AcademicEntry) string {
	if strings.TrimSpace(a.Degree) == "" {
		return "Degree is required."
	}
	if strings.TrimSpace(a.Institution) == "" {
		return "Institution is required."
	}
	return ""
}

// validateExperience checks a work experience entry.
func validateExperience(e *models.WorkExperience) string {
	if strings.TrimSpace(e.JobTitle) == "" {
		return "Job title is required."
	}
	if strings.TrimSpace(e.Company) == "" {
		return "Company is required."
	}
	return ""
}

// validateProject checks a project entry.
func validateProject(p *models.Project) string {
	if strings.TrimSpace(p.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(p.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	return ""
}

// validateSkill checks a skill entry. Level is a 0-100 proficiency value.
func validateSkill(s *models.Skill) string {
	if strings.TrimSpace(s.Name) == "" {
		return "Name is required."
	}
	if s.Level < 0 || s.Level > 100 {
		return "Level must be between 0 and 100."
	}
	return ""
}

// validateCertification checks a certification entry.
func validateCertification(c *models.Certification) string {
	if strings.TrimSpace(c.Name) == "" {
		return "Name is required."
	}
	return ""
}

// validateTestimonial checks a testimonial entry. Rating is a 1-5 score.
func validateTestimonial(t *models.Testimonial) string {
	if strings.TrimSpace(t.Name) == "" {
		return "Name is required."
	}
	if strings.TrimSpace(t.Content) == "" {
		return "Content is required."
	}
	if t.Rating < 1 || t.Rating > 5 {
		return "Rating must be between 1 and 5."
	}
	return ""
}

// validateArticle checks an article before create or update.
func validateArticle(a *models.Article) string {
	if strings.TrimSpace(a.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(a.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	return ""
}
