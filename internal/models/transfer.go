// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Document is the portable interchange format for the whole portfolio: the
// owner profile, the CV reference, and every entity collection. Admin
// accounts and analytics counters are deliberately not part of it, so a
// backup can be restored on a fresh install without carrying credentials
// or traffic history.
type Document struct {
	PersonalInfo   *PersonalInfo    `json:"personal_info"`
	CVFile         *string          `json:"cv_file"`
	Academic       []AcademicEntry  `json:"academic"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Projects       []Project        `json:"projects"`
	Skills         []Skill          `json:"skills"`
	Certifications []Certification  `json:"certifications"`
	Messages       []Message        `json:"messages"`
	Articles       []Article        `json:"articles"`
	Testimonials   []Testimonial    `json:"testimonials"`
}
