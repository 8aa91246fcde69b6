// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SocialLinks groups the public profile URLs shown alongside the owner's
// contact details.
type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// PersonalInfo is the site owner's profile. The backing table holds exactly
// one row, created at first startup; Save replaces it wholesale and nothing
// ever deletes it. The CV file reference lives in the same row but is
// managed separately through the upload flow.
type PersonalInfo struct {
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Location     string      `json:"location"`
	Bio          string      `json:"bio"`
	SocialLinks  SocialLinks `json:"social_links"`
	ProfileImage string      `json:"profile_image"`
}
