// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// Certification is a professional certification or award. ExpiryDate is
// empty for credentials that do not expire.
type Certification struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer"`
	Date          string    `json:"date"`
	CredentialID  string    `json:"credential_id"`
	CredentialURL string    `json:"credential_url"`
	ExpiryDate    string    `json:"expiry_date"`
	Description   string    `json:"description"`
}
