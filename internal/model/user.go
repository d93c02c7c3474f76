package model

import "hrdesk/internal/core"

type DashboardUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         core.Role `json:"role"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
}

type AdminDetails struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
}
