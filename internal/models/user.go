// Package models contains domain types for monitoreo entities.
// Persistence and transport live behind the interfaces in ports/secondary.
package models

// User represents an application user (especialista or admin).
type User struct {
	ID            string `json:"_id,omitempty"`
	Username      string `json:"username" validate:"required"`
	Fullname      string `json:"fullname" validate:"required"`
	DNI           string `json:"dni,omitempty"`
	EmailPersonal string `json:"email_personal,omitempty" validate:"omitempty,email"`
	EmailIE       string `json:"email_ie,omitempty" validate:"omitempty,email"`
	Celular       string `json:"celular,omitempty"`
	Job           string `json:"job,omitempty"`
	Photo         string `json:"photo,omitempty"`
}

// AdminUsername is the username granted destructive operations
// (remote deletion, user management, school creation).
const AdminUsername = "admin"

// IsAdmin reports whether the user may perform admin-only operations.
func (u *User) IsAdmin() bool {
	return u != nil && u.Username == AdminUsername
}
