package models

// School represents an educational institution (IE) in the directory.
type School struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required"`
	District string `json:"district" validate:"required"`
	Place    string `json:"place,omitempty"`
}

// Teacher represents a teacher attached to a school.
type Teacher struct {
	ID         string `json:"_id,omitempty"`
	Fullname   string `json:"fullname" validate:"required"`
	DNI        string `json:"dni" validate:"required"`
	SchoolCode string `json:"school_code,omitempty"`
	Area       string `json:"area,omitempty"`
}

// Director represents a school administrator (directivo).
type Director struct {
	ID         string `json:"_id,omitempty"`
	Fullname   string `json:"fullname" validate:"required"`
	DNI        string `json:"dni" validate:"required"`
	SchoolCode string `json:"school_code,omitempty"`
	Position   string `json:"position,omitempty"`
}
