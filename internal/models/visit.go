package models

import "time"

// Visit records a supervisor physically visiting a school, independent of
// whether an observation was performed. ClientID identifies queued visits
// before the backend assigns an ID.
type Visit struct {
	ID        string    `json:"_id,omitempty"`
	ClientID  string    `json:"clientId,omitempty"`
	User      User      `json:"user"`
	School    School    `json:"school"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Quantity holds the remote-confirmed record counts for the dashboard.
// It is derived state, never persisted.
type Quantity struct {
	Visits   int `json:"visits"`
	Monitors int `json:"monitors"`
}
