package models

import "time"

// ReportFilter narrows the aggregate report queries.
type ReportFilter struct {
	District  string    `json:"district,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	School    string    `json:"ie,omitempty"`
	Teacher   string    `json:"teacher,omitempty"`
	Type      string    `json:"type"`
	UserID    string    `json:"id,omitempty"`
}

// ReportRow aggregates one rubric code's answer distribution: level
// ("1".."4") to count for teacher reports, "true"/"false" for directors.
type ReportRow struct {
	Code   string         `json:"code"`
	Levels map[string]int `json:"levels"`
}
