package models

import "time"

// Monitor type constants, matching the backend's discriminator values.
const (
	MonitorTypeTeacher  = "1"
	MonitorTypeDirector = "2"
)

// Aspect is a single scorable rubric item. Teacher rubric aspects are
// scored on Points (0 = unanswered, 1-4 = level); director rubric aspects
// use Cumple (nil = unanswered). Code is the aspect's addressable unit and
// must never be reordered within its dimension.
type Aspect struct {
	Name      string `json:"name"`
	Evidencia string `json:"evidencia"`
	Points    int    `json:"points,omitempty"`
	Cumple    *bool  `json:"cumple,omitempty"`
	Code      string `json:"code"`
}

// Performance is a rubric dimension (desempeño) grouping related aspects.
type Performance struct {
	Desempenio string   `json:"desempenio"`
	Aspectos   []Aspect `json:"aspectos"`
}

// Monitor is a completed rubric observation of a teacher (type "1") or a
// school director (type "2"). ClientID identifies the record before the
// backend assigns an ID. Field names follow the backend's wire format.
type Monitor struct {
	ID           string        `json:"_id,omitempty"`
	ClientID     string        `json:"clientId,omitempty"`
	Performances []Performance `json:"performances"`
	School       School        `json:"school"`
	User         *User         `json:"user,omitempty"`
	OperatorID   string        `json:"operator,omitempty"`
	Teacher      *Teacher      `json:"teacher,omitempty"`
	Directivo    *Director     `json:"directivo,omitempty"`
	StartAt      time.Time     `json:"startAt"`
	VisitID      string        `json:"visit,omitempty"`
	Type         string        `json:"type"`
	Area         string        `json:"area,omitempty"`
	Course       string        `json:"course,omitempty"`
	Grade        string        `json:"grade,omitempty"`
	CreatedAt    time.Time     `json:"createdAt,omitempty"`
}

// SubjectName returns the observed person's name for display, regardless
// of the rubric variant.
func (m *Monitor) SubjectName() string {
	if m.Type == MonitorTypeDirector {
		if m.Directivo != nil {
			return m.Directivo.Fullname
		}
		return ""
	}
	if m.Teacher != nil {
		return m.Teacher.Fullname
	}
	return ""
}
