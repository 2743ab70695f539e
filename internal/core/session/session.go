// Package session contains the pure state machine for a recording session:
// the mutable draft of one observation from start to save or cancel.
// Persistence of the draft between CLI invocations is the app layer's job;
// this package only enforces the transitions.
package session

import (
	"fmt"
	"time"

	"github.com/example/monitoreo/internal/core/rubric"
	"github.com/example/monitoreo/internal/models"
)

// State of a recording session.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateValidating State = "validating"
	StatePersisted  State = "persisted"
)

// Session is the draft of one observation in progress. At most one session
// may be in progress at a time; Kind marks which rubric owns it.
type Session struct {
	State        State                `json:"state"`
	Kind         rubric.Kind          `json:"kind"`
	Performances []models.Performance `json:"performances"`
	School       *models.School       `json:"school,omitempty"`
	Teacher      *models.Teacher      `json:"teacher,omitempty"`
	Directivo    *models.Director     `json:"directivo,omitempty"`
	Especialista *models.User         `json:"especialista,omitempty"`
	Course       string               `json:"course,omitempty"`
	Grade        string               `json:"grade,omitempty"`
	Area         string               `json:"area,omitempty"`
	VisitID      string               `json:"visit,omitempty"`
	StartAt      time.Time            `json:"startAt"`
}

// Start opens a new session against a fresh deep copy of the rubric
// template, so edits never reach the template itself.
func Start(kind rubric.Kind, startAt time.Time) *Session {
	return &Session{
		State:        StateInProgress,
		Kind:         kind,
		Performances: rubric.Template(kind),
		StartAt:      startAt,
	}
}

// Answer records one aspect's score and evidence, keyed by aspect code.
func (s *Session) Answer(code string, points int, cumple *bool, evidencia string) error {
	if s.State != StateInProgress {
		return fmt.Errorf("no hay un registro en curso")
	}
	if !rubric.ValidAnswer(s.Kind, points, cumple) {
		if s.Kind == rubric.KindDirector {
			return fmt.Errorf("debe indicar cumple sí o no")
		}
		return fmt.Errorf("puntaje %d fuera de rango (1-4)", points)
	}
	if !rubric.SetAnswer(s.Kind, s.Performances, code, points, cumple, evidencia) {
		return fmt.Errorf("el aspecto %s no existe en la ficha", code)
	}
	return nil
}

// BeginSave moves the session to validating and checks completeness. On an
// unanswered aspect the session drops back to in-progress with nothing
// cleared, and the first offender (in template order) is reported.
func (s *Session) BeginSave() error {
	if s.State != StateInProgress {
		return fmt.Errorf("no hay un registro en curso")
	}
	s.State = StateValidating
	if res := rubric.Validate(s.Kind, s.Performances); !res.Complete {
		s.State = StateInProgress
		return res.Error()
	}
	return nil
}

// MarkPersisted records that the draft was durably enqueued or remotely
// saved. Only valid while validating.
func (s *Session) MarkPersisted() error {
	if s.State != StateValidating {
		return fmt.Errorf("el registro no ha sido validado")
	}
	s.State = StatePersisted
	return nil
}

// Cancel discards the draft. Only an in-progress session can be cancelled;
// the caller is responsible for user confirmation.
func (s *Session) Cancel() error {
	if s.State != StateInProgress {
		return fmt.Errorf("no hay un registro en curso")
	}
	s.State = StateIdle
	return nil
}

// Answered returns how many aspects have been answered and the rubric total.
func (s *Session) Answered() (answered, total int) {
	for _, p := range s.Performances {
		for _, a := range p.Aspectos {
			total++
			if s.Kind == rubric.KindDirector {
				if a.Cumple != nil {
					answered++
				}
			} else if a.Points > 0 {
				answered++
			}
		}
	}
	return answered, total
}
