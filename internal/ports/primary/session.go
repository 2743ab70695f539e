package primary

import (
	"context"

	"github.com/example/monitoreo/internal/core/session"
)

// SessionService drives the recording session: the multi-step draft of a
// teacher or director observation. Exactly one session may be in progress;
// the draft survives between CLI invocations until saved or cancelled.
type SessionService interface {
	// StartTeacher opens a teacher observation session. Fails if another
	// session is already in progress.
	StartTeacher(ctx context.Context, req StartTeacherRequest) (*session.Session, error)

	// StartDirector opens a director observation session. Requires a
	// previously recorded visit to link against.
	StartDirector(ctx context.Context, req StartDirectorRequest) (*session.Session, error)

	// Current returns the in-progress session, or nil when idle.
	Current(ctx context.Context) (*session.Session, error)

	// Answer records one aspect's score and evidence on the draft.
	Answer(ctx context.Context, req AnswerRequest) (*session.Session, error)

	// Save validates the draft and durably enqueues the observation.
	// An unanswered aspect rejects the save with nothing cleared.
	Save(ctx context.Context) (*SaveResponse, error)

	// Cancel discards the draft. The CLI confirms with the user first.
	Cancel(ctx context.Context) error
}

// StartTeacherRequest selects the observed teacher and class context.
type StartTeacherRequest struct {
	SchoolCode string
	TeacherDNI string
	Course     string
	Grade      string
	Area       string
}

// StartDirectorRequest selects the observed director. The school comes
// from the last recorded visit.
type StartDirectorRequest struct {
	DirectorDNI string
}

// AnswerRequest scores one aspect, keyed by its rubric code. Points is
// used by the teacher rubric, Cumple by the director rubric.
type AnswerRequest struct {
	Code      string
	Points    int
	Cumple    *bool
	Evidencia string
}

// SaveResponse reports where the observation went.
type SaveResponse struct {
	ClientID string
	Pending  int // pending monitors after the enqueue
}
