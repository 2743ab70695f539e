package session

import (
	"testing"
	"time"

	"github.com/example/monitoreo/internal/core/rubric"
)

var startAt = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func answeredSession(kind rubric.Kind) *Session {
	s := Start(kind, startAt)
	yes := true
	for i := range s.Performances {
		for j := range s.Performances[i].Aspectos {
			a := &s.Performances[i].Aspectos[j]
			if kind == rubric.KindDirector {
				a.Cumple = &yes
			} else {
				a.Points = 2
			}
		}
	}
	return s
}

func TestStart(t *testing.T) {
	s := Start(rubric.KindTeacher, startAt)
	if s.State != StateInProgress {
		t.Errorf("State = %s, want %s", s.State, StateInProgress)
	}
	if !s.StartAt.Equal(startAt) {
		t.Errorf("StartAt = %v, want %v", s.StartAt, startAt)
	}
	if answered, _ := s.Answered(); answered != 0 {
		t.Errorf("fresh session has %d answered aspects", answered)
	}
}

func TestAnswer(t *testing.T) {
	s := Start(rubric.KindTeacher, startAt)

	if err := s.Answer("A", 3, nil, "participación activa"); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	answered, total := s.Answered()
	if answered != 1 || total != 18 {
		t.Errorf("Answered() = (%d, %d), want (1, 18)", answered, total)
	}

	if err := s.Answer("ZZ", 3, nil, ""); err == nil {
		t.Error("expected error for an unknown aspect code")
	}
}

func TestAnswerRejectsInvalidScores(t *testing.T) {
	t.Run("teacher points outside 1-4", func(t *testing.T) {
		s := Start(rubric.KindTeacher, startAt)
		for _, points := range []int{0, 5, 7, -1} {
			if err := s.Answer("A", points, nil, "ev"); err == nil {
				t.Errorf("Answer() with points %d succeeded", points)
			}
		}
		if answered, _ := s.Answered(); answered != 0 {
			t.Errorf("rejected answers still recorded: %d", answered)
		}
	})

	t.Run("director without cumple", func(t *testing.T) {
		s := Start(rubric.KindDirector, startAt)
		if err := s.Answer("01", 0, nil, "ev"); err == nil {
			t.Error("Answer() without cumple succeeded")
		}
		if answered, _ := s.Answered(); answered != 0 {
			t.Errorf("rejected answer still recorded: %d", answered)
		}
	})
}

func TestBeginSave(t *testing.T) {
	t.Run("incomplete rubric is rejected and answers survive", func(t *testing.T) {
		s := Start(rubric.KindTeacher, startAt)
		if err := s.Answer("A", 4, nil, "ev"); err != nil {
			t.Fatal(err)
		}

		if err := s.BeginSave(); err == nil {
			t.Fatal("expected rejection for an incomplete rubric")
		}
		if s.State != StateInProgress {
			t.Errorf("State = %s, want %s after rejection", s.State, StateInProgress)
		}
		if answered, _ := s.Answered(); answered != 1 {
			t.Errorf("answers cleared by a rejected save: %d left", answered)
		}
	})

	t.Run("complete rubric validates and persists", func(t *testing.T) {
		s := answeredSession(rubric.KindDirector)
		if err := s.BeginSave(); err != nil {
			t.Fatalf("BeginSave() error = %v", err)
		}
		if s.State != StateValidating {
			t.Errorf("State = %s, want %s", s.State, StateValidating)
		}
		if err := s.MarkPersisted(); err != nil {
			t.Fatalf("MarkPersisted() error = %v", err)
		}
		if s.State != StatePersisted {
			t.Errorf("State = %s, want %s", s.State, StatePersisted)
		}
	})
}

func TestMarkPersistedRequiresValidation(t *testing.T) {
	s := answeredSession(rubric.KindTeacher)
	if err := s.MarkPersisted(); err == nil {
		t.Error("expected error persisting without validation")
	}
}

func TestCancel(t *testing.T) {
	s := Start(rubric.KindTeacher, startAt)
	if err := s.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if s.State != StateIdle {
		t.Errorf("State = %s, want %s", s.State, StateIdle)
	}

	if err := s.Answer("A", 1, nil, ""); err == nil {
		t.Error("expected error answering a cancelled session")
	}
	if err := s.Cancel(); err == nil {
		t.Error("expected error cancelling twice")
	}
}
