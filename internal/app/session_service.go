package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/monitoreo/internal/core/rubric"
	"github.com/example/monitoreo/internal/core/session"
	"github.com/example/monitoreo/internal/models"
	"github.com/example/monitoreo/internal/ports/primary"
	"github.com/example/monitoreo/internal/ports/secondary"
)

// SessionServiceImpl implements the SessionService interface. The draft
// lives under the session cache key between CLI invocations; the state
// machine itself is pure (core/session).
type SessionServiceImpl struct {
	queue   secondary.QueueStore
	cache   secondary.CacheStore
	gateway secondary.RecordGateway
	network secondary.Reachability
	now     func() time.Time
}

// NewSessionService creates a new SessionService with injected dependencies.
func NewSessionService(
	queue secondary.QueueStore,
	cache secondary.CacheStore,
	gateway secondary.RecordGateway,
	network secondary.Reachability,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		queue:   queue,
		cache:   cache,
		gateway: gateway,
		network: network,
		now:     time.Now,
	}
}

// StartTeacher opens a teacher observation session.
func (s *SessionServiceImpl) StartTeacher(ctx context.Context, req primary.StartTeacherRequest) (*session.Session, error) {
	if err := s.ensureIdle(ctx); err != nil {
		return nil, err
	}
	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}

	school, err := findSchoolInCache(ctx, s.cache, req.SchoolCode)
	if err != nil {
		return nil, err
	}

	sess := session.Start(rubric.KindTeacher, s.now())
	sess.School = school
	sess.Teacher = s.resolveTeacher(ctx, req.SchoolCode, req.TeacherDNI)
	sess.Especialista = user
	sess.Course = req.Course
	sess.Grade = req.Grade
	sess.Area = req.Area

	if err := s.storeSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// StartDirector opens a director observation session, linked to the most
// recent recorded visit. Without a visit there is nothing to link against
// and the start is rejected.
func (s *SessionServiceImpl) StartDirector(ctx context.Context, req primary.StartDirectorRequest) (*session.Session, error) {
	if err := s.ensureIdle(ctx); err != nil {
		return nil, err
	}
	user, err := loadUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}

	visit, err := s.lastVisit(ctx)
	if err != nil {
		return nil, err
	}

	sess := session.Start(rubric.KindDirector, s.now())
	sess.School = &visit.School
	sess.VisitID = visit.ID
	if sess.VisitID == "" {
		sess.VisitID = visit.ClientID
	}
	sess.Directivo = s.resolveDirector(ctx, visit.School.Code, req.DirectorDNI)
	sess.Especialista = user

	if err := s.storeSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Current returns the in-progress session, or nil when idle.
func (s *SessionServiceImpl) Current(ctx context.Context) (*session.Session, error) {
	raw, err := s.cache.Get(ctx, secondary.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var sess session.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("stored session is corrupt: %w", err)
	}
	return &sess, nil
}

// Answer records one aspect's score and evidence on the draft.
func (s *SessionServiceImpl) Answer(ctx context.Context, req primary.AnswerRequest) (*session.Session, error) {
	sess, err := s.requireCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if err := sess.Answer(req.Code, req.Points, req.Cumple, req.Evidencia); err != nil {
		return nil, err
	}
	if err := s.storeSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Save validates the draft and durably enqueues the observation. A
// rejected validation leaves the draft untouched; a storage failure on
// the enqueue leaves both the queue and the draft as they were.
func (s *SessionServiceImpl) Save(ctx context.Context) (*primary.SaveResponse, error) {
	sess, err := s.requireCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if err := sess.BeginSave(); err != nil {
		return nil, err
	}

	monitor := s.buildMonitor(sess)
	raw, err := json.Marshal(monitor)
	if err != nil {
		return nil, fmt.Errorf("failed to encode monitor: %w", err)
	}
	if err := s.queue.Enqueue(ctx, secondary.CategoryMonitors, raw); err != nil {
		return nil, fmt.Errorf("failed to save monitor locally: %w", err)
	}

	if err := sess.MarkPersisted(); err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, secondary.KeySession); err != nil {
		return nil, fmt.Errorf("failed to clear session: %w", err)
	}

	pending, err := s.queue.List(ctx, secondary.CategoryMonitors)
	if err != nil {
		return nil, err
	}
	return &primary.SaveResponse{ClientID: monitor.ClientID, Pending: len(pending)}, nil
}

// Cancel discards the draft with no storage side effects beyond removing it.
func (s *SessionServiceImpl) Cancel(ctx context.Context) error {
	sess, err := s.requireCurrent(ctx)
	if err != nil {
		return err
	}
	if err := sess.Cancel(); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, secondary.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SessionServiceImpl) ensureIdle(ctx context.Context) error {
	current, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if current != nil {
		return fmt.Errorf("ya existe un registro en curso; guárdelo o cancélelo primero")
	}
	return nil
}

func (s *SessionServiceImpl) requireCurrent(ctx context.Context) (*session.Session, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("no hay un registro en curso")
	}
	return sess, nil
}

func (s *SessionServiceImpl) storeSession(ctx context.Context, sess *session.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.cache.Set(ctx, secondary.KeySession, raw); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// resolveTeacher looks the teacher up on the backend when connected, and
// degrades to a DNI-only record offline.
func (s *SessionServiceImpl) resolveTeacher(ctx context.Context, schoolCode, dni string) *models.Teacher {
	if s.network.IsConnected(ctx) {
		if teachers, err := s.gateway.ListTeachers(ctx, schoolCode); err == nil {
			for i := range teachers {
				if teachers[i].DNI == dni {
					return &teachers[i]
				}
			}
		}
	}
	return &models.Teacher{DNI: dni, SchoolCode: schoolCode}
}

func (s *SessionServiceImpl) resolveDirector(ctx context.Context, schoolCode, dni string) *models.Director {
	if s.network.IsConnected(ctx) {
		if directors, err := s.gateway.ListDirectors(ctx, schoolCode); err == nil {
			for i := range directors {
				if directors[i].DNI == dni {
					return &directors[i]
				}
			}
		}
	}
	return &models.Director{DNI: dni, SchoolCode: schoolCode}
}

func (s *SessionServiceImpl) lastVisit(ctx context.Context) (*models.Visit, error) {
	raw, err := s.cache.Get(ctx, secondary.KeyLastVisit)
	if err != nil {
		return nil, fmt.Errorf("failed to read last visit: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("no hay registro de ninguna visita")
	}
	var visit models.Visit
	if err := json.Unmarshal(raw, &visit); err != nil {
		return nil, fmt.Errorf("stored visit is corrupt: %w", err)
	}
	return &visit, nil
}

func (s *SessionServiceImpl) buildMonitor(sess *session.Session) *models.Monitor {
	m := &models.Monitor{
		ClientID:     uuid.NewString(),
		Performances: sess.Performances,
		User:         sess.Especialista,
		StartAt:      sess.StartAt,
		VisitID:      sess.VisitID,
		Type:         string(sess.Kind),
		Area:         sess.Area,
		Course:       sess.Course,
		Grade:        sess.Grade,
		CreatedAt:    s.now(),
	}
	if sess.School != nil {
		m.School = *sess.School
	}
	if sess.Especialista != nil {
		m.OperatorID = sess.Especialista.ID
	}
	if sess.Kind == rubric.KindDirector {
		m.Directivo = sess.Directivo
	} else {
		m.Teacher = sess.Teacher
	}
	return m
}

var _ primary.SessionService = (*SessionServiceImpl)(nil)
