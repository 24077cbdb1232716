package application

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sync"
	"time"

	"talentscout/internal/domain"
	"talentscout/internal/ports/input"
	"talentscout/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const lockStripes = 64

// Compile-time check to ensure InterviewService implements the input port
var _ input.InterviewService = (*InterviewService)(nil)

// InterviewConfig struct - tunables of the interview flow
type InterviewConfig struct {
	// QuestionCount is how many questions to draw; 0 means domain.DefaultQuestionCount
	QuestionCount int
	// Seed fixes the question shuffle; 0 seeds from the clock
	Seed uint64
	// AllowZeroExperience accepts 0 years of experience as filled in
	AllowZeroExperience bool
}

// InterviewService struct - Application service implementing the interview use cases
type InterviewService struct {
	sessions output.SessionStore
	records  output.CandidateRepository
	bank     domain.QuestionBank

	questionCount int
	rules         domain.ProfileRules

	rngMu sync.Mutex
	rng   *rand.Rand

	// actions on one session run one at a time
	locks [lockStripes]sync.Mutex
}

// NewInterviewService func - Creates new interview service
func NewInterviewService(sessions output.SessionStore, records output.CandidateRepository, bank domain.QuestionBank, cfg InterviewConfig) *InterviewService {
	count := cfg.QuestionCount
	if count <= 0 {
		count = domain.DefaultQuestionCount
	}
	if bank == nil {
		bank = domain.DefaultQuestionBank()
	}

	return &InterviewService{
		sessions:      sessions,
		records:       records,
		bank:          bank,
		questionCount: count,
		rules:         domain.ProfileRules{AllowZeroExperience: cfg.AllowZeroExperience},
		rng:           newRand(cfg.Seed),
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// StartSession func - Use case: open a new interview at the personal details form
func (s *InterviewService) StartSession() (*domain.SessionView, error) {
	session := domain.NewInterviewSession(uuid.NewString())
	if err := s.sessions.UpdateSession(session); err != nil {
		logrus.Errorf("Failed to store new session: %v", err)
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	logrus.Infof("Started interview session %s", session.ID)
	view := domain.NewSessionView(session)
	return &view, nil
}

// GetSession func - Use case: show the current stage
func (s *InterviewService) GetSession(sessionID string) (*domain.SessionView, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	view := domain.NewSessionView(session)
	return &view, nil
}

// SubmitDetails func - Use case: personal details form; persists the profile.
// The record is appended only after the advanced session is saved, and a failed
// append puts the previous session back, so a retry never duplicates a record.
func (s *InterviewService) SubmitDetails(request domain.DetailsRequest) (*domain.SessionView, error) {
	var accepted *domain.CandidateProfile
	return s.apply(request.SessionID, func(session *domain.InterviewSession) error {
		return session.SubmitDetails(request.Profile, s.rules, func(p domain.CandidateProfile) error {
			accepted = &p
			return nil
		})
	}, func() error {
		if accepted == nil {
			return nil
		}
		return s.records.Append(*accepted)
	})
}

// SubmitTechStack func - Use case: tech stack form; draws the questions
func (s *InterviewService) SubmitTechStack(request domain.TechStackRequest) (*domain.SessionView, error) {
	return s.apply(request.SessionID, func(session *domain.InterviewSession) error {
		return session.SubmitTechStack(request.TechStack, s.pickQuestions)
	}, nil)
}

// SubmitAnswer func - Use case: answer the current question or leave with an exit keyword
func (s *InterviewService) SubmitAnswer(request domain.AnswerRequest) (*domain.SessionView, error) {
	return s.apply(request.SessionID, func(session *domain.InterviewSession) error {
		return session.SubmitAnswer(request.Answer)
	}, nil)
}

// Reset func - Use case: start a completed interview over
func (s *InterviewService) Reset(sessionID string) (*domain.SessionView, error) {
	return s.apply(sessionID, func(session *domain.InterviewSession) error {
		return session.Reset()
	}, nil)
}

// EndSession func - Use case: drop the session altogether
func (s *InterviewService) EndSession(sessionID string) error {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.sessions.DeleteSession(sessionID); err != nil {
		logrus.Errorf("Failed to delete session %s: %v", sessionID, err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	logrus.Infof("Ended interview session %s", sessionID)
	return nil
}

// Technologies func - Use case: list the selectable technologies
func (s *InterviewService) Technologies() []domain.TechID {
	return append([]domain.TechID(nil), domain.Technologies...)
}

// apply runs one transition on a copy of the stored session and saves the copy
// only when the transition succeeds. commit, when set, runs after the save; if it
// fails the previous session is stored again. The returned view reflects
// whichever state is current afterwards, so callers can show it next to an error.
func (s *InterviewService) apply(sessionID string, transition func(*domain.InterviewSession) error, commit func() error) (*domain.SessionView, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := transition(next); err != nil {
		s.logRejected(sessionID, current.Stage, err)
		view := domain.NewSessionView(current)
		return &view, err
	}

	if err := s.sessions.UpdateSession(next); err != nil {
		logrus.Errorf("Failed to store session %s: %v", sessionID, err)
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if commit != nil {
		if err := commit(); err != nil {
			logrus.Errorf("Session %s: action failed in %s: %v", sessionID, current.Stage, err)
			if rerr := s.sessions.UpdateSession(current); rerr != nil {
				logrus.Errorf("Failed to restore session %s: %v", sessionID, rerr)
				return nil, errors.Join(err, fmt.Errorf("failed to restore session: %w", rerr))
			}
			view := domain.NewSessionView(current)
			return &view, err
		}
	}

	if next.Stage != current.Stage {
		logrus.Infof("Session %s: %s -> %s", sessionID, current.Stage, next.Stage)
	}
	view := domain.NewSessionView(next)
	return &view, nil
}

func (s *InterviewService) load(sessionID string) (*domain.InterviewSession, error) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		logrus.Errorf("Failed to load session %s: %v", sessionID, err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *InterviewService) pickQuestions(stack []domain.TechID) []string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return domain.SelectQuestions(s.bank, stack, s.questionCount, s.rng)
}

func (s *InterviewService) lockFor(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%lockStripes]
}

func (s *InterviewService) logRejected(sessionID string, stage domain.Stage, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrEmptyTechStack),
		errors.Is(err, domain.ErrBlankAnswer):
		logrus.Infof("Session %s: input rejected in %s: %v", sessionID, stage, err)
	case errors.Is(err, domain.ErrInvalidTransition):
		logrus.Warnf("Session %s: %v", sessionID, err)
	default:
		logrus.Errorf("Session %s: action failed in %s: %v", sessionID, stage, err)
	}
}
