package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/taktix-app/tryout-engine/internal/apperr"
	"github.com/taktix-app/tryout-engine/internal/dto"
	"github.com/taktix-app/tryout-engine/internal/exam"
	"github.com/taktix-app/tryout-engine/internal/model"
	"github.com/taktix-app/tryout-engine/internal/repository"
	"gorm.io/gorm"
)

// SessionService owns the live exam runners. One session is one in-progress
// attempt; it exists only in memory until the runner submits.
type SessionService interface {
	StartSession(userID, tryoutID uint) (*dto.SessionStateDTO, error)
	GetState(userID uint, sessionID string) (*dto.SessionStateDTO, error)
	SelectAnswer(userID uint, sessionID string, req dto.AnswerSelectDTO) (*dto.SessionStateDTO, error)
	Navigate(userID uint, sessionID string, req dto.NavigateDTO) (*dto.SessionStateDTO, error)
	AdvanceSubtest(userID uint, sessionID string) (*dto.SessionStateDTO, error)
	Submit(userID uint, sessionID string) (*dto.SessionStateDTO, error)
	Exit(userID uint, sessionID string) error
}

type session struct {
	id        string
	userID    uint
	tryoutID  uint
	questions []model.Question
	runner    *exam.Runner
}

type sessionService struct {
	tryoutRepo   repository.TryoutRepository
	questionRepo repository.QuestionRepository
	submitter    SubmissionService

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewSessionService(
	tryoutRepo repository.TryoutRepository,
	questionRepo repository.QuestionRepository,
	submitter SubmissionService,
) SessionService {
	return &sessionService{
		tryoutRepo:   tryoutRepo,
		questionRepo: questionRepo,
		submitter:    submitter,
		sessions:     make(map[string]*session),
	}
}

// StartSession loads the tryout and its questions, then spins up a runner.
// A missing tryout or an empty question set blocks the attempt before any
// session state exists.
func (s *sessionService) StartSession(userID, tryoutID uint) (*dto.SessionStateDTO, error) {
	if _, err := s.tryoutRepo.FindByID(tryoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tryout %d not found", tryoutID)
		}
		return nil, fmt.Errorf("error loading tryout %d: %w", tryoutID, err)
	}

	questions, err := s.questionRepo.FindByTryoutID(tryoutID)
	if err != nil {
		return nil, fmt.Errorf("error loading questions for tryout %d: %w", tryoutID, err)
	}
	if len(questions) == 0 {
		return nil, apperr.NotFound("no questions found for tryout %d", tryoutID)
	}

	// Substitute difficulties are drawn once here so rescoring the same
	// attempt stays deterministic.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	difficulties := exam.ResolveDifficulties(questions, rng)

	runner := exam.NewRunner(userID, tryoutID, questions, difficulties, s.submitter)
	if err := runner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start exam session: %w", err)
	}

	sess := &session{
		id:        uuid.NewString(),
		userID:    userID,
		tryoutID:  tryoutID,
		questions: questions,
		runner:    runner,
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Info().
		Str("session_id", sess.id).
		Uint("user_id", userID).
		Uint("tryout_id", tryoutID).
		Int("questions", len(questions)).
		Msg("Exam session started")

	return s.stateDTO(sess)
}

func (s *sessionService) GetState(userID uint, sessionID string) (*dto.SessionStateDTO, error) {
	sess, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.stateDTO(sess)
}

func (s *sessionService) SelectAnswer(userID uint, sessionID string, req dto.AnswerSelectDTO) (*dto.SessionStateDTO, error) {
	sess, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.runner.SelectAnswer(req.QuestionID, req.Option); err != nil {
		return nil, s.runnerErr(sess, err)
	}
	return s.stateDTO(sess)
}

func (s *sessionService) Navigate(userID uint, sessionID string, req dto.NavigateDTO) (*dto.SessionStateDTO, error) {
	sess, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	switch req.Action {
	case "next":
		err = sess.runner.GoNext()
	case "back":
		err = sess.runner.GoBack()
	case "jump":
		err = sess.runner.JumpTo(req.Index)
	default:
		return nil, apperr.Validation("unknown navigation action %q", req.Action)
	}
	if err != nil {
		return nil, s.runnerErr(sess, err)
	}
	return s.stateDTO(sess)
}

func (s *sessionService) AdvanceSubtest(userID uint, sessionID string) (*dto.SessionStateDTO, error) {
	sess, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.runner.AdvanceSubtest(); err != nil {
		// The final advance submits; a storage failure leaves the runner
		// in Submitting for a retry, so report state instead of dropping
		// the session.
		if apperr.IsKind(err, apperr.KindStorage) {
			return s.stateDTO(sess)
		}
		return nil, s.runnerErr(sess, err)
	}
	return s.stateDTO(sess)
}

func (s *sessionService) Submit(userID uint, sessionID string) (*dto.SessionStateDTO, error) {
	sess, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.runner.Submit(); err != nil {
		if apperr.IsKind(err, apperr.KindStorage) {
			return s.stateDTO(sess)
		}
		return nil, s.runnerErr(sess, err)
	}
	return s.stateDTO(sess)
}

// Exit abandons the attempt; nothing is persisted.
func (s *sessionService) Exit(userID uint, sessionID string) error {
	sess, err := s.lookup(userID, sessionID)
	if err != nil {
		return err
	}
	if err := sess.runner.Exit(); err != nil && !errors.Is(err, exam.ErrClosed) {
		return err
	}
	s.evict(sessionID)
	log.Info().Str("session_id", sessionID).Msg("Exam session abandoned")
	return nil
}

func (s *sessionService) lookup(userID uint, sessionID string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok || sess.userID != userID {
		return nil, apperr.NotFound("exam session %s not found", sessionID)
	}
	return sess, nil
}

func (s *sessionService) evict(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// runnerErr maps a closed runner to a session-not-found and evicts it.
func (s *sessionService) runnerErr(sess *session, err error) error {
	if errors.Is(err, exam.ErrClosed) {
		s.evict(sess.id)
		return apperr.NotFound("exam session %s is closed", sess.id)
	}
	return err
}

func (s *sessionService) stateDTO(sess *session) (*dto.SessionStateDTO, error) {
	snap, err := sess.runner.Snapshot()
	if err != nil {
		if errors.Is(err, exam.ErrClosed) {
			return nil, apperr.NotFound("exam session %s is closed", sess.id)
		}
		return nil, err
	}

	state := &dto.SessionStateDTO{
		SessionID:      sess.id,
		TryoutID:       sess.tryoutID,
		State:          string(snap.State),
		Subtest:        snap.Subtest,
		QuestionIndex:  snap.QuestionIndex,
		QuestionCount:  snap.QuestionCount,
		TimeLeft:       snap.TimeLeft,
		Answers:        snap.Answers,
		AttemptNumber:  snap.AttemptNumber,
		OverallScore:   snap.OverallScore,
		CategoryScores: snap.CategoryScores,
		LastError:      snap.LastError,
	}

	if snap.State == exam.StateInSubtest {
		subtestQs := exam.QuestionsFor(snap.Subtest, sess.questions)
		if snap.QuestionIndex < len(subtestQs) {
			q := subtestQs[snap.QuestionIndex]
			state.CurrentQuestion = &dto.SessionQuestionDTO{
				ID:           q.ID,
				QuestionText: q.QuestionText,
				OptionA:      q.OptionA,
				OptionB:      q.OptionB,
				OptionC:      q.OptionC,
				OptionD:      q.OptionD,
				OptionE:      q.OptionE,
				TestCategory: q.TestCategory,
			}
		}
	}

	// A finished runner has served its purpose; drop the session so the
	// results live on only in storage.
	if snap.State == exam.StateFinished {
		s.evict(sess.id)
	}
	return state, nil
}
