package exam

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/taktix-app/tryout-engine/internal/apperr"
	"github.com/taktix-app/tryout-engine/internal/model"
)

// State is the runner's lifecycle phase.
type State string

const (
	StateLoading        State = "loading"
	StateInSubtest      State = "in_subtest"
	StateSubtestExpired State = "subtest_expired"
	StateSubmitting     State = "submitting"
	StateFinished       State = "finished"
	StateLoadError      State = "load_error"
)

// ErrClosed is returned by every operation once the runner has finished,
// failed to load, or been abandoned.
var ErrClosed = errors.New("exam session is closed")

// ErrNoQuestions is the load failure for a tryout without questions.
var ErrNoQuestions = errors.New("tryout has no questions")

var optionLabels = map[string]bool{"A": true, "B": true, "C": true, "D": true, "E": true}

// SubmitRequest carries everything the recorder needs to persist an attempt.
type SubmitRequest struct {
	UserID       uint
	TryoutID     uint
	Questions    []model.Question
	Answers      map[uint]string
	Difficulties map[uint]float64
}

// SubmitResult reports the persisted attempt.
type SubmitResult struct {
	AttemptNumber int
	Summary       ScoreSummary
}

// Submitter scores and persists a finished attempt. Implementations must be
// all-or-nothing: a returned error means nothing durable was recorded and
// the submission may be retried.
type Submitter interface {
	Submit(req SubmitRequest) (*SubmitResult, error)
}

// Snapshot is the runner state observable by the UI layer.
type Snapshot struct {
	State          State          `json:"state"`
	Subtest        string         `json:"subtest,omitempty"`
	QuestionIndex  int            `json:"question_index"`
	QuestionCount  int            `json:"question_count"`
	TimeLeft       int            `json:"time_left"`
	Answers        map[uint]string `json:"answers"`
	AttemptNumber  int            `json:"attempt_number,omitempty"`
	OverallScore   int            `json:"overall_score,omitempty"`
	CategoryScores map[string]int `json:"category_scores,omitempty"`
	LastError      string         `json:"last_error,omitempty"`
}

type command struct {
	fn    func() error
	reply chan error
}

// Runner drives one in-progress attempt: sequential subtests, a one-second
// countdown per subtest, in-memory answers, and a single submission at the
// end. User commands and timer ticks are consumed one at a time by a single
// goroutine, so a click and a timeout can never interleave.
type Runner struct {
	userID       uint
	tryoutID     uint
	questions    []model.Question
	difficulties map[uint]float64
	submitter    Submitter

	cmds   chan command
	closed chan struct{}

	// newTicker is swapped out by tests to drive ticks manually.
	newTicker func(time.Duration) (<-chan time.Time, func())

	// Everything below is owned by the loop goroutine.
	state            State
	subtest          string
	subtestQuestions []model.Question
	questionIndex    int
	timeLeft         int
	ledger           *Ledger
	tickC            <-chan time.Time
	stopTicker       func()
	result           *SubmitResult
	lastErr          error
	exited           bool
}

// NewRunner builds a runner over a pre-fetched question set and starts its
// event loop in the Loading state. Call Start to enter the first subtest.
func NewRunner(userID, tryoutID uint, questions []model.Question, difficulties map[uint]float64, submitter Submitter) *Runner {
	r := &Runner{
		userID:       userID,
		tryoutID:     tryoutID,
		questions:    questions,
		difficulties: difficulties,
		submitter:    submitter,
		cmds:         make(chan command),
		closed:       make(chan struct{}),
		state:        StateLoading,
		ledger:       NewLedger(),
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
	go r.loop()
	return r
}

func (r *Runner) loop() {
	for {
		select {
		case cmd := <-r.cmds:
			cmd.reply <- cmd.fn()
		case <-r.tickC:
			r.onTick()
		}
		if r.exited || r.state == StateFinished || r.state == StateLoadError {
			r.haltTicker()
			close(r.closed)
			return
		}
	}
}

// do serializes fn through the loop goroutine.
func (r *Runner) do(fn func() error) error {
	cmd := command{fn: fn, reply: make(chan error, 1)}
	select {
	case r.cmds <- cmd:
		return <-cmd.reply
	case <-r.closed:
		return ErrClosed
	}
}

// Start transitions Loading -> InSubtest. The starting subtest is whatever
// category the first loaded question belongs to, not necessarily position 0
// of the fixed order; this mirrors the production behavior exactly.
func (r *Runner) Start() error {
	return r.do(func() error {
		if r.state != StateLoading {
			return apperr.Validation("exam already started")
		}
		if len(r.questions) == 0 {
			r.state = StateLoadError
			return ErrNoQuestions
		}
		r.enterSubtest(r.questions[0].TestCategory)
		return nil
	})
}

// SelectAnswer toggles the ledger entry for a question in the active
// subtest. Re-selecting the current option clears it.
func (r *Runner) SelectAnswer(questionID uint, option string) error {
	return r.do(func() error {
		if r.state != StateInSubtest {
			return apperr.Validation("answers can only be changed during a subtest")
		}
		if !optionLabels[option] {
			return apperr.Validation("unknown option label %q", option)
		}
		if !r.inActiveSubtest(questionID) {
			return apperr.Validation("question %d is not part of the active subtest", questionID)
		}
		r.ledger.Select(questionID, option)
		return nil
	})
}

// GoNext advances to the next question of the active subtest; a no-op on the
// last question. Crossing into the next subtest needs AdvanceSubtest.
func (r *Runner) GoNext() error {
	return r.do(func() error {
		if r.state != StateInSubtest {
			return apperr.Validation("navigation is only available during a subtest")
		}
		if r.questionIndex < len(r.subtestQuestions)-1 {
			r.questionIndex++
		}
		return nil
	})
}

// GoBack steps to the previous question; a no-op on the first.
func (r *Runner) GoBack() error {
	return r.do(func() error {
		if r.state != StateInSubtest {
			return apperr.Validation("navigation is only available during a subtest")
		}
		if r.questionIndex > 0 {
			r.questionIndex--
		}
		return nil
	})
}

// JumpTo sets the question index directly from the palette; out-of-range
// indexes are a no-op.
func (r *Runner) JumpTo(index int) error {
	return r.do(func() error {
		if r.state != StateInSubtest {
			return apperr.Validation("navigation is only available during a subtest")
		}
		if index >= 0 && index < len(r.subtestQuestions) {
			r.questionIndex = index
		}
		return nil
	})
}

// AdvanceSubtest moves to the next subtest with a fresh countdown, or into
// Submitting on the last one. The countdown reaching zero triggers the same
// transition.
func (r *Runner) AdvanceSubtest() error {
	return r.do(func() error {
		if r.state != StateInSubtest {
			return apperr.Validation("no subtest is active")
		}
		r.advanceSubtest()
		return nil
	})
}

// Submit records the attempt immediately, regardless of how far the
// traversal has come. From Submitting it retries a failed submission
// without losing the ledger.
func (r *Runner) Submit() error {
	return r.do(func() error {
		switch r.state {
		case StateInSubtest:
			r.haltTicker()
			r.state = StateSubmitting
		case StateSubmitting:
		default:
			return apperr.Validation("nothing to submit")
		}
		return r.doSubmit()
	})
}

// Exit abandons the attempt without persisting anything.
func (r *Runner) Exit() error {
	return r.do(func() error {
		r.exited = true
		return nil
	})
}

// Snapshot returns a copy of the observable state. It remains readable
// after the runner finishes or fails to load; only an abandoned runner is
// gone for good.
func (r *Runner) Snapshot() (Snapshot, error) {
	var snap Snapshot
	err := r.do(func() error {
		snap = r.snapshot()
		return nil
	})
	if errors.Is(err, ErrClosed) {
		// The loop goroutine has exited; closing r.closed ordered its
		// final writes before this read.
		if r.exited {
			return Snapshot{}, ErrClosed
		}
		return r.snapshot(), nil
	}
	return snap, err
}

func (r *Runner) snapshot() Snapshot {
	snap := Snapshot{
		State:         r.state,
		Subtest:       r.subtest,
		QuestionIndex: r.questionIndex,
		QuestionCount: len(r.subtestQuestions),
		TimeLeft:      r.timeLeft,
		Answers:       r.ledger.Snapshot(),
	}
	if r.result != nil {
		snap.AttemptNumber = r.result.AttemptNumber
		snap.OverallScore = r.result.Summary.OverallScore
		snap.CategoryScores = r.result.Summary.CategoryScores
	}
	if r.lastErr != nil {
		snap.LastError = r.lastErr.Error()
	}
	return snap
}

func (r *Runner) inActiveSubtest(questionID uint) bool {
	for _, q := range r.subtestQuestions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

// enterSubtest resets the question list, index and countdown for a subtest.
// A subtest without questions still gets its full countdown; navigation is
// simply inert until it expires.
func (r *Runner) enterSubtest(subtest string) {
	r.haltTicker()
	r.subtest = subtest
	r.subtestQuestions = QuestionsFor(subtest, r.questions)
	r.questionIndex = 0
	r.timeLeft = DurationSeconds(subtest)
	r.state = StateInSubtest
	if r.timeLeft > 0 {
		r.tickC, r.stopTicker = r.newTicker(time.Second)
	}
}

// onTick decrements the countdown. Replacing tickC on every subtest change
// means a tick from a halted ticker is never read, so a stale tick cannot
// fire transitions against the wrong subtest.
func (r *Runner) onTick() {
	if r.state != StateInSubtest {
		return
	}
	r.timeLeft--
	if r.timeLeft > 0 {
		return
	}
	r.timeLeft = 0
	r.state = StateSubtestExpired
	log.Info().Uint("tryout_id", r.tryoutID).Str("subtest", r.subtest).Msg("subtest time expired, forcing advance")
	r.state = StateInSubtest
	r.advanceSubtest()
}

func (r *Runner) advanceSubtest() {
	r.haltTicker()
	next := NextSubtest(r.subtest)
	if next != "" {
		r.enterSubtest(next)
		return
	}
	r.state = StateSubmitting
	if err := r.doSubmit(); err != nil {
		log.Error().Err(err).Uint("tryout_id", r.tryoutID).Msg("automatic submission failed, awaiting retry")
	}
}

// doSubmit invokes the recorder once and keeps the runner in Submitting on
// failure so the ledger survives for a retry.
func (r *Runner) doSubmit() error {
	result, err := r.submitter.Submit(SubmitRequest{
		UserID:       r.userID,
		TryoutID:     r.tryoutID,
		Questions:    r.questions,
		Answers:      r.ledger.Snapshot(),
		Difficulties: r.difficulties,
	})
	if err != nil {
		r.lastErr = err
		return err
	}
	r.lastErr = nil
	r.result = result
	r.state = StateFinished
	return nil
}

func (r *Runner) haltTicker() {
	if r.stopTicker != nil {
		r.stopTicker()
		r.stopTicker = nil
		r.tickC = nil
	}
}
