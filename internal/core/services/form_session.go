package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/ignamartinoli/banking-ui/internal/apperrors"
	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/models"
)

// SessionState is the lifecycle state of a form session:
// Idle -> Validating -> Submitting -> (Success | Failed), where
// Success and Failed are idle-equivalent: the session accepts the next
// submission while keeping the last outcome observable.
type SessionState int

const (
	StateIdle SessionState = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s SessionState) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// submitFunc issues the already validated request draft.
type submitFunc func(ctx context.Context) error

// validateFunc runs the synchronous validation stage against the
// current snapshot. On success it returns the submit step and a field
// reset to apply after the backend confirms; on failure it returns an
// error wrapping apperrors.ErrValidation and nothing is submitted.
type validateFunc func(snap models.Snapshot) (submitFunc, func(), error)

// formSession is the machine shared by the three dashboard forms.
//
// Exactly one submission may be in flight per session: a re-entrant
// Submit while Submitting returns ErrSubmitInFlight without touching
// fields or issuing a request. Validation runs synchronously before
// the request, and the request's result is observed before any field
// reset or snapshot refresh.
type formSession struct {
	BaseService
	mu          sync.Mutex
	name        string
	state       SessionState
	lastError   string
	lastMessage string
	snapshots   *SnapshotService
}

func (s *formSession) init(name string, snapshots *SnapshotService) {
	s.name = name
	s.state = StateIdle
	s.snapshots = snapshots
}

// statusLocked builds the base status; callers hold s.mu.
func (s *formSession) statusLocked() dto.FormStatus {
	return dto.FormStatus{
		State:   s.state.String(),
		Message: s.lastMessage,
		Error:   s.lastError,
	}
}

func (s *formSession) canSubmitLocked() bool {
	return s.state != StateValidating && s.state != StateSubmitting
}

// run drives one submission through the machine.
func (s *formSession) run(ctx context.Context, validate validateFunc, successMsg string) error {
	s.mu.Lock()
	if !s.canSubmitLocked() {
		s.mu.Unlock()
		return apperrors.ErrSubmitInFlight
	}
	s.state = StateValidating
	s.lastError = ""
	s.lastMessage = ""

	submissionID := uuid.NewString()
	logger := s.GetLogger(ctx).With(
		slog.String("form", s.name),
		slog.String("submission_id", submissionID),
	)

	submit, reset, err := validate(s.snapshots.Current())
	if err != nil {
		s.state = StateIdle
		s.lastError = err.Error()
		s.mu.Unlock()
		logger.Debug("Submission rejected by validation", slog.String("error", err.Error()))
		return err
	}

	s.state = StateSubmitting
	s.mu.Unlock()

	err = submit(ctx)

	s.mu.Lock()
	if err != nil {
		// Preserve fields so the user can correct and resubmit; the
		// backend message is surfaced verbatim.
		s.state = StateFailed
		s.lastError = err.Error()
		s.mu.Unlock()
		logger.Warn("Submission failed", slog.String("error", err.Error()))
		return err
	}

	s.state = StateSuccess
	s.lastMessage = successMsg
	if reset != nil {
		reset()
	}
	s.mu.Unlock()
	logger.Info("Submission completed")

	if rerr := s.snapshots.Refresh(ctx); rerr != nil {
		// The mutation already succeeded; only the view is stale. The
		// error wraps ErrRefreshFailed so it cannot be mistaken for a
		// failed submission.
		s.mu.Lock()
		s.lastError = rerr.Error()
		s.mu.Unlock()
		return rerr
	}
	return nil
}
