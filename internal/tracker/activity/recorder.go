// Package activity appends audit entries for successful mutations.
//
// Recording is best-effort: a failed write is logged and dropped so that a
// user's successful edit is never reported as a failure.
package activity

import (
	"context"
	"log/slog"
	"time"

	"taskhub/internal/tracker/repository"
)

const defaultTimeout = 5 * time.Second

// Recorder appends one immutable entry per successful mutation
type Recorder struct {
	repo    repository.ActivityRepository
	logger  *slog.Logger
	timeout time.Duration
}

// NewRecorder builds a Recorder. A nil repo turns Record into a no-op.
func NewRecorder(repo repository.ActivityRepository, logger *slog.Logger, timeout time.Duration) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Recorder{repo: repo, logger: logger, timeout: timeout}
}

// Record appends an entry synchronously. It never fails the caller: store errors
// and panics are logged and swallowed. The write is detached from request
// cancellation and bounded by the recorder timeout.
func (r *Recorder) Record(ctx context.Context, actorID int64, description string, projectID, taskID *int64) {
	if r == nil || r.repo == nil {
		return
	}

	entry := repository.ActivityEntry{
		ActorID:     actorID,
		Description: description,
		ProjectID:   projectID,
		TaskID:      taskID,
	}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Warn("activity record panicked", "description", description, "panic", p)
		}
	}()

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	if err := r.repo.CreateActivity(writeCtx, entry.ToActivityLog()); err != nil {
		r.logger.Warn("failed to record activity",
			"actor_id", actorID,
			"description", description,
			"error", err,
		)
	}
}
