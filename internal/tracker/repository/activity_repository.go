package repository

import (
	"context"
	"time"

	"taskhub/internal/tracker/model"
)

// ActivityRepository defines the interface for the activity log (append-only)
type ActivityRepository interface {
	// CreateActivity appends a new entry
	CreateActivity(ctx context.Context, entry *model.ActivityLog) error
	// FindActivity returns one page of entries newest first, with the total count
	FindActivity(ctx context.Context, filter model.ActivityFilter) ([]*model.ActivityLog, int64, error)
	// EnsureActivityIndexes creates indexes for efficient querying
	EnsureActivityIndexes(ctx context.Context) error
}

// ActivityEntry is a helper struct for creating activity records
type ActivityEntry struct {
	ActorID     int64
	Description string
	ProjectID   *int64
	TaskID      *int64
}

// ToActivityLog converts ActivityEntry to ActivityLog with timestamp
func (e *ActivityEntry) ToActivityLog() *model.ActivityLog {
	var actor *int64
	if e.ActorID != 0 {
		id := e.ActorID
		actor = &id
	}
	return &model.ActivityLog{
		ActorID:           actor,
		ActionDescription: e.Description,
		ProjectID:         e.ProjectID,
		TaskID:            e.TaskID,
		Timestamp:         time.Now(),
	}
}
