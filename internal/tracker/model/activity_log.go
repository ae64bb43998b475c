package model

import "time"

// ActivityLog is an audit entry (append-only, read-only after creation).
// References are cleared, not cascaded, when their target is deleted.
type ActivityLog struct {
	ID                int64     `bson:"_id" json:"id"`
	ActorID           *int64    `bson:"actor_id" json:"actor_id"`
	ActionDescription string    `bson:"action_description" json:"action_description"`
	ProjectID         *int64    `bson:"project_id" json:"project"`
	TaskID            *int64    `bson:"task_id" json:"task"`
	Timestamp         time.Time `bson:"timestamp" json:"timestamp"`
}

// ActivityFilter selects the entries of one project or one task.
type ActivityFilter struct {
	ProjectID *int64
	TaskID    *int64
	Page      int
	Size      int
}

type ActivityLogResponse struct {
	ID                int64        `json:"id"`
	ActionDescription string       `json:"action_description"`
	Actor             *UserSummary `json:"actor"`
	Project           *int64       `json:"project"`
	Task              *int64       `json:"task"`
	Timestamp         time.Time    `json:"timestamp"`
}

type ListActivityResp struct {
	Data       []*ActivityLogResponse `json:"data"`
	Page       int                    `json:"page"`
	Size       int                    `json:"size"`
	TotalCount int64                  `json:"total_count"`
}
