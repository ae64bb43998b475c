package model

import "time"

type Task struct {
	ID          int64      `bson:"_id" json:"id"`
	ProjectID   int64      `bson:"project_id" json:"project"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Status      string     `bson:"status" json:"status"`
	Priority    string     `bson:"priority" json:"priority"`
	DueDate     *time.Time `bson:"due_date" json:"due_date"`
	AssigneeID  *int64     `bson:"assignee_id" json:"assignee_id"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// IsAssignee reports whether userID is the task's assignee.
func (t *Task) IsAssignee(userID int64) bool {
	return t != nil && t.AssigneeID != nil && userID != 0 && *t.AssigneeID == userID
}

// TaskFilter carries the client-side filters for task listings.
type TaskFilter struct {
	// ProjectID restricts to one project; zero lists across projects.
	ProjectID int64
	// VisibleProjectIDs is used by cross-project listings for non-staff callers.
	VisibleProjectIDs []int64
	Status            string
	Priority          string
	AssigneeID        *int64
	Search            string
	DueAfter          *time.Time
	// DueBefore is exclusive; the request's inclusive day is turned into the next midnight.
	DueBefore *time.Time
}

type TaskResponse struct {
	ID          int64        `json:"id"`
	Project     int64        `json:"project"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	Assignee    *UserSummary `json:"assignee"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
