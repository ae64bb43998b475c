package model

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type CreateTaskReq struct {
	ProjectID   int64      `param:"project_id" json:"-" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"max=10000"`
	Status      string     `json:"status" validate:"omitempty,oneof=TODO INPR DONE"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=LOW MED HIGH"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  *int64     `json:"assignee_id" validate:"omitempty,gt=0"`
}

func (r *CreateTaskReq) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	r.Priority = strings.ToUpper(strings.TrimSpace(r.Priority))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Status == "" {
		r.Status = StatusTodo
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	return nil
}

// UpdateTaskReq serves PUT (full) and PATCH (partial) updates.
// due_date and assignee_id accept an explicit null to clear them.
type UpdateTaskReq struct {
	ProjectID   int64         `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID      int64         `param:"task_id" json:"-" validate:"required,gt=0"`
	Title       *string       `json:"title" validate:"omitempty,max=255"`
	Description *string       `json:"description" validate:"omitempty,max=10000"`
	Status      *string       `json:"status" validate:"omitempty,oneof=TODO INPR DONE"`
	Priority    *string       `json:"priority" validate:"omitempty,oneof=LOW MED HIGH"`
	DueDate     NullableTime  `json:"due_date"`
	AssigneeID  NullableInt64 `json:"assignee_id"`
	Partial     bool          `json:"-"`
}

func (r *UpdateTaskReq) Validate() error {
	r.Title = trimPtr(r.Title, strings.TrimSpace)
	r.Description = trimPtr(r.Description, strings.TrimSpace)
	r.Status = trimPtr(r.Status, func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) })
	r.Priority = trimPtr(r.Priority, func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) })

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if (!r.Partial && r.Title == nil) || (r.Title != nil && *r.Title == "") {
		return NewFieldError("title", "this field is required")
	}
	if r.AssigneeID.Value != nil && *r.AssigneeID.Value <= 0 {
		return NewFieldError("assignee_id", "must be greater than 0")
	}
	return nil
}

// Apply copies the requested changes onto t. A full update resets omitted fields to their defaults.
func (r *UpdateTaskReq) Apply(t *Task) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	} else if !r.Partial {
		t.Description = ""
	}
	if r.Status != nil && *r.Status != "" {
		t.Status = *r.Status
	} else if !r.Partial {
		t.Status = StatusTodo
	}
	if r.Priority != nil && *r.Priority != "" {
		t.Priority = *r.Priority
	} else if !r.Partial {
		t.Priority = PriorityMedium
	}
	if r.DueDate.Set || !r.Partial {
		t.DueDate = r.DueDate.Value
	}
	if r.AssigneeID.Set || !r.Partial {
		t.AssigneeID = r.AssigneeID.Value
	}
}

type TaskIDReq struct {
	ProjectID int64 `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID    int64 `param:"task_id" json:"-" validate:"required,gt=0"`
}

func (r *TaskIDReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type ListTasksReq struct {
	ProjectID     int64  `param:"project_id" json:"-"`
	Status        string `query:"status"`
	Priority      string `query:"priority"`
	Assignee      string `query:"assignee"`
	Search        string `query:"search" validate:"max=255"`
	DueDateAfter  string `query:"due_date_after" validate:"omitempty,datetime=2006-01-02"`
	DueDateBefore string `query:"due_date_before" validate:"omitempty,datetime=2006-01-02"`
}

func (r *ListTasksReq) Validate() error {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	r.Priority = strings.ToUpper(strings.TrimSpace(r.Priority))
	r.Assignee = strings.ToLower(strings.TrimSpace(r.Assignee))
	r.Search = strings.TrimSpace(r.Search)
	r.DueDateAfter = strings.TrimSpace(r.DueDateAfter)
	r.DueDateBefore = strings.TrimSpace(r.DueDateBefore)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// ToFilter resolves "me" against the caller and turns the inclusive date bounds into a half-open range.
// Assignee values that are neither "me" nor numeric are ignored.
func (r *ListTasksReq) ToFilter(callerID int64) TaskFilter {
	filter := TaskFilter{
		ProjectID: r.ProjectID,
		Status:    r.Status,
		Priority:  r.Priority,
		Search:    r.Search,
	}

	switch {
	case r.Assignee == AssigneeMe:
		id := callerID
		filter.AssigneeID = &id
	case r.Assignee != "":
		if id, err := strconv.ParseInt(r.Assignee, 10, 64); err == nil {
			filter.AssigneeID = &id
		}
	}

	if t, err := time.Parse(dateLayout, r.DueDateAfter); err == nil {
		filter.DueAfter = &t
	}
	if t, err := time.Parse(dateLayout, r.DueDateBefore); err == nil {
		next := t.AddDate(0, 0, 1)
		filter.DueBefore = &next
	}
	return filter
}

func trimPtr(s *string, fn func(string) string) *string {
	if s == nil {
		return nil
	}
	v := fn(*s)
	return &v
}
