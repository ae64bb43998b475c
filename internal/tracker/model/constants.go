package model

// Task statuses
const (
	StatusTodo       = "TODO"
	StatusInProgress = "INPR"
	StatusDone       = "DONE"
)

// Task priorities
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MED"
	PriorityHigh   = "HIGH"
)

// Entity names used by the policy catalog
const (
	EntityProject    = "project"
	EntityTask       = "task"
	EntityComment    = "comment"
	EntityAttachment = "attachment"
	EntityActivity   = "activity"
	EntityMembership = "membership"
)

// Project role filter values
const (
	RoleFilterOwner  = "owner"
	RoleFilterMember = "member"
)

// AssigneeMe resolves to the caller in task filters.
const AssigneeMe = "me"

// Error codes
const (
	CodeBadRequest   = "bad_request"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeInternal     = "internal_error"
)

// Pagination defaults for activity listings
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)
