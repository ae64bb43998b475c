package policy

import (
	"net/http"

	"taskhub/internal/tracker/model"
)

// Action is what the caller wants to do with a resource
type Action string

const (
	ActionRead   Action = "read"   // GET, HEAD, OPTIONS
	ActionWrite  Action = "write"  // PUT, PATCH
	ActionDelete Action = "delete" // DELETE
	ActionCreate Action = "create" // POST of a child under the resource
)

// Relation is a fixed predicate between the actor and a resource
type Relation string

const (
	RelationOwner         Relation = "owner"          // actor owns the project
	RelationMember        Relation = "member"         // actor is a project member (owner included)
	RelationProjectOwner  Relation = "project_owner"  // actor owns the parent project
	RelationProjectMember Relation = "project_member" // actor is a member of the parent project
	RelationAssignee      Relation = "assignee"       // actor is the task assignee
	RelationAuthor        Relation = "author"         // actor created the comment/attachment
	RelationAuthenticated Relation = "authenticated"  // any identified actor
)

// EntityPolicy defines which relations grant each action on an entity
type EntityPolicy struct {
	Entity  string                `json:"entity"`
	Actions map[Action][]Relation `json:"actions"`
}

// Resource is the resolved target of an authorization check.
// Children carry their parent project so project relations can be evaluated.
type Resource struct {
	Entity   string
	Project  *model.Project
	Task     *model.Task
	Authored model.Authored
}

// ActionFromMethod maps an HTTP method to its action.
func ActionFromMethod(method string) (Action, bool) {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ActionRead, true
	case http.MethodPut, http.MethodPatch:
		return ActionWrite, true
	case http.MethodDelete:
		return ActionDelete, true
	case http.MethodPost:
		return ActionCreate, true
	}
	return "", false
}
