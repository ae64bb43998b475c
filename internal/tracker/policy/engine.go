package policy

import (
	"fmt"

	"taskhub/internal/tracker/model"
)

// Engine is the stateless authorization engine
type Engine struct {
	entityPolicies map[string]*EntityPolicy
}

// NewEngine creates an Engine from the embedded policy catalog
func NewEngine() (*Engine, error) {
	entityPolicies, err := NewLoader().LoadEntityPolicies()
	if err != nil {
		return nil, fmt.Errorf("failed to load entity policies: %w", err)
	}
	return &Engine{entityPolicies: entityPolicies}, nil
}

// GetActionPolicy returns the relations granting action on entity
func (e *Engine) GetActionPolicy(entity string, action Action) ([]Relation, error) {
	entityPolicy, ok := e.entityPolicies[entity]
	if !ok {
		return nil, fmt.Errorf("unknown entity: %s", entity)
	}

	relations, ok := entityPolicy.Actions[action]
	if !ok {
		return nil, fmt.Errorf("unknown action %s for entity %s", action, entity)
	}
	return relations, nil
}

// Authorize decides whether actor may perform action on res.
// Staff always pass; unknown entity/action pairs are denied.
func (e *Engine) Authorize(actor model.Actor, action Action, res Resource) bool {
	if actor.IsStaff {
		return true
	}

	relations, err := e.GetActionPolicy(res.Entity, action)
	if err != nil {
		return false
	}
	for _, rel := range relations {
		if check := relationChecks[rel]; check != nil && check(actor, res) {
			return true
		}
	}
	return false
}

// AuthorizeMethod is Authorize keyed by HTTP method.
func (e *Engine) AuthorizeMethod(actor model.Actor, method string, res Resource) bool {
	action, ok := ActionFromMethod(method)
	if !ok {
		return false
	}
	return e.Authorize(actor, action, res)
}

func (e *Engine) AuthorizeProject(actor model.Actor, method string, project *model.Project) bool {
	return e.AuthorizeMethod(actor, method, Resource{Entity: model.EntityProject, Project: project})
}

func (e *Engine) AuthorizeTask(actor model.Actor, method string, project *model.Project, task *model.Task) bool {
	return e.AuthorizeMethod(actor, method, Resource{Entity: model.EntityTask, Project: project, Task: task})
}

func (e *Engine) AuthorizeComment(actor model.Actor, method string, project *model.Project, task *model.Task, comment *model.Comment) bool {
	return e.AuthorizeMethod(actor, method, Resource{
		Entity:   model.EntityComment,
		Project:  project,
		Task:     task,
		Authored: comment,
	})
}

func (e *Engine) AuthorizeAttachment(actor model.Actor, method string, project *model.Project, task *model.Task, attachment *model.Attachment) bool {
	return e.AuthorizeMethod(actor, method, Resource{
		Entity:   model.EntityAttachment,
		Project:  project,
		Task:     task,
		Authored: attachment,
	})
}

// AuthorizeMembership checks add (write) and remove (delete) of project members.
func (e *Engine) AuthorizeMembership(actor model.Actor, action Action, project *model.Project) bool {
	return e.Authorize(actor, action, Resource{Entity: model.EntityMembership, Project: project})
}

func (e *Engine) AuthorizeActivity(actor model.Actor) bool {
	return e.Authorize(actor, ActionRead, Resource{Entity: model.EntityActivity})
}
