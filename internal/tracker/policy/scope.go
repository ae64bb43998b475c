package policy

import "taskhub/internal/tracker/model"

// ScopeProjects narrows project listings to projects the actor owns or belongs to.
func (e *Engine) ScopeProjects(actor model.Actor) model.ListScope {
	if actor.IsStaff {
		return model.ListScope{Unrestricted: true, ViewerID: actor.ID}
	}
	if actor.ID == 0 {
		return model.ListScope{Empty: true}
	}
	return model.ListScope{ViewerID: actor.ID}
}

// ScopeTasks narrows task listings. With a parent project, its owner and members see every
// task and anyone else only the tasks assigned to them. Without a parent the repository
// combines visible projects with the actor's own assignments.
func (e *Engine) ScopeTasks(actor model.Actor, project *model.Project) model.ListScope {
	if actor.IsStaff {
		return model.ListScope{Unrestricted: true, ViewerID: actor.ID}
	}
	if actor.ID == 0 {
		return model.ListScope{Empty: true}
	}
	return model.ListScope{
		ViewerID:      actor.ID,
		ParentVisible: project != nil && project.IsMember(actor.ID),
	}
}

// ScopeTaskChildren narrows comment and attachment listings: all of them for the project's
// owner and members, nothing for anyone else.
func (e *Engine) ScopeTaskChildren(actor model.Actor, project *model.Project) model.ListScope {
	if actor.IsStaff {
		return model.ListScope{Unrestricted: true, ViewerID: actor.ID}
	}
	if !project.IsMember(actor.ID) {
		return model.ListScope{Empty: true, ViewerID: actor.ID}
	}
	return model.ListScope{ViewerID: actor.ID, ParentVisible: true}
}
