package policy

import "taskhub/internal/tracker/model"

type relationCheck func(actor model.Actor, res Resource) bool

var relationChecks = map[Relation]relationCheck{
	RelationOwner:         isProjectOwner,
	RelationMember:        isProjectMember,
	RelationProjectOwner:  isProjectOwner,
	RelationProjectMember: isProjectMember,
	RelationAssignee: func(actor model.Actor, res Resource) bool {
		return res.Task.IsAssignee(actor.ID)
	},
	RelationAuthor: func(actor model.Actor, res Resource) bool {
		if res.Authored == nil {
			return false
		}
		author := res.Authored.AuthoredBy()
		return author != nil && actor.ID != 0 && *author == actor.ID
	},
	RelationAuthenticated: func(actor model.Actor, _ Resource) bool {
		return actor.ID != 0
	},
}

func isProjectOwner(actor model.Actor, res Resource) bool {
	return res.Project.IsOwner(actor.ID)
}

func isProjectMember(actor model.Actor, res Resource) bool {
	return res.Project.IsMember(actor.ID)
}
