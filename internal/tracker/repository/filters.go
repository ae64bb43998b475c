package repository

import (
	"math"
	"regexp"

	"taskhub/internal/tracker/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// and combines conditions; callers get {} when there is nothing to filter on
func and(conds ...bson.M) bson.M {
	nonEmpty := make([]bson.M, 0, len(conds))
	for _, c := range conds {
		if len(c) > 0 {
			nonEmpty = append(nonEmpty, c)
		}
	}
	switch len(nonEmpty) {
	case 0:
		return bson.M{}
	case 1:
		return nonEmpty[0]
	}
	arr := bson.A{}
	for _, c := range nonEmpty {
		arr = append(arr, c)
	}
	return bson.M{"$and": arr}
}

func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func equalFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

// projectScopeFilter keeps the projects the viewer owns or belongs to
func projectScopeFilter(scope model.ListScope) bson.M {
	if scope.Unrestricted {
		return bson.M{}
	}
	return bson.M{"$or": bson.A{
		bson.M{"owner_id": scope.ViewerID},
		bson.M{"member_ids": scope.ViewerID},
	}}
}

// buildProjectFilter applies the scope first, then the client filters
func buildProjectFilter(scope model.ListScope, filter model.ProjectFilter) bson.M {
	conds := []bson.M{projectScopeFilter(scope)}

	if filter.Search != "" {
		conds = append(conds, bson.M{"name": containsFold(filter.Search)})
	}
	switch filter.Role {
	case model.RoleFilterOwner:
		conds = append(conds, bson.M{"owner_id": filter.RoleUserID})
	case model.RoleFilterMember:
		conds = append(conds, bson.M{"member_ids": filter.RoleUserID})
	}

	return and(conds...)
}

func taskScopeFilter(scope model.ListScope, filter model.TaskFilter) bson.M {
	if scope.Unrestricted {
		return bson.M{}
	}
	if filter.ProjectID != 0 {
		if scope.ParentVisible {
			return bson.M{}
		}
		return bson.M{"assignee_id": scope.ViewerID}
	}
	return bson.M{"$or": bson.A{
		bson.M{"project_id": bson.M{"$in": idArray(filter.VisibleProjectIDs)}},
		bson.M{"assignee_id": scope.ViewerID},
	}}
}

// buildTaskFilter applies the scope first, then the client filters
func buildTaskFilter(scope model.ListScope, filter model.TaskFilter) bson.M {
	conds := []bson.M{}
	if filter.ProjectID != 0 {
		conds = append(conds, bson.M{"project_id": filter.ProjectID})
	}
	conds = append(conds, taskScopeFilter(scope, filter))

	if filter.Status != "" {
		conds = append(conds, bson.M{"status": equalFold(filter.Status)})
	}
	if filter.Priority != "" {
		conds = append(conds, bson.M{"priority": equalFold(filter.Priority)})
	}
	if filter.AssigneeID != nil {
		conds = append(conds, bson.M{"assignee_id": *filter.AssigneeID})
	}
	if filter.Search != "" {
		conds = append(conds, bson.M{"title": containsFold(filter.Search)})
	}
	if filter.DueAfter != nil || filter.DueBefore != nil {
		due := bson.M{}
		if filter.DueAfter != nil {
			due["$gte"] = *filter.DueAfter
		}
		if filter.DueBefore != nil {
			due["$lt"] = *filter.DueBefore
		}
		conds = append(conds, bson.M{"due_date": due})
	}

	return and(conds...)
}

func buildUserFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"$or": bson.A{
		bson.M{"username": containsFold(search)},
		bson.M{"email": containsFold(search)},
	}}
}

func buildActivityFilter(filter model.ActivityFilter) bson.M {
	conds := []bson.M{}
	if filter.ProjectID != nil {
		conds = append(conds, bson.M{"project_id": *filter.ProjectID})
	}
	if filter.TaskID != nil {
		conds = append(conds, bson.M{"task_id": *filter.TaskID})
	}
	return and(conds...)
}

func idArray(ids []int64) bson.A {
	arr := make(bson.A, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, id)
	}
	return arr
}

// pageSkip returns the number of documents before a 1-based page, saturating instead of overflowing.
func pageSkip(page, size int) int64 {
	if page <= 1 || size <= 0 {
		return 0
	}
	p, s := int64(page-1), int64(size)
	if p > math.MaxInt64/s {
		return math.MaxInt64
	}
	return p * s
}
