package repository

import (
	"context"
	"time"

	"taskhub/internal/tracker/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) CreateProject(ctx context.Context, project *model.Project) error {
	id, err := r.nextID(ctx, CollectionProjects)
	if err != nil {
		return err
	}
	now := time.Now()
	project.ID = id
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.MemberIDs == nil {
		project.MemberIDs = []int64{}
	}
	return insert(ctx, r.Projects, project)
}

func (r *MongoRepository) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	return findOne[model.Project](ctx, r.Projects, bson.M{"_id": id})
}

func (r *MongoRepository) FindProjects(ctx context.Context, scope model.ListScope, filter model.ProjectFilter) ([]*model.Project, error) {
	if scope.Empty {
		return []*model.Project{}, nil
	}
	return findAll[model.Project](ctx, r.Projects, buildProjectFilter(scope, filter), ascendingByID())
}

func (r *MongoRepository) UpdateProject(ctx context.Context, project *model.Project) error {
	project.UpdatedAt = time.Now()
	res, err := r.Projects.UpdateOne(ctx, bson.M{"_id": project.ID}, bson.M{
		"$set": bson.M{
			"name":        project.Name,
			"description": project.Description,
			"member_ids":  project.MemberIDs,
			"updated_at":  project.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteProject(ctx context.Context, id int64) error {
	return r.inTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		n, err := r.Projects.CountDocuments(sessCtx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return r.deleteProjectTree(sessCtx, id)
	})
}

// deleteProjectTree removes a project with all its tasks; must run inside a transaction
func (r *MongoRepository) deleteProjectTree(sessCtx mongo.SessionContext, projectID int64) error {
	taskIDs, err := distinctIDs(sessCtx, r.Tasks, bson.M{"project_id": projectID})
	if err != nil {
		return err
	}
	if err := r.deleteTaskTrees(sessCtx, taskIDs); err != nil {
		return err
	}
	if _, err := r.Projects.DeleteOne(sessCtx, bson.M{"_id": projectID}); err != nil {
		return err
	}
	_, err = r.Activity.UpdateMany(sessCtx, bson.M{"project_id": projectID}, bson.M{"$set": bson.M{"project_id": nil}})
	return err
}

func (r *MongoRepository) AddProjectMember(ctx context.Context, projectID, userID int64) (bool, error) {
	res, err := r.Projects.UpdateOne(ctx, bson.M{"_id": projectID}, bson.M{
		"$addToSet": bson.M{"member_ids": userID},
	})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	if res.ModifiedCount > 0 {
		r.touchProject(ctx, projectID)
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoRepository) RemoveProjectMember(ctx context.Context, projectID, userID int64) (bool, error) {
	res, err := r.Projects.UpdateOne(ctx, bson.M{"_id": projectID}, bson.M{
		"$pull": bson.M{"member_ids": userID},
	})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	if res.ModifiedCount > 0 {
		r.touchProject(ctx, projectID)
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoRepository) touchProject(ctx context.Context, projectID int64) {
	_, _ = r.Projects.UpdateOne(ctx, bson.M{"_id": projectID}, bson.M{"$set": bson.M{"updated_at": time.Now()}})
}
