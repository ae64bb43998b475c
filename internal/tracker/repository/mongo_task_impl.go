package repository

import (
	"context"
	"time"

	"taskhub/internal/tracker/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) CreateTask(ctx context.Context, task *model.Task) error {
	id, err := r.nextID(ctx, CollectionTasks)
	if err != nil {
		return err
	}
	now := time.Now()
	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return insert(ctx, r.Tasks, task)
}

func (r *MongoRepository) GetTask(ctx context.Context, projectID, taskID int64) (*model.Task, error) {
	return findOne[model.Task](ctx, r.Tasks, bson.M{"_id": taskID, "project_id": projectID})
}

func (r *MongoRepository) FindTasks(ctx context.Context, scope model.ListScope, filter model.TaskFilter) ([]*model.Task, error) {
	if scope.Empty {
		return []*model.Task{}, nil
	}
	return findAll[model.Task](ctx, r.Tasks, buildTaskFilter(scope, filter), ascendingByID())
}

func (r *MongoRepository) UpdateTask(ctx context.Context, task *model.Task) error {
	task.UpdatedAt = time.Now()
	res, err := r.Tasks.UpdateOne(ctx, bson.M{"_id": task.ID, "project_id": task.ProjectID}, bson.M{
		"$set": bson.M{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"priority":    task.Priority,
			"due_date":    task.DueDate,
			"assignee_id": task.AssigneeID,
			"updated_at":  task.UpdatedAt,
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

func (r *MongoRepository) DeleteTask(ctx context.Context, projectID, taskID int64) error {
	return r.inTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		n, err := r.Tasks.CountDocuments(sessCtx, bson.M{"_id": taskID, "project_id": projectID})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return r.deleteTaskTrees(sessCtx, []int64{taskID})
	})
}

// deleteTaskTrees removes tasks with their comments and attachments; must run inside a transaction
func (r *MongoRepository) deleteTaskTrees(sessCtx mongo.SessionContext, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	in := bson.M{"$in": idArray(taskIDs)}

	if _, err := r.Comments.DeleteMany(sessCtx, bson.M{"task_id": in}); err != nil {
		return err
	}
	if _, err := r.Attachments.DeleteMany(sessCtx, bson.M{"task_id": in}); err != nil {
		return err
	}
	if _, err := r.Tasks.DeleteMany(sessCtx, bson.M{"_id": in}); err != nil {
		return err
	}
	_, err := r.Activity.UpdateMany(sessCtx, bson.M{"task_id": in}, bson.M{"$set": bson.M{"task_id": nil}})
	return err
}
