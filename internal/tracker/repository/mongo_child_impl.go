package repository

import (
	"context"
	"time"

	"taskhub/internal/tracker/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	id, err := r.nextID(ctx, CollectionComments)
	if err != nil {
		return err
	}
	now := time.Now()
	comment.ID = id
	comment.CreatedAt = now
	comment.UpdatedAt = now
	return insert(ctx, r.Comments, comment)
}

func (r *MongoRepository) GetComment(ctx context.Context, taskID, commentID int64) (*model.Comment, error) {
	return findOne[model.Comment](ctx, r.Comments, bson.M{"_id": commentID, "task_id": taskID})
}

func (r *MongoRepository) FindComments(ctx context.Context, scope model.ListScope, taskID int64) ([]*model.Comment, error) {
	if scope.Empty {
		return []*model.Comment{}, nil
	}
	return findAll[model.Comment](ctx, r.Comments, bson.M{"task_id": taskID}, ascendingByID())
}

// UpdateComment only touches the body; the author never changes
func (r *MongoRepository) UpdateComment(ctx context.Context, comment *model.Comment) error {
	comment.UpdatedAt = time.Now()
	return updateChild(ctx, r.Comments, comment.TaskID, comment.ID, bson.M{
		"body":       comment.Body,
		"updated_at": comment.UpdatedAt,
	})
}

func (r *MongoRepository) DeleteComment(ctx context.Context, taskID, commentID int64) error {
	return deleteChild(ctx, r.Comments, taskID, commentID)
}

func (r *MongoRepository) CreateAttachment(ctx context.Context, attachment *model.Attachment) error {
	id, err := r.nextID(ctx, CollectionAttachments)
	if err != nil {
		return err
	}
	attachment.ID = id
	attachment.UploadedAt = time.Now()
	return insert(ctx, r.Attachments, attachment)
}

func (r *MongoRepository) GetAttachment(ctx context.Context, taskID, attachmentID int64) (*model.Attachment, error) {
	return findOne[model.Attachment](ctx, r.Attachments, bson.M{"_id": attachmentID, "task_id": taskID})
}

func (r *MongoRepository) FindAttachments(ctx context.Context, scope model.ListScope, taskID int64) ([]*model.Attachment, error) {
	if scope.Empty {
		return []*model.Attachment{}, nil
	}
	return findAll[model.Attachment](ctx, r.Attachments, bson.M{"task_id": taskID}, ascendingByID())
}

func (r *MongoRepository) UpdateAttachment(ctx context.Context, attachment *model.Attachment) error {
	return updateChild(ctx, r.Attachments, attachment.TaskID, attachment.ID, bson.M{
		"file":        attachment.File,
		"description": attachment.Description,
	})
}

func (r *MongoRepository) DeleteAttachment(ctx context.Context, taskID, attachmentID int64) error {
	return deleteChild(ctx, r.Attachments, taskID, attachmentID)
}

func updateChild(ctx context.Context, coll *mongo.Collection, taskID, id int64, set bson.M) error {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id, "task_id": taskID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteChild(ctx context.Context, coll *mongo.Collection, taskID, id int64) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id, "task_id": taskID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
