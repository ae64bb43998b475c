package repository

import (
	"context"
	"time"

	"taskhub/internal/tracker/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) CreateUser(ctx context.Context, user *model.User) error {
	id, err := r.nextID(ctx, CollectionUsers)
	if err != nil {
		return err
	}
	user.ID = id
	user.CreatedAt = time.Now()
	return insert(ctx, r.Users, user)
}

func (r *MongoRepository) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return findOne[model.User](ctx, r.Users, bson.M{"_id": id})
}

func (r *MongoRepository) GetUsersByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	if len(ids) == 0 {
		return []*model.User{}, nil
	}
	return findAll[model.User](ctx, r.Users, bson.M{"_id": bson.M{"$in": idArray(ids)}}, ascendingByID())
}

func (r *MongoRepository) FindUsers(ctx context.Context, search string) ([]*model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	return findAll[model.User](ctx, r.Users, buildUserFilter(search), opts)
}

func (r *MongoRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.inTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		res, err := r.Users.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return ErrNotFound
		}

		// 1. Owned projects go with their owner
		owned, err := distinctIDs(sessCtx, r.Projects, bson.M{"owner_id": id})
		if err != nil {
			return err
		}
		for _, projectID := range owned {
			if err := r.deleteProjectTree(sessCtx, projectID); err != nil {
				return err
			}
		}

		// 2. Weak references degrade to absent
		if _, err := r.Projects.UpdateMany(sessCtx, bson.M{"member_ids": id}, bson.M{"$pull": bson.M{"member_ids": id}}); err != nil {
			return err
		}
		weakRefs := []struct {
			coll  *mongo.Collection
			field string
		}{
			{r.Tasks, "assignee_id"},
			{r.Comments, "author_id"},
			{r.Attachments, "uploader_id"},
			{r.Activity, "actor_id"},
		}
		for _, c := range weakRefs {
			if _, err := c.coll.UpdateMany(sessCtx, bson.M{c.field: id}, bson.M{"$set": bson.M{c.field: nil}}); err != nil {
				return err
			}
		}
		return nil
	})
}
