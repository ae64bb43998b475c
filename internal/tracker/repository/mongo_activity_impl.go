package repository

import (
	"context"
	"time"

	"taskhub/internal/tracker/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoActivityRepository implements ActivityRepository using MongoDB
type MongoActivityRepository struct {
	Collection *mongo.Collection
	ids        *MongoRepository
}

// NewMongoActivityRepository shares the counters of repo for entry ids
func NewMongoActivityRepository(repo *MongoRepository) *MongoActivityRepository {
	return &MongoActivityRepository{
		Collection: repo.Activity,
		ids:        repo,
	}
}

// EnsureActivityIndexes creates indexes for efficient querying
func (r *MongoActivityRepository) EnsureActivityIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Project feed: project_id + newest first
		{
			Keys: bson.D{
				{Key: "project_id", Value: 1},
				{Key: "timestamp", Value: -1},
				{Key: "_id", Value: -1},
			},
			Options: options.Index().SetName("idx_project_feed"),
		},
		// Task feed
		{
			Keys: bson.D{
				{Key: "task_id", Value: 1},
				{Key: "timestamp", Value: -1},
				{Key: "_id", Value: -1},
			},
			Options: options.Index().SetName("idx_task_feed"),
		},
		{
			Keys:    bson.D{{Key: "actor_id", Value: 1}},
			Options: options.Index().SetName("idx_actor"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// CreateActivity appends a new entry (append-only)
func (r *MongoActivityRepository) CreateActivity(ctx context.Context, entry *model.ActivityLog) error {
	id, err := r.ids.nextID(ctx, CollectionActivity)
	if err != nil {
		return err
	}
	entry.ID = id
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err = r.Collection.InsertOne(ctx, entry)
	return err
}

// FindActivity returns one page of entries, newest first
func (r *MongoActivityRepository) FindActivity(ctx context.Context, filter model.ActivityFilter) ([]*model.ActivityLog, int64, error) {
	query := buildActivityFilter(filter)

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := pageSkip(filter.Page, filter.Size)

	// ids grow monotonically, so they break timestamp ties in creation order
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Size))

	results, err := findAll[model.ActivityLog](ctx, r.Collection, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
