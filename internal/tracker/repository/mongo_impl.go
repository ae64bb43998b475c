package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	CollectionUsers       = "users"
	CollectionProjects    = "projects"
	CollectionTasks       = "tasks"
	CollectionComments    = "comments"
	CollectionAttachments = "attachments"
	CollectionActivity    = "activity_logs"
	CollectionCounters    = "counters"
)

type MongoRepository struct {
	Users       *mongo.Collection
	Projects    *mongo.Collection
	Tasks       *mongo.Collection
	Comments    *mongo.Collection
	Attachments *mongo.Collection
	Activity    *mongo.Collection
	Counters    *mongo.Collection
	Client      *mongo.Client // for cascading deletes in transactions
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		Users:       db.Collection(CollectionUsers),
		Projects:    db.Collection(CollectionProjects),
		Tasks:       db.Collection(CollectionTasks),
		Comments:    db.Collection(CollectionComments),
		Attachments: db.Collection(CollectionAttachments),
		Activity:    db.Collection(CollectionActivity),
		Counters:    db.Collection(CollectionCounters),
		Client:      db.Client(),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// 1. Users: username and email are unique
	_, err := r.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	// 2. Projects: visibility lookups by owner and member
	_, err = r.Projects.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}, Options: options.Index().SetName("idx_owner")},
		{Keys: bson.D{{Key: "member_ids", Value: 1}}, Options: options.Index().SetName("idx_members")},
	})
	if err != nil {
		return fmt.Errorf("projects indexes: %w", err)
	}

	// 3. Tasks: hierarchical key and assignee scoping
	_, err = r.Tasks.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "_id", Value: 1}}, Options: options.Index().SetName("idx_project_task")},
		{Keys: bson.D{{Key: "assignee_id", Value: 1}}, Options: options.Index().SetName("idx_assignee")},
	})
	if err != nil {
		return fmt.Errorf("tasks indexes: %w", err)
	}

	// 4. Comments and attachments hang off their task
	for _, coll := range []*mongo.Collection{r.Comments, r.Attachments} {
		_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "task_id", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_task_child"),
		})
		if err != nil {
			return fmt.Errorf("%s indexes: %w", coll.Name(), err)
		}
	}

	return nil
}

// nextID allocates the next numeric id of a collection
func (r *MongoRepository) nextID(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.Counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate %s id: %w", name, err)
	}
	return counter.Seq, nil
}

// inTransaction runs fn inside a session transaction
func (r *MongoRepository) inTransaction(ctx context.Context, fn func(sessCtx mongo.SessionContext) error) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]*T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc interface{}) error {
	_, err := coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func ascendingByID() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

// distinctIDs collects the _id values matching filter
func distinctIDs(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]int64, error) {
	values, err := coll.Distinct(ctx, "_id", filter)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		switch id := v.(type) {
		case int64:
			ids = append(ids, id)
		case int32:
			ids = append(ids, int64(id))
		}
	}
	return ids, nil
}
