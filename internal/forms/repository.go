package forms

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listLimit caps admin listings; submissions are never paginated.
const listLimit = 500

// Repository persists form submissions. Implementations must return
// listings newest-first by created_at.
type Repository interface {
	Insert(ctx context.Context, collection string, doc bson.M) error
	List(ctx context.Context, collection string) ([]bson.M, error)
}

// MongoRepository stores submissions in MongoDB, one collection per
// form kind.
type MongoRepository struct {
	db *mongo.Database
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{db: db}
}

func (r *MongoRepository) Insert(ctx context.Context, collection string, doc bson.M) error {
	_, err := r.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (r *MongoRepository) List(ctx context.Context, collection string) ([]bson.M, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)
	cur, err := r.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]bson.M, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MemoryRepository is the in-memory twin of MongoRepository for tests.
type MemoryRepository struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{collections: make(map[string][]bson.M)}
}

func (r *MemoryRepository) Insert(ctx context.Context, collection string, doc bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := bson.M{}
	for k, v := range doc {
		cp[k] = v
	}
	r.collections[collection] = append(r.collections[collection], cp)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, collection string) ([]bson.M, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]bson.M, 0, len(r.collections[collection]))
	for _, d := range r.collections[collection] {
		cp := bson.M{}
		for k, v := range d {
			cp[k] = v
		}
		out = append(out, cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := out[i]["created_at"].(time.Time)
		tj, _ := out[j]["created_at"].(time.Time)
		return ti.After(tj)
	})
	if len(out) > listLimit {
		out = out[:listLimit]
	}
	return out, nil
}
