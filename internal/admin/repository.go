package admin

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Admin represents the single administrative identity.
type Admin struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Repository defines persistence operations for admin identities
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	Insert(ctx context.Context, a *Admin) error
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new repository for the given collection
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	var a Admin
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) Insert(ctx context.Context, a *Admin) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, a)
	return err
}

// MemoryRepository is the in-memory twin used by unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Admin
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Admin)}
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.store[username]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, a *Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	cp := *a
	r.store[a.Username] = &cp
	return nil
}
