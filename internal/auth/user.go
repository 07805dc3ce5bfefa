package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const colUsers = "users"

// User is the persisted auth user record. The password hash never leaves
// this package.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"passwordHash"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"`
}

// ─── Sentinel errors ─────────────────────────────────────────────────────────

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = fmt.Errorf("user not found")

// ErrDuplicateEmail is returned when registering an email that already exists.
var ErrDuplicateEmail = fmt.Errorf("email already registered")

// UserStore persists auth users.
type UserStore interface {
	Insert(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

// ─── Mongo implementation ────────────────────────────────────────────────────

var _ UserStore = (*MongoUserStore)(nil)

// MongoUserStore persists users in a MongoDB collection.
type MongoUserStore struct {
	col *mongo.Collection
}

// NewMongoUserStore returns a MongoUserStore over the users collection of db.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection(colUsers)}
}

// Migrate creates the unique email index.
func (s *MongoUserStore) Migrate(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("auth: migrate users indexes: %w", err)
	}
	return nil
}

func (s *MongoUserStore) Insert(ctx context.Context, u *User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("auth: insert user: %w", err)
	}
	return nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("auth: find user by email: %w", err)
	}
	return &u, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	var u User
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("auth: find user by id: %w", err)
	}
	return &u, nil
}

// isDuplicateKey checks if a MongoDB error is a duplicate key violation.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "E11000")
}

// ─── Memory implementation ───────────────────────────────────────────────────

var _ UserStore = (*MemoryUserStore)(nil)

// MemoryUserStore keeps users in memory. Used by tests.
type MemoryUserStore struct {
	mu      sync.Mutex
	byID    map[string]User
	byEmail map[string]string
}

// NewMemoryUserStore returns an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

func (s *MemoryUserStore) Insert(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return ErrDuplicateEmail
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	s.byID[u.ID.Hex()] = *u
	s.byEmail[u.Email] = u.ID.Hex()
	return nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := s.byID[id]
	return &u, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
