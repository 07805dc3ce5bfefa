package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const colApplications = "applications"

// Ensure MongoStore implements Store at compile time.
var _ Store = (*MongoStore)(nil)

// MongoStore persists application records in a MongoDB collection.
// The caller owns the *mongo.Client lifecycle; MongoStore never closes it.
type MongoStore struct {
	col *mongo.Collection
}

// NewMongoStore returns a MongoStore over the applications collection of db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(colApplications)}
}

// Migrate creates the owner index used by ListByOwner.
func (s *MongoStore) Migrate(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("tracker: migrate applications indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) ListByOwner(ctx context.Context, ownerID string) ([]Application, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.col.Find(ctx, bson.M{"userId": ownerID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("tracker: list applications: %w", err)
	}
	defer cursor.Close(ctx)

	apps := make([]Application, 0)
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("tracker: list applications decode: %w", err)
	}
	return apps, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Application, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored record.
		return nil, ErrNotFound
	}

	var a Application
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if isNoDocuments(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("tracker: get application: %w", err)
	}
	return &a, nil
}

func (s *MongoStore) Insert(ctx context.Context, a *Application) error {
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	if _, err := s.col.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("tracker: insert application: %w", err)
	}
	return nil
}

func (s *MongoStore) Apply(ctx context.Context, id string, p Patch, now time.Time) (*Application, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": now}
	if p.CompanyName != nil {
		set["companyName"] = *p.CompanyName
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.JobLink != nil {
		set["jobLink"] = *p.JobLink
	}
	if p.DateApplied != nil {
		set["dateApplied"] = *p.DateApplied
	}
	if p.Salary != nil {
		set["salary"] = *p.Salary
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	if p.Priority != nil {
		set["priority"] = *p.Priority
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a Application
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&a)
	if err != nil {
		if isNoDocuments(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("tracker: update application: %w", err)
	}
	return &a, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("tracker: delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// isNoDocuments returns true when err indicates no MongoDB documents found.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
