package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Write acknowledgments re-exposed with the wire-level field names the
// original API's clients expect.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Docs is the slice of collection behavior the services depend on.
// FindOne reports an absent document as (nil, nil), not an error.
type Docs interface {
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	InsertOne(ctx context.Context, doc bson.M) (*InsertResult, error)
	UpsertOne(ctx context.Context, filter, set bson.M) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error)
}

// Collection adapts a mongo collection to Docs.
type Collection struct {
	coll *mongo.Collection
}

func (c *Collection) FindOne(ctx context.Context, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Collection) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cur, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Collection) InsertOne(ctx context.Context, doc bson.M) (*InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (c *Collection) UpsertOne(ctx context.Context, filter, set bson.M) (*UpdateResult, error) {
	opts := options.Update().SetUpsert(true)
	res, err := c.coll.UpdateOne(ctx, filter, bson.M{"$set": set}, opts)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// Store holds the collections the route table works against. The storefront
// data lives in the manufacture database; portfolio and blog content keep
// their own databases, as deployed.
type Store struct {
	Products *Collection
	Users    *Collection
	Reviews  *Collection
	Orders   *Collection

	Information *Collection
	Projects    *Collection
	Blogs       *Collection

	client *mongo.Client
}

// Open builds the client and collection handles. The connection itself is
// verified separately via Ping so a down database at boot is survivable.
func Open(ctx context.Context, uri string) (*Store, func(), error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	manufacture := client.Database("manufacture")
	portfolio := client.Database("portfolio")
	blogs := client.Database("blogs")

	s := &Store{
		Products:    &Collection{coll: manufacture.Collection("products")},
		Users:       &Collection{coll: manufacture.Collection("users")},
		Reviews:     &Collection{coll: manufacture.Collection("reviews")},
		Orders:      &Collection{coll: manufacture.Collection("orders")},
		Information: &Collection{coll: portfolio.Collection("information")},
		Projects:    &Collection{coll: portfolio.Collection("projects")},
		Blogs:       &Collection{coll: blogs.Collection("blog")},
		client:      client,
	}
	cleanup := func() {
		_ = client.Disconnect(context.Background())
	}
	return s, cleanup, nil
}

// Ping checks the boot-time connection attempt.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}
