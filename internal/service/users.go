package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/web-mihir/manufacturer-website-server-side/internal/store"
)

type UserService interface {
	Upsert(ctx context.Context, email string, doc bson.M) (*store.UpdateResult, error)
	Get(ctx context.Context, email string) (bson.M, error)
	List(ctx context.Context) ([]bson.M, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, email string) (*store.UpdateResult, error)
}

type userService struct {
	users store.Docs
}

func NewUserService(users store.Docs) UserService { return &userService{users: users} }

func (s *userService) Upsert(ctx context.Context, email string, doc bson.M) (*store.UpdateResult, error) {
	return s.users.UpsertOne(ctx, bson.M{"email": email}, doc)
}

func (s *userService) Get(ctx context.Context, email string) (bson.M, error) {
	return s.users.FindOne(ctx, bson.M{"email": email})
}

// List returns users most-recently-upserted first.
func (s *userService) List(ctx context.Context) ([]bson.M, error) {
	docs, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reverse(docs)
	return docs, nil
}

// IsAdmin fails closed: an absent user document has no role field, so the
// assertion below denies without dereferencing anything.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	doc, err := s.Get(ctx, email)
	if err != nil {
		return false, err
	}
	role, _ := doc["role"].(string)
	return role == "admin", nil
}

func (s *userService) MakeAdmin(ctx context.Context, email string) (*store.UpdateResult, error) {
	return s.users.UpsertOne(ctx, bson.M{"email": email}, bson.M{"role": "admin"})
}

func reverse(docs []bson.M) {
	for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
		docs[i], docs[j] = docs[j], docs[i]
	}
}
