package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/web-mihir/manufacturer-website-server-side/internal/store"
)

// CatalogService covers products and reviews.
type CatalogService interface {
	Products(ctx context.Context) ([]bson.M, error)
	Product(ctx context.Context, id string) (bson.M, error)
	AddProduct(ctx context.Context, doc bson.M) (*store.InsertResult, error)
	UpdateProduct(ctx context.Context, id string, doc bson.M) (*store.UpdateResult, error)
	DeleteProduct(ctx context.Context, id string) (*store.DeleteResult, error)

	AddReview(ctx context.Context, doc bson.M) (*store.InsertResult, error)
	Reviews(ctx context.Context) ([]bson.M, error)
	ReviewsByEmail(ctx context.Context, email string) ([]bson.M, error)
	DeleteReview(ctx context.Context, id string) (*store.DeleteResult, error)
}

type catalogService struct {
	products store.Docs
	reviews  store.Docs
}

func NewCatalogService(products, reviews store.Docs) CatalogService {
	return &catalogService{products: products, reviews: reviews}
}

func (s *catalogService) Products(ctx context.Context) ([]bson.M, error) {
	return s.products.Find(ctx, bson.M{})
}

func (s *catalogService) Product(ctx context.Context, id string) (bson.M, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return s.products.FindOne(ctx, filter)
}

func (s *catalogService) AddProduct(ctx context.Context, doc bson.M) (*store.InsertResult, error) {
	// the store enforces no schema, so the required numeric fields are
	// checked here before the document is written verbatim
	if _, ok := doc["price"]; !ok {
		return nil, ErrMissingField
	}
	if _, ok := doc["quantity"]; !ok {
		return nil, ErrMissingField
	}
	return s.products.InsertOne(ctx, doc)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, doc bson.M) (*store.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return s.products.UpsertOne(ctx, filter, doc)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) (*store.DeleteResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return s.products.DeleteOne(ctx, filter)
}

func (s *catalogService) AddReview(ctx context.Context, doc bson.M) (*store.InsertResult, error) {
	return s.reviews.InsertOne(ctx, doc)
}

func (s *catalogService) Reviews(ctx context.Context) ([]bson.M, error) {
	return s.reviews.Find(ctx, bson.M{})
}

// ReviewsByEmail returns the author's reviews most-recent-first.
func (s *catalogService) ReviewsByEmail(ctx context.Context, email string) ([]bson.M, error) {
	docs, err := s.reviews.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	reverse(docs)
	return docs, nil
}

func (s *catalogService) DeleteReview(ctx context.Context, id string) (*store.DeleteResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return s.reviews.DeleteOne(ctx, filter)
}
