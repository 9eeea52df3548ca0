package handlers

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web-mihir/manufacturer-website-server-side/internal/service"
	"github.com/web-mihir/manufacturer-website-server-side/internal/store"
)

var errNotStubbed = errors.New("not stubbed")

// MockUserService implements service.UserService for handler tests.
type MockUserService struct {
	UpsertFunc    func(ctx context.Context, email string, doc bson.M) (*store.UpdateResult, error)
	GetFunc       func(ctx context.Context, email string) (bson.M, error)
	ListFunc      func(ctx context.Context) ([]bson.M, error)
	IsAdminFunc   func(ctx context.Context, email string) (bool, error)
	MakeAdminFunc func(ctx context.Context, email string) (*store.UpdateResult, error)

	MakeAdminCalls int
}

func (m *MockUserService) Upsert(ctx context.Context, email string, doc bson.M) (*store.UpdateResult, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, email, doc)
	}
	return &store.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
}

func (m *MockUserService) Get(ctx context.Context, email string) (bson.M, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserService) List(ctx context.Context) ([]bson.M, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []bson.M{}, nil
}

func (m *MockUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if m.IsAdminFunc != nil {
		return m.IsAdminFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserService) MakeAdmin(ctx context.Context, email string) (*store.UpdateResult, error) {
	m.MakeAdminCalls++
	if m.MakeAdminFunc != nil {
		return m.MakeAdminFunc(ctx, email)
	}
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// MockCatalogService keeps products in a map so round-trip tests work
// without a database. Reviews fall back to stub funcs.
type MockCatalogService struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]bson.M

	AddReviewFunc      func(ctx context.Context, doc bson.M) (*store.InsertResult, error)
	ReviewsFunc        func(ctx context.Context) ([]bson.M, error)
	ReviewsByEmailFunc func(ctx context.Context, email string) ([]bson.M, error)
	DeleteReviewFunc   func(ctx context.Context, id string) (*store.DeleteResult, error)
}

func NewMockCatalog() *MockCatalogService {
	return &MockCatalogService{products: map[primitive.ObjectID]bson.M{}}
}

func (m *MockCatalogService) Products(context.Context) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []bson.M{}
	for _, d := range m.products {
		out = append(out, d)
	}
	return out, nil
}

func (m *MockCatalogService) Product(_ context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, service.ErrBadObjectID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[oid], nil
}

func (m *MockCatalogService) AddProduct(_ context.Context, doc bson.M) (*store.InsertResult, error) {
	if _, ok := doc["price"]; !ok {
		return nil, service.ErrMissingField
	}
	if _, ok := doc["quantity"]; !ok {
		return nil, service.ErrMissingField
	}
	id := primitive.NewObjectID()
	stored := bson.M{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	m.mu.Lock()
	m.products[id] = stored
	m.mu.Unlock()
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *MockCatalogService) UpdateProduct(_ context.Context, id string, doc bson.M) (*store.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, service.ErrBadObjectID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.products[oid]
	if !ok {
		stored = bson.M{"_id": oid}
		m.products[oid] = stored
	}
	for k, v := range doc {
		stored[k] = v
	}
	res := &store.UpdateResult{Acknowledged: true}
	if ok {
		res.MatchedCount, res.ModifiedCount = 1, 1
	} else {
		res.UpsertedCount, res.UpsertedID = 1, oid
	}
	return res, nil
}

func (m *MockCatalogService) DeleteProduct(_ context.Context, id string) (*store.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, service.ErrBadObjectID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	res := &store.DeleteResult{Acknowledged: true}
	if _, ok := m.products[oid]; ok {
		res.DeletedCount = 1
		delete(m.products, oid)
	}
	return res, nil
}

func (m *MockCatalogService) AddReview(ctx context.Context, doc bson.M) (*store.InsertResult, error) {
	if m.AddReviewFunc != nil {
		return m.AddReviewFunc(ctx, doc)
	}
	return &store.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *MockCatalogService) Reviews(ctx context.Context) ([]bson.M, error) {
	if m.ReviewsFunc != nil {
		return m.ReviewsFunc(ctx)
	}
	return []bson.M{}, nil
}

func (m *MockCatalogService) ReviewsByEmail(ctx context.Context, email string) ([]bson.M, error) {
	if m.ReviewsByEmailFunc != nil {
		return m.ReviewsByEmailFunc(ctx, email)
	}
	return []bson.M{}, nil
}

func (m *MockCatalogService) DeleteReview(ctx context.Context, id string) (*store.DeleteResult, error) {
	if m.DeleteReviewFunc != nil {
		return m.DeleteReviewFunc(ctx, id)
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// MockOrderService implements service.OrderService.
type MockOrderService struct {
	PlaceFunc    func(ctx context.Context, doc bson.M) (*store.InsertResult, error)
	ConfirmFunc  func(ctx context.Context, orderID, productID string, orderQty int) (*service.ConfirmResult, error)
	MarkPaidFunc func(ctx context.Context, orderID, txID string) (*store.UpdateResult, error)
	ByEmailFunc  func(ctx context.Context, email string) ([]bson.M, error)
	CancelFunc   func(ctx context.Context, orderID string) (*store.DeleteResult, error)
	AllFunc      func(ctx context.Context) ([]bson.M, error)
	GetFunc      func(ctx context.Context, orderID string) (bson.M, error)
}

func (m *MockOrderService) Place(ctx context.Context, doc bson.M) (*store.InsertResult, error) {
	if m.PlaceFunc != nil {
		return m.PlaceFunc(ctx, doc)
	}
	return &store.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *MockOrderService) Confirm(ctx context.Context, orderID, productID string, orderQty int) (*service.ConfirmResult, error) {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, orderID, productID, orderQty)
	}
	return nil, errNotStubbed
}

func (m *MockOrderService) MarkPaid(ctx context.Context, orderID, txID string) (*store.UpdateResult, error) {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, orderID, txID)
	}
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *MockOrderService) ByEmail(ctx context.Context, email string) ([]bson.M, error) {
	if m.ByEmailFunc != nil {
		return m.ByEmailFunc(ctx, email)
	}
	return []bson.M{}, nil
}

func (m *MockOrderService) Cancel(ctx context.Context, orderID string) (*store.DeleteResult, error) {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, orderID)
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *MockOrderService) All(ctx context.Context) ([]bson.M, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return []bson.M{}, nil
}

func (m *MockOrderService) Get(ctx context.Context, orderID string) (bson.M, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, orderID)
	}
	return nil, nil
}

// MockPaymentService records calls and returns a canned secret.
type MockPaymentService struct {
	Calls      int
	LastAmount int64
	Secret     string
	Err        error
}

func (m *MockPaymentService) CreateIntent(_ context.Context, amount int64) (string, error) {
	m.Calls++
	m.LastAmount = amount
	if m.Err != nil {
		return "", m.Err
	}
	if m.Secret != "" {
		return m.Secret, nil
	}
	return "pi_test_secret", nil
}
