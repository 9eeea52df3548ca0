package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/web-mihir/manufacturer-website-server-side/internal/store"
)

// ConfirmResult carries both step results of an order confirmation, in the
// shape the client expects.
type ConfirmResult struct {
	UpdateOrder   *store.UpdateResult `json:"updateOrder"`
	UpdateProduct *store.UpdateResult `json:"updateProduct"`
}

type OrderService interface {
	Place(ctx context.Context, doc bson.M) (*store.InsertResult, error)
	Confirm(ctx context.Context, orderID, productID string, orderQty int) (*ConfirmResult, error)
	MarkPaid(ctx context.Context, orderID, txID string) (*store.UpdateResult, error)
	ByEmail(ctx context.Context, email string) ([]bson.M, error)
	Cancel(ctx context.Context, orderID string) (*store.DeleteResult, error)
	All(ctx context.Context) ([]bson.M, error)
	Get(ctx context.Context, orderID string) (bson.M, error)
}

type orderService struct {
	orders   store.Docs
	products store.Docs
}

func NewOrderService(orders, products store.Docs) OrderService {
	return &orderService{orders: orders, products: products}
}

func (s *orderService) Place(ctx context.Context, doc bson.M) (*store.InsertResult, error) {
	return s.orders.InsertOne(ctx, doc)
}

// Confirm marks the order shipped, then re-reads the product and writes the
// decremented stock back. The two writes are independent: there is no
// transaction and no rollback of the status change if the product update
// fails, and concurrent confirmations of the same product can each read the
// same starting quantity (a lost update). This matches the deployed
// behavior.
func (s *orderService) Confirm(ctx context.Context, orderID, productID string, orderQty int) (*ConfirmResult, error) {
	orderFilter, err := idFilter(orderID)
	if err != nil {
		return nil, err
	}
	updateOrder, err := s.orders.UpsertOne(ctx, orderFilter, bson.M{"status": "shipped"})
	if err != nil {
		return nil, err
	}

	productFilter, err := idFilter(productID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindOne(ctx, productFilter)
	if err != nil {
		return nil, err
	}
	quantity := ToInt(product["quantity"]) - orderQty
	availability := stockAvailability(quantity, ToInt(product["min_order_quantity"]))
	updateProduct, err := s.products.UpsertOne(ctx, productFilter, bson.M{
		"quantity":     quantity,
		"availability": availability,
	})
	if err != nil {
		return nil, err
	}

	return &ConfirmResult{UpdateOrder: updateOrder, UpdateProduct: updateProduct}, nil
}

func stockAvailability(quantity, minOrder int) string {
	if quantity < minOrder {
		return "Out Of Stock"
	}
	return "In stock!"
}

func (s *orderService) MarkPaid(ctx context.Context, orderID, txID string) (*store.UpdateResult, error) {
	filter, err := idFilter(orderID)
	if err != nil {
		return nil, err
	}
	return s.orders.UpsertOne(ctx, filter, bson.M{"payment": "paid", "TxId": txID})
}

func (s *orderService) ByEmail(ctx context.Context, email string) ([]bson.M, error) {
	return s.orders.Find(ctx, bson.M{"email": email})
}

func (s *orderService) Cancel(ctx context.Context, orderID string) (*store.DeleteResult, error) {
	filter, err := idFilter(orderID)
	if err != nil {
		return nil, err
	}
	return s.orders.DeleteOne(ctx, filter)
}

func (s *orderService) All(ctx context.Context) ([]bson.M, error) {
	return s.orders.Find(ctx, bson.M{})
}

func (s *orderService) Get(ctx context.Context, orderID string) (bson.M, error) {
	filter, err := idFilter(orderID)
	if err != nil {
		return nil, err
	}
	return s.orders.FindOne(ctx, filter)
}
