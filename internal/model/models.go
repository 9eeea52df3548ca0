package model

// The backing store is schema-less; documents are inserted and returned
// verbatim as bson.M, so only the request bodies the server actually
// decodes get types here.

// ConfirmOrderRequest is the body of PUT /order-confirm/:orderId. The
// quantity arrives as a number or a numeric string depending on the client.
type ConfirmOrderRequest struct {
	ProductID     string `json:"product_id"`
	OrderQuantity any    `json:"order_quantity"`
}

// OrderPaymentRequest is the body of PUT /order-payment/:orderId.
type OrderPaymentRequest struct {
	TxID string `json:"TxId"`
}

// PaymentRequest is the body of POST /create-payment-intent.
type PaymentRequest struct {
	TotalPrice any `json:"total_price"`
}
