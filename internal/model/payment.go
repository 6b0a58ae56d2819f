package model

import "time"

// Payment records a processed charge for an order.  The gateway call is
// simulated, so no failure path exists and Status is always "completed".
//
// Fields:
//  ID            – primary identifier.
//  OrderID       – order the payment settles.
//  Amount        – amount charged, the order total at payment time.
//  Method        – credit_card, pix or bank_transfer.
//  Gateway       – stripe, pagseguro or mercadopago.
//  TransactionID – synthesized gateway transaction reference.
//  Status        – always "completed" in this model.
//  CreatedAt     – when the payment was recorded.
type Payment struct {
	ID            uint64    `json:"id"`
	OrderID       uint64    `json:"order_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Gateway       string    `json:"gateway"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
