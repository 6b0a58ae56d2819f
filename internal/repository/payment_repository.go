package repository

import (
	"time"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/store"
)

// PaymentRepo stores payment records.  The gateway is simulated, so every
// stored payment is "completed"; failed attempts never reach this layer.
type PaymentRepo struct {
	payments *store.Collection[model.Payment]
}

// NewPaymentRepo returns a PaymentRepo over a fresh collection.
func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{payments: store.NewCollection[model.Payment]()}
}

// Create records a completed payment for an order.
func (r *PaymentRepo) Create(orderID uint64, amount float64, method, gateway, transactionID string) *model.Payment {
	return r.payments.Insert(func(id uint64) *model.Payment {
		return &model.Payment{
			ID:            id,
			OrderID:       orderID,
			Amount:        amount,
			Method:        method,
			Gateway:       gateway,
			TransactionID: transactionID,
			Status:        "completed",
			CreatedAt:     time.Now().UTC(),
		}
	})
}

// ListByOrder returns the payments recorded for an order.
func (r *PaymentRepo) ListByOrder(orderID uint64) []*model.Payment {
	return r.payments.Find(func(p *model.Payment) bool { return p.OrderID == orderID })
}
