package repository

import (
	"time"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/store"
)

// OrderRepo provides access to client orders.  Totals are computed by the
// commerce service before insertion; the repository only stores and
// transitions.
type OrderRepo struct {
	orders *store.Collection[model.Order]
}

// NewOrderRepo returns an OrderRepo over a fresh collection.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: store.NewCollection[model.Order]()}
}

// NewOrder carries everything the repository needs to persist an order.
type NewOrder struct {
	SessionID       uint64
	PhotographerID  uint64
	ClientName      string
	ClientEmail     string
	OrderType       string
	Items           []model.OrderItem
	Subtotal        float64
	Tax             float64
	Total           float64
	DeliveryMethod  string
	DeliveryAddress map[string]any
	Notes           string
	Deadline        time.Time
}

// Create stores a pending, unpaid order.
func (r *OrderRepo) Create(o NewOrder) *model.Order {
	now := time.Now().UTC()
	return r.orders.Insert(func(id uint64) *model.Order {
		return &model.Order{
			ID:              id,
			SessionID:       o.SessionID,
			PhotographerID:  o.PhotographerID,
			ClientName:      o.ClientName,
			ClientEmail:     o.ClientEmail,
			OrderType:       o.OrderType,
			Items:           o.Items,
			Subtotal:        o.Subtotal,
			Tax:             o.Tax,
			Total:           o.Total,
			Status:          model.OrderPending,
			PaymentStatus:   model.PaymentPending,
			DeliveryMethod:  o.DeliveryMethod,
			DeliveryAddress: o.DeliveryAddress,
			Notes:           o.Notes,
			Deadline:        o.Deadline,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	})
}

// GetByID returns the order with the given id.
func (r *OrderRepo) GetByID(id uint64) (*model.Order, error) {
	order, ok := r.orders.Get(id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByIDForPhotographer returns the order when the photographer owns it.
func (r *OrderRepo) GetByIDForPhotographer(id, photographerID uint64) (*model.Order, error) {
	order, ok := r.orders.Get(id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	if order.PhotographerID != photographerID {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListByPhotographer returns the photographer's orders in creation order,
// optionally filtered by status and/or session.
func (r *OrderRepo) ListByPhotographer(photographerID uint64, status string, sessionID uint64) []*model.Order {
	return r.orders.Find(func(o *model.Order) bool {
		if o.PhotographerID != photographerID {
			return false
		}
		if status != "" && o.Status != status {
			return false
		}
		if sessionID != 0 && o.SessionID != sessionID {
			return false
		}
		return true
	})
}

// SetStatus transitions an order through its status table.  The check
// and the write happen inside one Update call so concurrent transitions
// cannot both pass the table check.
func (r *OrderRepo) SetStatus(id uint64, to string) error {
	err := ErrOrderNotFound
	r.orders.Update(id, func(o *model.Order) {
		if !model.OrderCanTransition(o.Status, to) {
			err = ErrInvalidTransition
			return
		}
		o.Status = to
		o.UpdatedAt = time.Now().UTC()
		err = nil
	})
	return err
}

// MarkPaid records a successful payment: payment status becomes paid and
// the order is forced to approved.  The caller guards against double
// payment before invoking this.
func (r *OrderRepo) MarkPaid(id uint64) error {
	ok := r.orders.Update(id, func(o *model.Order) {
		o.PaymentStatus = model.PaymentPaid
		o.Status = model.OrderApproved
		o.UpdatedAt = time.Now().UTC()
	})
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}
