package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/queue"
	"github.com/photoflow/photoflow/internal/repository"
)

// Deadline policies for order fulfilment.  Client-created orders get a
// week; internally created orders (test data, manual entry) get two.
const (
	ClientDeadlineDays   = 7
	InternalDeadlineDays = 14
)

// CommerceService coordinates packages, orders and payments.  The payment
// guard is a check-then-write, so it runs under the service mutex.
type CommerceService struct {
	mu       sync.Mutex
	Packages *repository.PackageRepo
	Orders   *repository.OrderRepo
	Payments *repository.PaymentRepo
	// PublishPaid is called after a successful payment.  Wired to the
	// RabbitMQ publisher in production and left nil in tests.
	PublishPaid func(ctx context.Context, ev queue.OrderPaidEvent) error
}

// NewCommerceService returns a CommerceService over the given repos.
func NewCommerceService(packages *repository.PackageRepo, orders *repository.OrderRepo, payments *repository.PaymentRepo) *CommerceService {
	return &CommerceService{Packages: packages, Orders: orders, Payments: payments}
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	PackageID uint64         `json:"package_id"`
	Quantity  int            `json:"quantity"`
	Options   map[string]any `json:"options"`
}

// OrderRequest carries the client's order for a session.
type OrderRequest struct {
	OrderType       string
	Items           []OrderItemRequest
	DeliveryMethod  string
	DeliveryAddress map[string]any
	Notes           string
	DeadlineDays    int // caller-supplied policy, see the constants above
}

// CreateOrder resolves every requested package inside the session
// photographer's active set, prices the lines and stores a pending order.
// Subtotal is the sum of unit price times quantity, tax is the flat rate
// on the subtotal, total is their sum.
func (s *CommerceService) CreateOrder(session *model.Session, req OrderRequest) (*model.Order, error) {
	items := make([]model.OrderItem, 0, len(req.Items))
	subtotal := 0.0
	for _, item := range req.Items {
		pkg, err := s.Packages.GetActive(item.PackageID, session.PhotographerID)
		if err != nil {
			return nil, err
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		options := item.Options
		if options == nil {
			options = map[string]any{}
		}
		lineTotal := pkg.Price * float64(qty)
		subtotal += lineTotal
		items = append(items, model.OrderItem{
			PackageID:   pkg.ID,
			PackageName: pkg.Name,
			Quantity:    qty,
			UnitPrice:   pkg.Price,
			Total:       lineTotal,
			Options:     options,
		})
	}
	tax := subtotal * model.TaxRate
	total := subtotal + tax

	deadlineDays := req.DeadlineDays
	if deadlineDays <= 0 {
		deadlineDays = ClientDeadlineDays
	}
	delivery := req.DeliveryMethod
	if delivery == "" {
		delivery = "download"
	}

	order := s.Orders.Create(repository.NewOrder{
		SessionID:       session.ID,
		PhotographerID:  session.PhotographerID,
		ClientName:      session.ClientName,
		ClientEmail:     session.ClientEmail,
		OrderType:       req.OrderType,
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		DeliveryMethod:  delivery,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Deadline:        time.Now().UTC().AddDate(0, 0, deadlineDays),
	})
	return order, nil
}

// UpdateStatus transitions an order owned by the photographer through the
// order status table.
func (s *CommerceService) UpdateStatus(orderID, photographerID uint64, status string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.Orders.GetByIDForPhotographer(orderID, photographerID)
	if err != nil {
		return nil, err
	}
	if err := s.Orders.SetStatus(order.ID, status); err != nil {
		return nil, err
	}
	return s.Orders.GetByID(order.ID)
}

// ProcessPayment settles an order with the simulated gateway.  A second
// payment on the same order fails with ErrAlreadyPaid, and cancelled
// orders cannot be paid at all.  On success a completed payment row is
// stored, the order moves to paid/approved and a paid event is published.
// The publish happens after the mutex is released; a slow broker must not
// stall payments on other orders.
func (s *CommerceService) ProcessPayment(ctx context.Context, orderID uint64, method, gateway string) (*model.Payment, *model.Order, error) {
	payment, order, ev, err := s.settle(orderID, method, gateway)
	if err != nil {
		return nil, nil, err
	}
	if s.PublishPaid != nil {
		if err := s.PublishPaid(ctx, ev); err != nil {
			log.Printf("commerce: publish paid event failed: %v", err)
		}
	}
	return payment, order, nil
}

// settle runs the payment guard and the write under the service mutex and
// returns the event to publish.
func (s *CommerceService) settle(orderID uint64, method, gateway string) (*model.Payment, *model.Order, queue.OrderPaidEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.Orders.GetByID(orderID)
	if err != nil {
		return nil, nil, queue.OrderPaidEvent{}, err
	}
	if order.PaymentStatus == model.PaymentPaid {
		return nil, nil, queue.OrderPaidEvent{}, repository.ErrAlreadyPaid
	}
	if order.Status == model.OrderCancelled {
		return nil, nil, queue.OrderPaidEvent{}, repository.ErrInvalidTransition
	}

	transactionID := newTransactionID()
	payment := s.Payments.Create(order.ID, order.Total, method, gateway, transactionID)
	if err := s.Orders.MarkPaid(order.ID); err != nil {
		return nil, nil, queue.OrderPaidEvent{}, err
	}
	order, err = s.Orders.GetByID(order.ID)
	if err != nil {
		return nil, nil, queue.OrderPaidEvent{}, err
	}

	ev := queue.OrderPaidEvent{
		OrderID:        order.ID,
		SessionID:      order.SessionID,
		PhotographerID: order.PhotographerID,
		ClientName:     order.ClientName,
		Amount:         payment.Amount,
		Method:         method,
		Gateway:        gateway,
		TransactionID:  transactionID,
		PaidAt:         payment.CreatedAt.Format(time.RFC3339),
	}
	return payment, order, ev, nil
}

// newTransactionID synthesizes a gateway transaction reference in the
// TXN_<unix-ms>_<suffix> form the delivery tooling expects.
func newTransactionID() string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffix := make([]byte, 7)
	for i := range suffix {
		suffix[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), string(suffix))
}
