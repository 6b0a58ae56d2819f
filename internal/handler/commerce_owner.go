// Photographer-facing commerce API: package management, order tracking
// and the sales dashboard.

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/repository"
	"github.com/photoflow/photoflow/internal/service"
)

// CommerceOwnerHandler bundles the commerce repos for the owner routes.
type CommerceOwnerHandler struct {
	Packages *repository.PackageRepo
	Orders   *repository.OrderRepo
	Payments *repository.PaymentRepo
	Commerce *service.CommerceService
}

func NewCommerceOwnerHandler(packages *repository.PackageRepo, orders *repository.OrderRepo, payments *repository.PaymentRepo, commerce *service.CommerceService) *CommerceOwnerHandler {
	if packages == nil || orders == nil || payments == nil || commerce == nil {
		panic("nil dependency passed to NewCommerceOwnerHandler")
	}
	return &CommerceOwnerHandler{Packages: packages, Orders: orders, Payments: payments, Commerce: commerce}
}

type createPackageReq struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Price       float64        `json:"price"`
	Options     map[string]any `json:"options"`
}

type orderStatusReq struct {
	Status string `json:"status"`
}

// Dashboard summarizes the photographer's sales: order counts per status
// and revenue from paid orders.
func (h *CommerceOwnerHandler) Dashboard(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	orders := h.Orders.ListByPhotographer(uid, "", 0)

	byStatus := map[string]int{}
	revenue := 0.0
	pendingRevenue := 0.0
	for _, o := range orders {
		byStatus[o.Status]++
		if o.PaymentStatus == model.PaymentPaid {
			revenue += o.Total
		} else {
			pendingRevenue += o.Total
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_orders":    len(orders),
		"by_status":       byStatus,
		"revenue":         revenue,
		"pending_revenue": pendingRevenue,
		"active_packages": len(h.Packages.ListActiveByPhotographer(uid)),
	})
}

// CreatePackage defines a new sellable package.
func (h *CommerceOwnerHandler) CreatePackage(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	var req createPackageReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "name required")
	}
	if !model.ValidPackageType(req.Type) {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "unknown package type")
	}
	if req.Price < 0 {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "price must be non-negative")
	}
	pkg := h.Packages.Create(uid, req.Name, req.Description, req.Type, req.Price, req.Options)
	return c.JSON(http.StatusCreated, pkg)
}

// ListPackages returns the photographer's active packages.
func (h *CommerceOwnerHandler) ListPackages(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Packages.ListActiveByPhotographer(uid)})
}

// DeletePackage retires a package.  Soft delete: existing orders keep the
// denormalized name and price.
func (h *CommerceOwnerHandler) DeletePackage(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	if err := h.Packages.Deactivate(id, uid); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOrders returns the photographer's orders, optionally filtered by
// ?status= and ?session_id=.
func (h *CommerceOwnerHandler) ListOrders(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	var sessionID uint64
	if raw := c.QueryParam("session_id"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			sessionID = n
		}
	}
	orders := h.Orders.ListByPhotographer(uid, c.QueryParam("status"), sessionID)
	return c.JSON(http.StatusOK, echo.Map{"items": orders})
}

// GetOrder returns one order with its payments.
func (h *CommerceOwnerHandler) GetOrder(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	order, err := h.Orders.GetByIDForPhotographer(id, uid)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"order":    order,
		"payments": h.Payments.ListByOrder(order.ID),
	})
}

// UpdateOrderStatus advances an order through its lifecycle.  Transitions
// outside the table come back as 409.
func (h *CommerceOwnerHandler) UpdateOrderStatus(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, repository.CodeTokenInvalid, "unauthorized")
	}
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	var req orderStatusReq
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "status required")
	}
	order, err := h.Commerce.UpdateStatus(id, uid, req.Status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}
