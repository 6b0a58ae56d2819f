// Client-facing commerce routes behind the access code: browse the
// photographer's packages, place an order for the session and pay it.

package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/photoflow/photoflow/internal/repository"
	"github.com/photoflow/photoflow/internal/service"
)

// CommercePublicHandler serves the unauthenticated commerce routes.
type CommercePublicHandler struct {
	Sessions *repository.SessionRepo
	Packages *repository.PackageRepo
	Commerce *service.CommerceService
}

func NewCommercePublicHandler(sessions *repository.SessionRepo, packages *repository.PackageRepo, commerce *service.CommerceService) *CommercePublicHandler {
	if sessions == nil || packages == nil || commerce == nil {
		panic("nil dependency passed to NewCommercePublicHandler")
	}
	return &CommercePublicHandler{Sessions: sessions, Packages: packages, Commerce: commerce}
}

type createOrderReq struct {
	OrderType       string                     `json:"order_type"`
	Items           []service.OrderItemRequest `json:"items"`
	DeliveryMethod  string                     `json:"delivery_method"`
	DeliveryAddress map[string]any             `json:"delivery_address"`
	Notes           string                     `json:"notes"`
}

type payOrderReq struct {
	Method  string `json:"method"`
	Gateway string `json:"gateway"`
}

// ListPackages returns the active packages of the photographer behind the
// gallery, so the client can shop without knowing who sells.
func (h *CommercePublicHandler) ListPackages(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	session, err := h.Sessions.FindByAccessCode(code)
	if err != nil {
		return galleryNotFound(c)
	}
	pkgs := h.Packages.ListActiveByPhotographer(session.PhotographerID)
	out := make([]echo.Map, 0, len(pkgs))
	for _, p := range pkgs {
		// Sanitized view: the photographer id stays server-side.
		out = append(out, echo.Map{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"type":        p.Type,
			"price":       p.Price,
			"options":     p.Options,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// CreateOrder places an order against the session resolved by access
// code.  Pricing happens entirely server-side from the stored packages.
func (h *CommercePublicHandler) CreateOrder(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	session, err := h.Sessions.FindByAccessCode(code)
	if err != nil {
		return galleryNotFound(c)
	}
	var req createOrderReq
	if err := c.Bind(&req); err != nil || len(req.Items) == 0 {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "items required")
	}
	order, err := h.Commerce.CreateOrder(session, service.OrderRequest{
		OrderType:       req.OrderType,
		Items:           req.Items,
		DeliveryMethod:  req.DeliveryMethod,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		DeadlineDays:    service.ClientDeadlineDays,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

// PayOrder settles an order through the simulated gateway.  Paying twice
// yields 409 ALREADY_PAID.
func (h *CommercePublicHandler) PayOrder(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid id")
	}
	var req payOrderReq
	if err := c.Bind(&req); err != nil || req.Method == "" {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "method required")
	}
	if req.Gateway == "" {
		req.Gateway = "stripe"
	}
	payment, order, err := h.Commerce.ProcessPayment(c.Request().Context(), id, req.Method, req.Gateway)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"payment": payment,
		"order":   order,
	})
}
