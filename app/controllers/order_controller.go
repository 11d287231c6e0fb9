package controllers

import (
	"errors"
	"net/http"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/bind"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/metrics"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/response"
)

type OrderController struct {
	orders   *services.OrderService
	payments *services.PaymentService
}

func NewOrderController(orders *services.OrderService, payments *services.PaymentService) *OrderController {
	return &OrderController{orders: orders, payments: payments}
}

// orderView decorates an order with its payment deep links.
type orderView struct {
	models.Order
	UPILink      string `json:"upi_link,omitempty"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

func (c *OrderController) view(o models.Order) orderView {
	v := orderView{Order: o, WhatsAppLink: c.payments.WhatsAppLink(o)}
	if o.PaymentMethod == models.PaymentUPI {
		v.UPILink = c.payments.UPILink(o)
	}
	return v
}

// Place accepts a customer order. Public.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	var in services.PlaceOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		metrics.RecordOrderRejected("validation")
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.PlaceOrder(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			response.NotFound(w)
		case errors.Is(err, services.ErrInsufficientStock):
			response.Conflict(w, "Stock not available for this quantity")
		default:
			response.Error(w, http.StatusInternalServerError, "Could not place order")
		}
		return
	}

	response.Created(w, c.view(order))
}

// List returns every order in insertion order, with payment links. Admin only.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListOrders(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not load orders")
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, c.view(o))
	}
	response.Success(w, views)
}

// Get returns one order by id. Admin only.
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := c.orders.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not load order")
		return
	}
	response.Success(w, c.view(order))
}
