package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "comanda/internal/adapter/http/dto/request"
	response "comanda/internal/adapter/http/dto/response"
	"comanda/internal/adapter/presenter"
	"comanda/internal/domain/entities"
	"comanda/internal/usecase"
	"comanda/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidPathID       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid id in path", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the order engine: creation, status
// transitions and the kitchen dashboard queries.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary  Register a table's order
// @Accept   json
// @Produce  json
// @Param    order body request.CreateOrderRequest true "order to create"
// @Success  201 {object} response.OrderResponse
// @Router   /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// UpdateOrderStatus godoc
// @Summary  Advance an order's preparation status
// @Accept   json
// @Produce  json
// @Param    order_id path int true "order id"
// @Param    status body request.UpdateOrderStatusRequest true "requested status"
// @Success  200 {object} response.OrderResponse
// @Router   /api/orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return
	}

	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), orderID, payload.Status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListTodayOrders godoc
// @Summary  Today's orders for an owner's kitchen dashboard
// @Produce  json
// @Param    owner_id path int true "owner id"
// @Success  200 {array} presenter.KitchenOrderView
// @Router   /api/orders/kitchen/today/{owner_id} [get]
func (h *OrderHandler) ListTodayOrders(c *gin.Context) {
	ownerID, err := pathID(c, "owner_id")
	if err != nil {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListTodayOrders(c.Request.Context(), ownerID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, presenter.FromOrders(orders))
}

// GetAveragePreparationTime godoc
// @Summary  Mean preparation time of today's finished orders, in minutes
// @Produce  json
// @Param    owner_id path int true "owner id"
// @Success  200 {object} response.AverageTimeResponse
// @Router   /api/orders/kitchen/statistics/average-time/{owner_id} [get]
func (h *OrderHandler) GetAveragePreparationTime(c *gin.Context) {
	ownerID, err := pathID(c, "owner_id")
	if err != nil {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return
	}

	minutes, err := h.usecase.AveragePreparationMinutes(c.Request.Context(), ownerID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AverageTimeResponse{AveragePreparationMinutes: minutes})
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidPathID
	}
	return id, nil
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTableNumber),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidCreatedBy),
		errors.Is(err, usecase.ErrCommentTooLong):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Order status cannot move backwards", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMenuNotFound):
		return pkg.NewDomainErrorSimple("MENU_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Creator account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderConflict):
		return pkg.NewDomainErrorSimple("ORDER_CONFLICT", "Order was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
