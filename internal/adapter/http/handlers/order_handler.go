package handlers

import (
	"net/http"

	request "project_materials/internal/adapter/http/dto/request"
	response "project_materials/internal/adapter/http/dto/response"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler places and updates orders.
//
// Both write endpoints accept their fields either as query parameters or as
// a JSON body.

type OrderHandler struct {
	usecase usecase.IProjectManager
}

func NewOrderHandler(uc usecase.IProjectManager) *OrderHandler {
	request.RegisterValidators()
	return &OrderHandler{usecase: uc}
}

// PlaceOrder godoc
// @Summary  Place an order for a quote
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    quote_id  query     int                        false  "Quote ID"
// @Param    payload   body      request.PlaceOrderRequest  false  "Quote ID as JSON"
// @Success  200       {object}  response.OrderResponse
// @Failure  400       {object}  pkg.HTTPError
// @Failure  404       {object}  pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var payload request.PlaceOrderRequest
	if err := bindQueryOrJSON(c, &payload); err != nil {
		respondInvalid(c, err)
		return
	}
	order, err := h.usecase.PlaceOrder(c.Request.Context(), *payload.QuoteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders godoc
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Success  200  {array}  response.OrderResponse
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateOrder godoc
// @Summary      Update order status and/or final price
// @Description  A final price is also written onto the originating quote.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id           path      int                         true   "Order ID"
// @Param        status       query     string                      false  "pending, ordered or completed"
// @Param        final_price  query     number                      false  "Final price"
// @Param        payload      body      request.UpdateOrderRequest  false  "Fields as JSON"
// @Success      200          {object}  response.OrderResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateOrderRequest
	if err := bindQueryOrJSON(c, &payload); err != nil {
		respondInvalid(c, err)
		return
	}
	order, err := h.usecase.UpdateOrder(c.Request.Context(), id, payload.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
