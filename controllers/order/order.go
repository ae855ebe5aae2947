package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/darshan2121/PlantApp/middleware"
	"github.com/darshan2121/PlantApp/models"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// -------- Request Structs --------

type OrderItemRequest struct {
	Item     string  `json:"item" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price"`
}

type CreateOrderRequest struct {
	OrderNumber       string                 `json:"orderNumber" binding:"required"`
	DeliveryAddress   models.DeliveryAddress `json:"deliveryAddress"`
	Items             []OrderItemRequest     `json:"items" binding:"dive"`
	Notes             string                 `json:"notes"`
	EstimatedDelivery string                 `json:"estimatedDelivery"`
	PaymentMethod     *string                `json:"paymentMethod"`
}

type UpdateOrderStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	Description string `json:"description"`
}

// -------- Helpers --------

var (
	errNotOwner       = errors.New("order belongs to another user")
	errNotCancellable = errors.New("order can no longer be cancelled")
	errClosed         = errors.New("order is closed")
)

func mapOrderStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "requested":
		return models.OrderStatusRequested, nil
	case "approved":
		return models.OrderStatusApproved, nil
	case "ready for pickup", "ready_for_pickup":
		return models.OrderStatusReadyForPickup, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	case "cancelled":
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func missingAddressField(a models.DeliveryAddress) string {
	fields := []struct{ name, value string }{
		{"area", a.Area},
		{"ward", a.Ward},
		{"pinCode", a.PinCode},
		{"contactName", a.ContactName},
		{"contactPhone", a.ContactPhone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}

func renderAll(orders []models.Order) []models.Order {
	for i := range orders {
		orders[i].Render()
	}
	return orders
}

// -------- Handlers --------

// POST /api/orders/create
func CreateOrderHandler(store repository.Store, hub *Hub, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order payload"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order must contain at least one item"})
			return
		}
		if !strings.HasPrefix(req.OrderNumber, "ORD-") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order number"})
			return
		}
		if field := missingAddressField(req.DeliveryAddress); field != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("deliveryAddress.%s is required", field)})
			return
		}

		order := &models.Order{
			OrderNumber:       req.OrderNumber,
			UserID:            middleware.UserID(c),
			DeliveryAddress:   req.DeliveryAddress,
			Notes:             strings.TrimSpace(req.Notes),
			EstimatedDelivery: req.EstimatedDelivery,
			PaymentMethod:     req.PaymentMethod,
		}
		for _, item := range req.Items {
			order.Items = append(order.Items, models.OrderItem{
				PlantID:  item.Item,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}
		order.Track(models.OrderStatusRequested, "Order placed", time.Now())

		err := store.CreateOrder(c.Request.Context(), order)
		switch {
		case errors.Is(err, repository.ErrOutOfStock):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient stock for " + strings.TrimSuffix(err.Error(), ": "+repository.ErrOutOfStock.Error())})
			return
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Plant not found"})
			return
		case errors.Is(err, repository.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"message": "Order number already exists"})
			return
		case err != nil:
			log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("create order failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
			return
		}

		log.Info().Str("order_id", order.ID).Str("user_id", order.UserID).Int("items", len(order.Items)).Msg("order created")
		hub.Broadcast(EventCreated, order.Render())
		c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "data": order})
	}
}

// GET /api/orders/my-orders
func GetMyOrdersHandler(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.OrdersByUser(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": renderAll(orders)})
	}
}

// GET /api/orders/:orderID
func GetOrderByIDHandler(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := store.OrderByID(c.Request.Context(), c.Param("orderID"))
		if errors.Is(err, repository.ErrNotFound) || (err == nil && order.UserID != middleware.UserID(c)) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": order.Render()})
	}
}

// PATCH /api/orders/:orderID/cancel
func CancelOrderHandler(store repository.Store, hub *Hub, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		order, err := store.UpdateOrder(c.Request.Context(), c.Param("orderID"), func(o *models.Order) error {
			if o.UserID != userID {
				return errNotOwner
			}
			if !o.Cancellable() {
				return errNotCancellable
			}
			o.Track(models.OrderStatusCancelled, "Cancelled by user", time.Now())
			return nil
		})
		switch {
		case errors.Is(err, repository.ErrNotFound), errors.Is(err, errNotOwner):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		case errors.Is(err, errNotCancellable):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order can no longer be cancelled"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to cancel order"})
			return
		}

		log.Info().Str("order_id", order.ID).Msg("order cancelled")
		hub.Broadcast(EventUpdated, order.Render())
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "data": order})
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": renderAll(orders)})
	}
}

// PUT /api/admin/orders/:orderID/status
func UpdateOrderStatusHandler(store repository.Store, hub *Hub, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		desc := strings.TrimSpace(req.Description)
		if desc == "" {
			desc = "Status changed to " + newStatus
		}

		order, err := store.UpdateOrder(c.Request.Context(), c.Param("orderID"), func(o *models.Order) error {
			if o.Status == models.OrderStatusDelivered || o.Status == models.OrderStatusCancelled {
				return errClosed
			}
			o.Track(newStatus, desc, time.Now())
			return nil
		})
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		case errors.Is(err, errClosed):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order is already closed"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}

		log.Info().Str("order_id", order.ID).Str("status", newStatus).Msg("order status updated")
		hub.Broadcast(EventUpdated, order.Render())
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "data": order})
	}
}
