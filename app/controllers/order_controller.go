package controllers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/services"
	"github.com/ibomiri431-oss/metra-feer/pkg/ctx"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type placeOrderInput struct {
	UserID     string           `json:"userId" validate:"required"`
	Username   string           `json:"username"`
	Items      models.CartItems `json:"items" validate:"required"`
	TotalPrice float64          `json:"totalPrice" validate:"numeric,gte=0"`
}

type orderStatusInput struct {
	Status string `json:"status" validate:"required,in=PENDING,APPROVED,REJECTED,SHIPPED,DELIVERED"`
}

// List handles GET /api/orders?userId=. Without userId it returns every
// order, which is what the admin panel requests.
func (c *OrderController) List(cx *ctx.Context) {
	userID := cx.Query("userId")

	var orders []models.Order
	var err error
	if userID == "" {
		orders, err = c.service.ListAll()
	} else {
		orders, err = c.service.ListForUser(userID)
	}
	if err != nil {
		logger.WithCtx(cx.Context()).Error("order list failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(orders)
}

// Place handles POST /api/orders.
func (c *OrderController) Place(cx *ctx.Context) {
	var input placeOrderInput
	if !cx.BindJSON(&input) {
		return
	}

	order, err := c.service.Place(input.UserID, input.Username, input.Items, input.TotalPrice)
	if err != nil {
		logger.WithCtx(cx.Context()).Error("order place failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(map[string]string{"id": order.ID})
}

// SetStatus handles POST /api/orders/{id}/status.
func (c *OrderController) SetStatus(cx *ctx.Context) {
	var input orderStatusInput
	if !cx.BindJSON(&input) {
		return
	}

	if err := c.service.SetStatus(cx.Param("id"), input.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cx.Error(http.StatusNotFound, "Sipariş bulunamadı")
			return
		}
		logger.WithCtx(cx.Context()).Error("order status update failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.Success()
}
