package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/services"
	"github.com/ibomiri431-oss/metra-feer/pkg/ctx"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

type ProductController struct {
	service *services.CatalogService
}

func NewProductController(service *services.CatalogService) *ProductController {
	return &ProductController{service: service}
}

// List handles GET /api/products?search=&category=.
func (c *ProductController) List(cx *ctx.Context) {
	products, err := c.service.List(cx.Query("search"), cx.Query("category"))
	if err != nil {
		logger.WithCtx(cx.Context()).Error("product list failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(products)
}

// Create handles POST /api/products.
func (c *ProductController) Create(cx *ctx.Context) {
	var product models.Product
	if !cx.BindJSON(&product) {
		return
	}
	product.ID = 0

	if err := c.service.Create(&product); err != nil {
		logger.WithCtx(cx.Context()).Error("product create failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.Success()
}

// Update handles PUT /api/products/{id}.
func (c *ProductController) Update(cx *ctx.Context) {
	id, err := strconv.Atoi(cx.Param("id"))
	if err != nil {
		cx.Error(http.StatusBadRequest, "Geçersiz ürün id")
		return
	}

	var product models.Product
	if !cx.BindJSON(&product) {
		return
	}
	product.ID = id

	if err := c.service.Update(&product); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cx.Error(http.StatusNotFound, "Ürün bulunamadı")
			return
		}
		logger.WithCtx(cx.Context()).Error("product update failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.Success()
}

// Delete handles DELETE /api/products/{id}.
func (c *ProductController) Delete(cx *ctx.Context) {
	id, err := strconv.Atoi(cx.Param("id"))
	if err != nil {
		cx.Error(http.StatusBadRequest, "Geçersiz ürün id")
		return
	}

	if err := c.service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cx.Error(http.StatusNotFound, "Ürün bulunamadı")
			return
		}
		logger.WithCtx(cx.Context()).Error("product delete failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.Success()
}
