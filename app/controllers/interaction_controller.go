package controllers

import (
	"net/http"

	"github.com/ibomiri431-oss/metra-feer/app/services"
	"github.com/ibomiri431-oss/metra-feer/pkg/ctx"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

type InteractionController struct {
	service *services.InteractionService
}

func NewInteractionController(service *services.InteractionService) *InteractionController {
	return &InteractionController{service: service}
}

type toggleInput struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID *int   `json:"productId" validate:"required"`
}

// Favorites handles GET /api/favorites/{userId}.
func (c *InteractionController) Favorites(cx *ctx.Context) {
	ids, err := c.service.Favorites(cx.Param("userId"))
	if err != nil {
		logger.WithCtx(cx.Context()).Error("favorites list failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(ids)
}

// ToggleFavorite handles POST /api/favorites. Responds with the updated id
// set; productId -1 only reads it.
func (c *InteractionController) ToggleFavorite(cx *ctx.Context) {
	var input toggleInput
	if !cx.BindJSON(&input) {
		return
	}

	ids, err := c.service.ToggleFavorite(input.UserID, *input.ProductID)
	if err != nil {
		logger.WithCtx(cx.Context()).Error("favorite toggle failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(ids)
}

// Saved handles GET /api/saved/{userId}.
func (c *InteractionController) Saved(cx *ctx.Context) {
	ids, err := c.service.Saved(cx.Param("userId"))
	if err != nil {
		logger.WithCtx(cx.Context()).Error("saved list failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(ids)
}

// ToggleSaved handles POST /api/saved. Same contract as ToggleFavorite.
func (c *InteractionController) ToggleSaved(cx *ctx.Context) {
	var input toggleInput
	if !cx.BindJSON(&input) {
		return
	}

	ids, err := c.service.ToggleSaved(input.UserID, *input.ProductID)
	if err != nil {
		logger.WithCtx(cx.Context()).Error("saved toggle failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(ids)
}
