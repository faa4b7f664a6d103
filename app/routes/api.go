// Package routes wires controllers onto the HTTP router.
package routes

import (
	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/controllers"
	"github.com/ibomiri431-oss/metra-feer/app/repositories"
	"github.com/ibomiri431-oss/metra-feer/app/services"
	"github.com/ibomiri431-oss/metra-feer/pkg/ctx"
	"github.com/ibomiri431-oss/metra-feer/pkg/metrics"
	"github.com/ibomiri431-oss/metra-feer/pkg/router"
)

// Controllers bundles every controller behind the API.
type Controllers struct {
	Auth        *controllers.AuthController
	Products    *controllers.ProductController
	Orders      *controllers.OrderController
	Interaction *controllers.InteractionController
	Upload      *controllers.UploadController
	Static      *controllers.StaticController
}

// New builds the repository / service / controller graph on top of db.
func New(db *gorm.DB) *Controllers {
	users := repositories.NewUserRepository(db)
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)
	favorites := repositories.NewToggleRepository(db, "favorites")
	saved := repositories.NewToggleRepository(db, "saved")

	uploads := services.NewUploadService()

	return &Controllers{
		Auth:        controllers.NewAuthController(services.NewAuthService(users)),
		Products:    controllers.NewProductController(services.NewCatalogService(products)),
		Orders:      controllers.NewOrderController(services.NewOrderService(orders)),
		Interaction: controllers.NewInteractionController(services.NewInteractionService(favorites, saved)),
		Upload:      controllers.NewUploadController(uploads),
		Static:      controllers.NewStaticController(uploads),
	}
}

// Register mounts every route. Unmatched paths fall through to the SPA
// handler so the frontend owns client-side routing.
func Register(r *router.Router, c *Controllers) {
	api := r.Group("/api")

	api.Post("/login", "auth.login", ctx.Wrap(c.Auth.Login))
	api.Post("/register", "auth.register", ctx.Wrap(c.Auth.Register))

	api.Get("/products", "products.list", ctx.Wrap(c.Products.List))
	api.Post("/products", "products.create", ctx.Wrap(c.Products.Create))
	api.Put("/products/{id}", "products.update", ctx.Wrap(c.Products.Update))
	api.Delete("/products/{id}", "products.delete", ctx.Wrap(c.Products.Delete))

	api.Post("/upload", "upload", ctx.Wrap(c.Upload.Upload))

	api.Get("/favorites/{userId}", "favorites.list", ctx.Wrap(c.Interaction.Favorites))
	api.Post("/favorites", "favorites.toggle", ctx.Wrap(c.Interaction.ToggleFavorite))
	api.Get("/saved/{userId}", "saved.list", ctx.Wrap(c.Interaction.Saved))
	api.Post("/saved", "saved.toggle", ctx.Wrap(c.Interaction.ToggleSaved))

	api.Get("/orders", "orders.list", ctx.Wrap(c.Orders.List))
	api.Post("/orders", "orders.place", ctx.Wrap(c.Orders.Place))
	api.Post("/orders/{id}/status", "orders.status", ctx.Wrap(c.Orders.SetStatus))

	r.Get("/product_images/{filename}", "static.product_image", ctx.Wrap(c.Static.ProductImage))
	r.Get("/metrics", "metrics", metrics.Handler())

	r.NotFound(ctx.Wrap(c.Static.SPA))
}
