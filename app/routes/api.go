// Package routes mounts the shop's HTTP API onto the router.
package routes

import (
	"net/http"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/controllers"
	appgraphql "github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/graphql"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
	gql "github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/graphql"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/logger"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/metrics"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/middleware"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/rbac"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/router"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/ws"
)

// Services groups everything the API needs, injected by the server.
type Services struct {
	Auth      *services.AuthService
	Catalog   *services.CatalogService
	Orders    *services.OrderService
	Payments  *services.PaymentService
	OrderFeed *ws.Hub
}

// RegisterAPI wires every endpoint. Admin routes sit behind JWT auth plus
// the admin role check.
func RegisterAPI(r *router.Router, svc Services) {
	authController := controllers.NewAuthController(svc.Auth)
	catalogController := controllers.NewCatalogController(svc.Catalog)
	orderController := controllers.NewOrderController(svc.Orders, svc.Payments)

	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")

	// Public storefront.
	api.Get("/products", "products.list", catalogController.List)
	api.Get("/products/{id}", "products.get", catalogController.Get)
	api.Post("/orders", "orders.place", orderController.Place)

	// Admin login.
	api.Post("/admin/login", "admin.login", authController.Login)

	// Admin panel.
	admin := api.Group("/admin", middleware.Auth, rbac.HasRole(services.RoleAdmin))
	admin.Get("/orders", "admin.orders.list", orderController.List)
	admin.Get("/orders/{id}", "admin.orders.get", orderController.Get)
	admin.Post("/products", "admin.products.create", catalogController.Create)
	admin.Delete("/products/{id}", "admin.products.delete", catalogController.Delete)
	admin.Post("/products/{id}/stock", "admin.products.stock", catalogController.AdjustStock)
	admin.Post("/products/{id}/image", "admin.products.image", catalogController.UploadImage)

	// Admin GraphQL (read-only queries).
	schema, err := appgraphql.NewSchema(svc.Catalog, svc.Orders)
	if err != nil {
		logger.Error("graphql: schema build failed", "error", err)
	} else {
		admin.Post("/graphql", "admin.graphql", gql.Handler(schema))
	}

	// Live order feed for the admin dashboard. The browser passes the JWT
	// as a query parameter since WebSocket clients cannot set headers.
	r.Get("/ws/admin/orders", "admin.orders.live", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, svc.OrderFeed)
	}, wsTokenAuth)
}

// wsTokenAuth moves a ?token= query parameter into the Authorization
// header so the standard auth middleware can validate WebSocket upgrades.
func wsTokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.URL.Query().Get("token"); token != "" && r.Header.Get("Authorization") == "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
		middleware.Auth(next).ServeHTTP(w, r)
	})
}
