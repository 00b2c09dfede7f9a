package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storefrontlabs/storefront-backend/api/controllers"
	"github.com/storefrontlabs/storefront-backend/api/middleware"
	authsvc "github.com/storefrontlabs/storefront-backend/internal/auth"
	categorysvc "github.com/storefrontlabs/storefront-backend/internal/categories"
	customersvc "github.com/storefrontlabs/storefront-backend/internal/customers"
	ordersvc "github.com/storefrontlabs/storefront-backend/internal/orders"
	productsvc "github.com/storefrontlabs/storefront-backend/internal/products"
	"github.com/storefrontlabs/storefront-backend/pkg/config"
	"github.com/storefrontlabs/storefront-backend/pkg/logger"
	"github.com/storefrontlabs/storefront-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	readyDeps map[string]controllers.Pinger,
	sessions middleware.SessionChecker,
	authService *authsvc.Service,
	customerService *customersvc.Service,
	categoryService *categorysvc.Service,
	productService *productsvc.Service,
	orderService ordersvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readyDeps))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Product images are served straight off local disk when the public base
	// URL is a path on this server rather than a CDN host.
	if base := cfg.Storage.PublicBaseURL; base != "" && !strings.HasPrefix(base, "http") {
		prefix := strings.TrimSuffix(base, "/") + "/images/products/"
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Storage.ProductImageDir)))
		r.Method(http.MethodGet, prefix+"*", fs)
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.Register(authService, logg))
		r.Post("/login", controllers.Login(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/logout", controllers.Logout(authService, logg))
			r.Get("/me", controllers.CurrentUser(authService, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", controllers.CreateCustomer(customerService, logg))
			r.Get("/", controllers.ListCustomers(customerService, logg))
			r.Get("/{customerID}", controllers.GetCustomer(customerService, logg))
			r.Put("/{customerID}", controllers.UpdateCustomer(customerService, logg))
			r.Delete("/{customerID}", controllers.DeleteCustomer(customerService, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", controllers.CreateCategory(categoryService, logg))
			r.Get("/", controllers.ListCategories(categoryService, logg))
			r.Get("/{categoryID}", controllers.GetCategory(categoryService, logg))
			r.Put("/{categoryID}", controllers.UpdateCategory(categoryService, logg))
			r.Delete("/{categoryID}", controllers.DeleteCategory(categoryService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.CreateProduct(productService, logg))
			r.Get("/", controllers.ListProducts(productService, logg))
			r.Get("/{productID}", controllers.GetProduct(productService, logg))
			r.Put("/{productID}", controllers.UpdateProduct(productService, logg))
			r.Delete("/{productID}", controllers.DeleteProduct(productService, logg))
			r.Post("/{productID}/image", controllers.UploadProductImage(productService, logg))
			r.Delete("/{productID}/image", controllers.DeleteProductImage(productService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.CreateOrder(orderService, logg))
			r.Get("/", controllers.ListOrders(orderService, logg))
			r.Get("/{orderID}", controllers.GetOrder(orderService, logg))
			r.Put("/{orderID}", controllers.UpdateOrder(orderService, logg))
			r.Delete("/{orderID}", controllers.DeleteOrder(orderService, logg))

			r.Route("/{orderID}/items", func(r chi.Router) {
				r.Post("/", controllers.AddOrderItem(orderService, logg))
				r.Get("/", controllers.ListOrderItems(orderService, logg))
				r.Get("/{itemID}", controllers.GetOrderItem(orderService, logg))
				r.Put("/{itemID}", controllers.UpdateOrderItem(orderService, logg))
				r.Delete("/{itemID}", controllers.RemoveOrderItem(orderService, logg))
			})
		})
	})

	return r
}
