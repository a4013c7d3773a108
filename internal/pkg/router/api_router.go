package router

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/Darkace01/commerce-control-suite/app/controllers"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/env"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// Initialize webhook controller with repositories
	controllers.InitializeWebhookController()

	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		Storage:    newLimiterStorage(),
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "commerce-control-suite api",
		})
	})

	v1 := api.Group("/v1")

	// Webhook receiver; slug is validated against the configured setting
	v1.Post("/webhooks/:slug", controllers.HandleWebhookReceive)

	store := v1.Group("/store")
	store.Get("/products/:id/availability", controllers.HandleStoreProductAvailability)
	store.Get("/products/:id/price", controllers.HandleStoreProductPrice)
	store.Get("/checkout/gateways", controllers.HandleStoreCheckoutGateways)
	store.Get("/checkout/gate", controllers.HandleStoreCheckoutGate)
	store.Get("/currencies", controllers.HandleStoreCurrencies)

	admin := v1.Group("/admin", middleware.AdminAuthMiddleware())
	admin.Get("/dashboard", controllers.HandleAdminDashboard)
	admin.Get("/logs", controllers.HandleAdminLogList)
	admin.Get("/logs/:id", controllers.HandleAdminLogDetail)

	admin.Get("/settings/webhook", controllers.HandleAdminGetWebhookSettings)
	admin.Put("/settings/webhook", controllers.HandleAdminUpdateWebhookSettings)
	admin.Get("/settings/order-control", controllers.HandleAdminGetOrderControl)
	admin.Put("/settings/order-control", controllers.HandleAdminUpdateOrderControl)
	admin.Get("/settings/currency", controllers.HandleAdminGetCurrency)
	admin.Put("/settings/currency", controllers.HandleAdminUpdateCurrency)

	admin.Get("/gateway-rules", controllers.HandleAdminListGatewayRules)
	admin.Post("/gateway-rules", controllers.HandleAdminCreateGatewayRule)
	admin.Put("/gateway-rules/:id", controllers.HandleAdminUpdateGatewayRule)
	admin.Delete("/gateway-rules/:id", controllers.HandleAdminDeleteGatewayRule)
	admin.Post("/gateway-rules/:id/toggle", controllers.HandleAdminToggleGatewayRule)

	admin.Get("/gateways", controllers.HandleAdminListGateways)
	admin.Put("/gateways/:id", controllers.HandleAdminUpsertGateway)

	admin.Get("/products", controllers.HandleAdminListProducts)
	admin.Put("/products/:id/currency-prices", controllers.HandleAdminUpsertCurrencyPrice)
	admin.Delete("/products/:id/currency-prices/:code", controllers.HandleAdminDeleteCurrencyPrice)
}

// newLimiterStorage creates Redis storage for the rate limiter using
// database 1 (cache uses DB 0).
func newLimiterStorage() *redis.Storage {
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	return redis.New(redis.Config{
		Host:     env.GetEnv("CACHE_HOST", "localhost"),
		Port:     port,
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		Database: 1,
		Reset:    false,
	})
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
