package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Darkace01/commerce-control-suite/app/repository"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/currency"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/env"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/gateways"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/ordergate"
)

// HandleStoreProductAvailability reports whether a product can currently be
// ordered under the order availability policy.
func HandleStoreProductAvailability(c *fiber.Ctx) error {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid product id"})
	}

	repos := repository.GetGlobalRepositories()
	product, err := repos.Product.GetByID(uint(productID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Product not found"})
		}
		log.Printf("store: load product %d failed: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load product"})
	}

	settings, err := repos.Setting.OrderControl()
	if err != nil {
		log.Printf("store: load order control failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load availability"})
	}

	info := ordergate.ProductInfo{ID: product.ID, CategoryIDs: product.CategoryIDs()}
	canOrder := ordergate.CanOrder(info, *settings, time.Now())

	response := fiber.Map{"product_id": product.ID, "can_order": canOrder}
	if !canOrder {
		response["message"] = settings.Message()
	}
	return c.JSON(response)
}

// HandleStoreProductPrice returns the product price resolved into the
// requested currency, with the display symbol.
func HandleStoreProductPrice(c *fiber.Ctx) error {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid product id"})
	}

	repos := repository.GetGlobalRepositories()
	product, err := repos.Product.GetByID(uint(productID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Product not found"})
		}
		log.Printf("store: load product %d failed: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load product"})
	}

	settings, err := repos.Setting.Currency()
	if err != nil {
		log.Printf("store: load currency settings failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load currency settings"})
	}

	current := currency.ResolveCurrent(c.Query("currency"), *settings)
	price := currency.ResolvePrice(product.BasePrice, product.CurrencyOverrides(), current, *settings)
	symbol := currency.ResolveSymbol(current, current, *settings, defaultCurrencySymbol())

	return c.JSON(fiber.Map{
		"product_id": product.ID,
		"currency":   current,
		"price":      price,
		"symbol":     symbol,
	})
}

// HandleStoreCheckoutGateways returns the payment gateways available for the
// requested currency after applying the gateway rules.
func HandleStoreCheckoutGateways(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	currencySettings, err := repos.Setting.Currency()
	if err != nil {
		log.Printf("store: load currency settings failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load currency settings"})
	}
	ruleSettings, err := repos.Setting.GatewayRules()
	if err != nil {
		log.Printf("store: load gateway rules failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load gateway rules"})
	}
	available, err := repos.Gateway.GetEnabled()
	if err != nil {
		log.Printf("store: load gateways failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load gateways"})
	}

	current := currency.ResolveCurrent(c.Query("currency"), *currencySettings)
	allowed := gateways.AllowedGateways(current, ruleSettings.Rules, available)

	return c.JSON(fiber.Map{"currency": current, "gateways": allowed})
}

// HandleStoreCheckoutGate evaluates the global checkout gate. Blocked
// responses carry the disabled message and a redirect target.
func HandleStoreCheckoutGate(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	settings, err := repos.Setting.OrderControl()
	if err != nil {
		log.Printf("store: load order control failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load checkout gate"})
	}

	result := ordergate.EvaluateCheckout(*settings, time.Now(), env.GetEnv("APP_BASE_URL", "/"))
	response := fiber.Map{"allowed": result.Allowed}
	if !result.Allowed {
		response["message"] = result.Message
		response["redirect_url"] = result.RedirectURL
	}
	return c.JSON(response)
}

// HandleStoreCurrencies returns the currencies a customer can select. With
// the switcher disabled only the store default is exposed.
func HandleStoreCurrencies(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	settings, err := repos.Setting.Currency()
	if err != nil {
		log.Printf("store: load currency settings failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load currency settings"})
	}

	if !settings.EnableCurrencySwitcher {
		return c.JSON(fiber.Map{
			"switcher_enabled": false,
			"default":          settings.DefaultCurrency,
			"currencies":       []string{settings.DefaultCurrency},
		})
	}

	return c.JSON(fiber.Map{
		"switcher_enabled": true,
		"default":          settings.DefaultCurrency,
		"currencies":       settings.AvailableCurrencies(),
	})
}

func defaultCurrencySymbol() string {
	return env.GetEnv("DEFAULT_CURRENCY_SYMBOL", "$")
}
