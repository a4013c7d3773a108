package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Darkace01/commerce-control-suite/app/repository"
)

// HandleAdminListProducts returns a paginated product list with their
// per-currency price overrides loaded.
func HandleAdminListProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 25)
	if limit < 1 || limit > 100 {
		limit = 25
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	repo := repository.GetGlobalFactory().GetProductRepository()
	products, err := repo.List((page-1)*limit, limit)
	if err != nil {
		log.Printf("admin products: list failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load products"})
	}
	total, err := repo.Count()
	if err != nil {
		log.Printf("admin products: count failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load products"})
	}

	return c.JSON(fiber.Map{"products": products, "total": total, "page": page, "limit": limit})
}

// HandleAdminUpsertCurrencyPrice sets a fixed per-currency price for one
// product. The price must be positive and the currency code a known one from
// the currency settings.
func HandleAdminUpsertCurrencyPrice(c *fiber.Ctx) error {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid product id"})
	}

	var payload struct {
		CurrencyCode string  `json:"currency_code"`
		Price        float64 `json:"price"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}

	code := strings.ToUpper(strings.TrimSpace(payload.CurrencyCode))
	if len(code) != 3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Currency code must be 3 letters"})
	}
	if payload.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Price must be greater than zero"})
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Product.GetByID(uint(productID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Product not found"})
		}
		log.Printf("admin products: load %d failed: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load product"})
	}

	currency, err := repos.Setting.Currency()
	if err != nil {
		log.Printf("admin products: load currency settings failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load currency settings"})
	}
	if !currency.IsAvailable(code) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Currency is not configured"})
	}

	if err := repos.Product.UpsertCurrencyPrice(uint(productID), code, payload.Price); err != nil {
		log.Printf("admin products: upsert price for %d/%s failed: %v", productID, code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to save currency price"})
	}

	return c.JSON(fiber.Map{"product_id": productID, "currency_code": code, "price": payload.Price})
}

// HandleAdminDeleteCurrencyPrice removes a fixed per-currency price, putting
// the product back on rate conversion for that currency.
func HandleAdminDeleteCurrencyPrice(c *fiber.Ctx) error {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid product id"})
	}
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if len(code) != 3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Currency code must be 3 letters"})
	}

	repo := repository.GetGlobalFactory().GetProductRepository()
	if err := repo.DeleteCurrencyPrice(uint(productID), code); err != nil {
		log.Printf("admin products: delete price for %d/%s failed: %v", productID, code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to delete currency price"})
	}

	return c.JSON(fiber.Map{"product_id": productID, "currency_code": code, "deleted": true})
}
