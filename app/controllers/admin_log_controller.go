package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"github.com/Darkace01/commerce-control-suite/app/repository"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/cache"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/statistics"
)

const (
	defaultLogListLimit = 20
	maxLogListLimit     = 100
	dashboardRecentLogs = 5
)

// HandleAdminLogList returns the most recent webhook log rows.
func HandleAdminLogList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultLogListLimit)
	if limit < 1 {
		limit = defaultLogListLimit
	}
	if limit > maxLogListLimit {
		limit = maxLogListLimit
	}

	repo := repository.GetGlobalFactory().GetWebhookLogRepository()
	logs, err := repo.Recent(limit)
	if err != nil {
		log.Printf("admin logs: list failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load logs"})
	}

	return c.JSON(fiber.Map{"logs": logs, "count": len(logs)})
}

// HandleAdminLogDetail returns one log row by id, cached for an hour once the
// row is terminal.
func HandleAdminLogDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid log id"})
	}

	cacheKey := statistics.LogDetailKey(id)
	if cached, err := cache.Get(cacheKey); err == nil {
		var entry models.ShippingEventLog
		if err := json.Unmarshal([]byte(cached), &entry); err == nil {
			return c.JSON(fiber.Map{"log": entry})
		}
	}

	repo := repository.GetGlobalFactory().GetWebhookLogRepository()
	entry, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Log not found"})
		}
		log.Printf("admin logs: detail %d failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load log"})
	}

	// Pending rows are still in flight; caching them would pin the pending
	// status for the full TTL.
	if entry.IsTerminal() {
		if data, err := json.Marshal(entry); err == nil {
			if err := cache.Set(cacheKey, string(data), statistics.LogDetailExpiration); err != nil {
				log.Printf("admin logs: caching detail %d failed: %v", id, err)
			}
		}
	}

	return c.JSON(fiber.Map{"log": entry})
}

// HandleAdminDashboard returns the log counters plus a short recent-log list
// and the current order-control and gateway-rule state.
func HandleAdminDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	recent, err := repos.WebhookLog.Recent(dashboardRecentLogs)
	if err != nil {
		log.Printf("admin dashboard: recent logs failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load dashboard"})
	}

	orderControl, err := repos.Setting.OrderControl()
	if err != nil {
		log.Printf("admin dashboard: order control settings failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load dashboard"})
	}

	gatewayRules, err := repos.Setting.GatewayRules()
	if err != nil {
		log.Printf("admin dashboard: gateway rules failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load dashboard"})
	}
	enabledRules := 0
	for _, rule := range gatewayRules.Rules {
		if rule.Enabled {
			enabledRules++
		}
	}

	return c.JSON(fiber.Map{
		"statistics":  statistics.GetLogStatistics(),
		"recent_logs": recent,
		"order_control": fiber.Map{
			"orders_enabled":    orderControl.EnableOrders,
			"restriction_type":  orderControl.RestrictionType,
			"timeframe_enabled": orderControl.EnableTimeframe,
			"daterange_enabled": orderControl.EnableDateRange,
		},
		"gateway_rules": fiber.Map{
			"total":   len(gatewayRules.Rules),
			"enabled": enabledRules,
		},
	})
}
