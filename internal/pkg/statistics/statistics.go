package statistics

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Darkace01/commerce-control-suite/app/models"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/cache"
	"github.com/Darkace01/commerce-control-suite/internal/pkg/database"
)

const (
	CacheKeyLogsTotal   = "statistics:logs:total"
	CacheKeyLogsSuccess = "statistics:logs:success"
	CacheKeyLogsError   = "statistics:logs:error"
	CacheKeyLogDetail   = "webhook:log:%d" // Format with the log id

	CacheExpiration     = 5 * time.Minute
	LogDetailExpiration = 1 * time.Hour
)

// LogStatistics holds the dashboard counters for the shipping event log.
type LogStatistics struct {
	TotalLogs   int `json:"total_logs"`
	SuccessLogs int `json:"success_logs"`
	ErrorLogs   int `json:"error_logs"`
}

// GetLogStatistics returns the dashboard counters from cache or database.
func GetLogStatistics() LogStatistics {
	return LogStatistics{
		TotalLogs:   GetTotalLogs(),
		SuccessLogs: GetLogsByStatus(models.LogStatusSuccess),
		ErrorLogs:   GetLogsByStatus(models.LogStatusError),
	}
}

// GetTotalLogs returns the total number of log rows from cache or database.
func GetTotalLogs() int {
	count, err := cache.GetInt(CacheKeyLogsTotal)
	if err == nil {
		return count
	}

	var total int64
	db := database.GetDB()
	if err := db.Model(&models.ShippingEventLog{}).Count(&total).Error; err != nil {
		log.Printf("Error counting webhook logs: %v", err)
		return 0
	}

	if err := cache.Set(CacheKeyLogsTotal, strconv.FormatInt(total, 10), CacheExpiration); err != nil {
		log.Printf("Error caching webhook log total: %v", err)
	}

	return int(total)
}

// GetLogsByStatus returns the number of log rows with the given status from
// cache or database.
func GetLogsByStatus(status string) int {
	key := statusKey(status)

	count, err := cache.GetInt(key)
	if err == nil {
		return count
	}

	var total int64
	db := database.GetDB()
	if err := db.Model(&models.ShippingEventLog{}).Where("status = ?", status).Count(&total).Error; err != nil {
		log.Printf("Error counting webhook logs with status %s: %v", status, err)
		return 0
	}

	if err := cache.Set(key, strconv.FormatInt(total, 10), CacheExpiration); err != nil {
		log.Printf("Error caching webhook log count for status %s: %v", status, err)
	}

	return int(total)
}

func statusKey(status string) string {
	switch status {
	case models.LogStatusSuccess:
		return CacheKeyLogsSuccess
	case models.LogStatusError:
		return CacheKeyLogsError
	default:
		return "statistics:logs:" + status
	}
}

// LogDetailKey returns the cache key for a single log row.
func LogDetailKey(id uint64) string {
	return fmt.Sprintf(CacheKeyLogDetail, id)
}

// InvalidateLogCaches drops the counter caches. Called after every log write
// so the dashboard never serves stale counts past a write.
func InvalidateLogCaches() {
	if err := cache.Delete(CacheKeyLogsTotal, CacheKeyLogsSuccess, CacheKeyLogsError); err != nil {
		log.Printf("Error invalidating webhook log statistics: %v", err)
	}
}

// InvalidateLogDetail drops the cached detail row for one log entry.
func InvalidateLogDetail(id uint64) {
	if err := cache.Delete(LogDetailKey(id)); err != nil {
		log.Printf("Error invalidating webhook log detail %d: %v", id, err)
	}
}
