package utils

import (
	"log"
	"strconv"
	"time"

	"lingadmin/cache"
	"lingadmin/config"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[CACHE-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartCacheSweeper evicts cache entries that have gone untouched past the
// configured horizon. Invalidation only marks entries stale; this is the one
// place entries are actually deleted.
func StartCacheSweeper(store *cache.Store) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.CacheSweepSpec, func() {
		removed := store.Sweep(config.AppConfig.CacheEvictAfter)
		if removed > 0 {
			logSweeper("Evicted " + strconv.Itoa(removed) + " idle entries, " +
				strconv.Itoa(store.Len()) + " remaining")
		}
	})
	if err != nil {
		logSweeper("Failed to schedule sweep: " + err.Error())
		return c
	}

	c.Start()
	logSweeper("Scheduled with spec " + config.AppConfig.CacheSweepSpec)
	return c
}
