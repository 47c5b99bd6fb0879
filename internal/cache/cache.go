// Package cache provides the schedule response cache used by the HTTP API.
package cache

import "fmt"

// ScheduleCache stores rendered schedule responses keyed by loan terms. Cache
// failures are advisory; callers recompute on a miss.
type ScheduleCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Key derives the cache key for a loan terms tuple.
func Key(principal, rate float64, periods int) string {
	return fmt.Sprintf("schedule:%.2f:%.6f:%d", principal, rate, periods)
}
