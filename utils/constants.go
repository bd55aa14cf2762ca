// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// FieldListCachePrefix is the prefix for cached field search results.
const FieldListCachePrefix = "fields:"

// FieldListCacheTTL is how long a cached field listing stays fresh.
const FieldListCacheTTL = 5 * time.Minute

// DateFormat is the calendar-day layout used across bookings and slots.
const DateFormat = "2006-01-02"

// TimeFormat is the wall-clock "HH:MM" layout used for slot boundaries.
const TimeFormat = "15:04"
