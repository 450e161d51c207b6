// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session cache keys.
const AuthCachePrefix = "session:"

// AuthCacheTTL is the time-to-live for session cache entries.
const AuthCacheTTL = 10 * time.Minute
