package transaction

import "time"

// Cache keys
const (
	TransactionCachePrefix = "transaction:"
)

// Cache lifetime for individual transaction lookups.
const CacheTTL = time.Hour
