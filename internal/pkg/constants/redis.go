package constants

import "time"

// Redis key patterns and TTLs
const (
	// KeyUnreadCount caches a user's unread notification count.
	// Format: notifications:unread:<user_id>
	KeyUnreadCount = "notifications:unread:%s"

	// KeyDriverList caches the public driver listing.
	KeyDriverList = "users:drivers"

	// TTLUnreadCount bounds staleness if an invalidation is lost.
	TTLUnreadCount = 5 * time.Minute

	// TTLDriverList keeps the driver listing fresh enough for browsing.
	TTLDriverList = 1 * time.Minute
)
