package domain

const (
	// Pagination constants
	DEFAULT_PAGE_LIMIT = 10
	MAX_PAGE_LIMIT     = 200

	// Real-time hub constants
	REALTIME_EVENT_NEW_MESSAGE = "newMessage"
	REALTIME_USER_GROUP_PREFIX = "user:"

	// Inbound webhook headers
	WEBHOOK_SECRET_HEADER = "X-Webhook-Secret"
)
