package constants

// NATS subjects and queue groups
const (
	// SubjectNotificationCreated carries models.NotificationEvent payloads
	// from the domain services to the notification sink.
	SubjectNotificationCreated = "notifications.created"

	// QueueGroupNotifications lets multiple API instances share the
	// notification stream without duplicate persistence.
	QueueGroupNotifications = "notifications-workers"
)
