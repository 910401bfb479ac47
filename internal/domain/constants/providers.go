// Package constants holds provider identifiers shared between config and infra.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"

	// StorageProviderFile selects the JSON snapshot file store.
	StorageProviderFile = "file"
	// StorageProviderSqlite selects the sqlite row store.
	StorageProviderSqlite = "sqlite"

	// NotificationProviderLog selects the structured-log scheduler.
	NotificationProviderLog = "log"
	// NotificationProviderFCM selects the Firebase Cloud Messaging scheduler.
	NotificationProviderFCM = "fcm"
)
