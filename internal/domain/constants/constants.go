// Package constants contains values shared across layers.
package constants

const (
	// PubSubProviderLocal pushes events to a local HTTP endpoint in Pub/Sub push format.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Ledger event types published after a workflow commits.
const (
	EventProductActivated = "product.activated"
	EventRewardClaimed    = "reward.claimed"
	EventRewardExpired    = "reward.expired"
)

// ActivationCodePrefix prefixes every generated activation code.
const ActivationCodePrefix = "WEEV-"
