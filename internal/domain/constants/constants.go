// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selectors, matched against config.PubSub.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Review event types published after a review workflow commits.
const (
	ReviewEventSubmitted = "review.submitted"
	ReviewEventRetracted = "review.retracted"
)
