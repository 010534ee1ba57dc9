package subscription

import (
	"github.com/nicklaw5/helix/v2"

	"github.com/golden-vcr/eventsub"
)

// TwitchClient represents the subset of Twitch API client functionality used
// to view and manage the state of EventSub subscriptions
type TwitchClient interface {
	GetEventSubSubscriptions(params *helix.EventSubSubscriptionsParams) (*helix.EventSubSubscriptionsResponse, error)
	CreateEventSubSubscription(payload *helix.EventSubSubscription) (*helix.EventSubSubscriptionsResponse, error)
	RemoveEventSubSubscription(id string) (*helix.RemoveEventSubSubscriptionParamsResponse, error)
}

// ownedSubscription is one extant subscription registered against our
// callback URL, reduced to the fields that reconciliation cares about. The
// Twitch API's condition block is resolved into an eventsub.Condition as soon
// as the subscription is fetched, so everything downstream compares conditions
// natively.
type ownedSubscription struct {
	id               string
	subscriptionType string
	version          string
	condition        eventsub.Condition
	status           string
}

// Status represents the status of all registered EventSub webhook subscriptions
type Status struct {
	Ok            bool    `json:"ok"`
	Subscriptions []State `json:"subscriptions"`
}

// State represents the state of a single EventSub subscription
type State struct {
	Required  bool              `json:"required"`
	Type      string            `json:"type"`
	Version   string            `json:"version"`
	Condition map[string]string `json:"condition"`
	Status    string            `json:"status"`

	condition      eventsub.Condition
	subscriptionId string
}

// formatCondition converts an eventsub.Condition to a map[string]string so
// that it can be reliably JSON-serialized without including values for empty
// fields
func formatCondition(cond *eventsub.Condition) map[string]string {
	result := make(map[string]string)
	if cond.BroadcasterUserID != "" {
		result["broadcaster_user_id"] = cond.BroadcasterUserID
	}
	if cond.FromBroadcasterUserID != "" {
		result["from_broadcaster_user_id"] = cond.FromBroadcasterUserID
	}
	if cond.ModeratorUserID != "" {
		result["moderator_user_id"] = cond.ModeratorUserID
	}
	if cond.ToBroadcasterUserID != "" {
		result["to_broadcaster_user_id"] = cond.ToBroadcasterUserID
	}
	if cond.RewardID != "" {
		result["reward_id"] = cond.RewardID
	}
	if cond.ClientID != "" {
		result["client_id"] = cond.ClientID
	}
	if cond.ExtensionClientID != "" {
		result["extension_client_id"] = cond.ExtensionClientID
	}
	if cond.UserID != "" {
		result["user_id"] = cond.UserID
	}
	return result
}

// conditionToHelix converts an eventsub.Condition to the equivalent
// helix.EventSubCondition struct used in Twitch API requests
func conditionToHelix(cond *eventsub.Condition) helix.EventSubCondition {
	return helix.EventSubCondition{
		BroadcasterUserID:     cond.BroadcasterUserID,
		FromBroadcasterUserID: cond.FromBroadcasterUserID,
		ModeratorUserID:       cond.ModeratorUserID,
		ToBroadcasterUserID:   cond.ToBroadcasterUserID,
		RewardID:              cond.RewardID,
		ClientID:              cond.ClientID,
		ExtensionClientID:     cond.ExtensionClientID,
		UserID:                cond.UserID,
	}
}

// conditionFromHelix converts a condition as returned by the Twitch API into
// an eventsub.Condition, used once at the API boundary when fetching owned
// subscriptions
func conditionFromHelix(cond *helix.EventSubCondition) eventsub.Condition {
	return eventsub.Condition{
		BroadcasterUserID:     cond.BroadcasterUserID,
		FromBroadcasterUserID: cond.FromBroadcasterUserID,
		ModeratorUserID:       cond.ModeratorUserID,
		ToBroadcasterUserID:   cond.ToBroadcasterUserID,
		RewardID:              cond.RewardID,
		ClientID:              cond.ClientID,
		ExtensionClientID:     cond.ExtensionClientID,
		UserID:                cond.UserID,
	}
}
