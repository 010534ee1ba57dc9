package eventsub

import (
	"encoding/json"
	"time"
)

// Subscription statuses reported by the Twitch API in the subscription block
// of EventSub messages.
const (
	SubscriptionStatusEnabled             = "enabled"
	SubscriptionStatusPending             = "webhook_callback_verification_pending"
	SubscriptionStatusVerificationFailed  = "webhook_callback_verification_failed"
	SubscriptionStatusNotificationFailure = "notification_failures_exceeded"
	SubscriptionStatusAuthorizationRevoke = "authorization_revoked"
	SubscriptionStatusUserRemoved         = "user_removed"
)

// Subscription is the subscription block embedded in every EventSub message,
// describing the registration that caused the message to be delivered. The
// condition is left as raw JSON here because its shape varies by subscription
// type; use Event.SubscriptionRecord to resolve it into a typed Condition.
type Subscription struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Type      string          `json:"type"`
	Version   string          `json:"version"`
	Cost      int             `json:"cost"`
	Condition json.RawMessage `json:"condition,omitempty"`
	Transport Transport       `json:"transport"`
	CreatedAt time.Time       `json:"created_at"`
}

// Transport describes how an EventSub subscription delivers its messages.
type Transport struct {
	Method    string `json:"method,omitempty"`
	Callback  string `json:"callback,omitempty"`
	Secret    string `json:"secret,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// SubscriptionRecord is the normalized form of a message's subscription
// metadata: the raw condition block is resolved into a typed Condition, and
// Type/Version echo the catalog entry the message was dispatched through.
type SubscriptionRecord struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Cost      int       `json:"cost"`
	Condition Condition `json:"condition"`
	Transport Transport `json:"transport"`
	CreatedAt time.Time `json:"created_at"`
	Type      EventType `json:"type"`
	Version   string    `json:"version"`
}
