package eventsub

import "encoding/json"

// MessageType distinguishes the three kinds of message an EventSub transport
// can deliver. It is the value carried by the Twitch-Eventsub-Message-Type
// header; on the text-only parse path it is inferred from the body's shape.
type MessageType string

const (
	// MessageTypeNotification is a fired event.
	MessageTypeNotification MessageType = "notification"
	// MessageTypeVerification is the handshake challenge Twitch sends when a
	// webhook subscription is first created.
	MessageTypeVerification MessageType = "webhook_callback_verification"
	// MessageTypeRevocation announces that Twitch has terminated the
	// subscription.
	MessageTypeRevocation MessageType = "revocation"
)

// EventPayload is the closed set of typed event payloads the catalog can
// produce. Every concrete payload struct in this package implements it; no
// types outside this package can.
type EventPayload interface {
	eventPayload()
}

// Event is a fully parsed EventSub message. Type and Version identify the
// catalog entry the message was dispatched through, MessageType classifies
// the message, and Subscription carries the raw subscription block common to
// all message kinds. Payload is non-nil only for notifications, holding a
// pointer to the payload struct for the matched (Type, Version); Challenge
// is non-empty only for verification requests.
//
// An Event is exclusively owned by its caller: parsing shares no state, so
// Events may be produced and consumed from any number of goroutines.
type Event struct {
	Type         EventType
	Version      string
	MessageType  MessageType
	Subscription Subscription
	Challenge    string
	Payload      EventPayload
}

// IsNotification reports whether this message is a fired event.
func (e *Event) IsNotification() bool { return e.MessageType == MessageTypeNotification }

// IsVerificationRequest reports whether this message is a webhook callback
// verification handshake.
func (e *Event) IsVerificationRequest() bool { return e.MessageType == MessageTypeVerification }

// IsRevocation reports whether this message announces that the subscription
// has been revoked.
func (e *Event) IsRevocation() bool { return e.MessageType == MessageTypeRevocation }

// VerificationRequest is the content of a webhook callback verification
// message: the challenge string must be echoed back to Twitch to confirm the
// subscription.
type VerificationRequest struct {
	Subscription Subscription `json:"subscription"`
	Challenge    string       `json:"challenge"`
}

// GetVerificationRequest returns the verification request carried by this
// message, if it is one. It works uniformly across all payload types.
func (e *Event) GetVerificationRequest() (*VerificationRequest, bool) {
	if e.MessageType != MessageTypeVerification {
		return nil, false
	}
	return &VerificationRequest{Subscription: e.Subscription, Challenge: e.Challenge}, true
}

// SubscriptionRecord normalizes the message's subscription block: the raw
// condition JSON is resolved into a typed Condition, and the type and
// version are the ones the message was actually dispatched with.
func (e *Event) SubscriptionRecord() (*SubscriptionRecord, error) {
	var condition Condition
	if len(e.Subscription.Condition) > 0 {
		if err := json.Unmarshal(e.Subscription.Condition, &condition); err != nil {
			return nil, &ConditionError{Err: err}
		}
	}
	return &SubscriptionRecord{
		ID:        e.Subscription.ID,
		Status:    e.Subscription.Status,
		Cost:      e.Subscription.Cost,
		Condition: condition,
		Transport: e.Subscription.Transport,
		CreatedAt: e.Subscription.CreatedAt,
		Type:      e.Type,
		Version:   e.Version,
	}, nil
}
