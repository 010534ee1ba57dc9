package eventsub

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Names of the Twitch-Eventsub-* headers set on webhook requests.
const (
	HeaderSubscriptionType    = "Twitch-Eventsub-Subscription-Type"
	HeaderSubscriptionVersion = "Twitch-Eventsub-Subscription-Version"
	HeaderMessageType         = "Twitch-Eventsub-Message-Type"
	HeaderMessageID           = "Twitch-Eventsub-Message-Id"
	HeaderMessageTimestamp    = "Twitch-Eventsub-Message-Timestamp"
	HeaderMessageSignature    = "Twitch-Eventsub-Message-Signature"
)

// envelope is the routing triple extracted from a message before its payload
// is decoded: which schema version and subscription type the sender declared,
// and what kind of message this is.
type envelope struct {
	version     string
	eventType   EventType
	messageType MessageType
}

// parseTextEnvelope infers routing metadata from a bare JSON body, probing
// only the fields needed to route: subscription.type, subscription.version,
// and the presence of the event and challenge fields. A populated event field
// marks a notification, a populated challenge field marks a verification
// request, and a body with neither is a revocation.
func parseTextEnvelope(body []byte) (envelope, error) {
	if !gjson.ValidBytes(body) {
		return envelope{}, &MalformedEnvelopeError{Reason: "body is not valid JSON"}
	}
	eventType := gjson.GetBytes(body, "subscription.type")
	version := gjson.GetBytes(body, "subscription.version")
	if eventType.Type != gjson.String || version.Type != gjson.String {
		return envelope{}, &MalformedEnvelopeError{Reason: "subscription.type and subscription.version must be present as strings"}
	}
	if !IsKnownType(eventType.Str) {
		return envelope{}, &UnknownEventTypeError{Type: eventType.Str}
	}

	messageType := MessageTypeRevocation
	if isPopulated(gjson.GetBytes(body, "event")) {
		messageType = MessageTypeNotification
	} else if isPopulated(gjson.GetBytes(body, "challenge")) {
		messageType = MessageTypeVerification
	}
	return envelope{
		version:     version.Str,
		eventType:   EventType(eventType.Str),
		messageType: messageType,
	}, nil
}

// isPopulated treats an explicit JSON null the same as an absent field
func isPopulated(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// parseHeaderEnvelope reads routing metadata from the dedicated headers that
// Twitch sets on webhook requests. The body is not consulted: on the HTTP
// path the headers are authoritative, including for the message type.
func parseHeaderEnvelope(header http.Header) (envelope, error) {
	eventType := header.Get(HeaderSubscriptionType)
	version := header.Get(HeaderSubscriptionVersion)
	messageType := header.Get(HeaderMessageType)
	if eventType == "" || version == "" || messageType == "" {
		return envelope{}, &MalformedEnvelopeError{Reason: "one or more required Twitch-Eventsub-* routing headers are missing"}
	}
	switch MessageType(messageType) {
	case MessageTypeNotification, MessageTypeVerification, MessageTypeRevocation:
	default:
		return envelope{}, &MalformedEnvelopeError{Reason: fmt.Sprintf("unrecognized message type %q", messageType)}
	}
	if !IsKnownType(eventType) {
		return envelope{}, &UnknownEventTypeError{Type: eventType}
	}
	return envelope{
		version:     version,
		eventType:   EventType(eventType),
		messageType: MessageType(messageType),
	}, nil
}
