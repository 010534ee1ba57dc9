package eventsub

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// ParseOption adjusts how message payloads are decoded.
type ParseOption func(*parseConfig)

type parseConfig struct {
	strict bool
}

// WithStrictDecoding causes parsing to fail with a DeserializationError if
// the message body contains fields that the payload schema does not declare.
// By default unrecognized fields are ignored, so that new fields added by
// Twitch do not break processing of otherwise well-formed messages.
func WithStrictDecoding() ParseOption {
	return func(cfg *parseConfig) {
		cfg.strict = true
	}
}

// Parse parses a raw message body as an Event, inferring the message type
// from the body's shape. Prefer ParseHTTP when the original request headers
// are available.
func Parse(body []byte, opts ...ParseOption) (*Event, error) {
	env, err := parseTextEnvelope(body)
	if err != nil {
		return nil, err
	}
	return parseRequest(env, body, opts...)
}

// ParseHTTP parses a message as an Event using the headers of the HTTP
// request that delivered it, trusting the Twitch-Eventsub-* routing headers
// rather than re-inferring routing metadata from the body. The body must be
// read out of the request beforehand, since signature verification needs the
// same raw bytes.
func ParseHTTP(header http.Header, body []byte, opts ...ParseOption) (*Event, error) {
	env, err := parseHeaderEnvelope(header)
	if err != nil {
		return nil, err
	}
	return parseRequest(env, body, opts...)
}

// parseRequest dispatches a message through the catalog: an exact match on
// (type, version) selects the payload schema, and anything else is a routing
// failure distinct from the unknown-type check already made by the envelope
// parsers.
func parseRequest(env envelope, body []byte, opts ...ParseOption) (*Event, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	entry, ok := entriesByKey[routingKey(env.eventType, env.version)]
	if !ok {
		return nil, &UnimplementedEventError{Type: env.eventType, Version: env.version}
	}
	return entry.parse(env.messageType, body, cfg)
}

// parsePayload decodes a full message body against one catalog entry's
// payload schema T, populating the parts of the Event that the message type
// calls for.
func parsePayload[T EventPayload](eventType EventType, version string, kind MessageType, data []byte, cfg parseConfig) (*Event, error) {
	var body struct {
		Subscription Subscription `json:"subscription"`
		Challenge    string       `json:"challenge"`
		Event        *T           `json:"event"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if cfg.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&body); err != nil {
		return nil, newDeserializationError(data, err)
	}

	event := &Event{
		Type:         eventType,
		Version:      version,
		MessageType:  kind,
		Subscription: body.Subscription,
	}
	switch kind {
	case MessageTypeNotification:
		if body.Event == nil {
			return nil, newDeserializationError(data, errors.New("notification message has no event field"))
		}
		// *T is a pointer to a type parameter and can't be assigned to the
		// constraint interface directly; payload structs implement
		// EventPayload with value receivers, so *T always satisfies it
		event.Payload = any(body.Event).(EventPayload)
	case MessageTypeVerification:
		if body.Challenge == "" {
			return nil, newDeserializationError(data, errors.New("verification request has no challenge field"))
		}
		event.Challenge = body.Challenge
	case MessageTypeRevocation:
		// Only the subscription block is meaningful
	}
	return event, nil
}
