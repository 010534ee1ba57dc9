package eventsub

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MalformedEnvelopeError indicates that the routing metadata required to
// dispatch a message could not be extracted: the body was not valid JSON, the
// minimal subscription.type/subscription.version shape was missing, or one of
// the required Twitch-Eventsub-* headers was absent or unrecognized. Messages
// that fail this way should be rejected outright (e.g. HTTP 400).
type MalformedEnvelopeError struct {
	Reason string
}

func (e *MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("malformed eventsub message: %s", e.Reason)
}

// UnknownEventTypeError indicates that the declared subscription type string
// does not appear in the catalog at all, for any version. This either means
// Twitch has shipped a new subscription type that the catalog needs to learn
// about, or the sender is misconfigured or malicious.
type UnknownEventTypeError struct {
	Type string
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("unknown eventsub subscription type %q", e.Type)
}

// UnimplementedEventError indicates that the subscription type is recognized
// but the catalog has no entry for this particular version: a partial catalog
// gap, as opposed to the total gap signaled by UnknownEventTypeError.
type UnimplementedEventError struct {
	Type    EventType
	Version string
}

func (e *UnimplementedEventError) Error() string {
	return fmt.Sprintf("eventsub subscription type %q has no supported schema for version %q", e.Type, e.Version)
}

// DeserializationError indicates that routing succeeded but the full message
// body could not be decoded into the catalog entry's payload schema. Raw
// preserves the offending message text for diagnostics; Field identifies the
// JSON field that failed to decode, when the underlying decoder reported one.
type DeserializationError struct {
	Raw   string
	Field string
	Err   error
}

func (e *DeserializationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to decode eventsub payload at field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("failed to decode eventsub payload: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

func newDeserializationError(data []byte, err error) *DeserializationError {
	field := ""
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field = typeErr.Field
	}
	return &DeserializationError{Raw: string(data), Field: field, Err: err}
}

// ConditionError indicates that the condition block embedded in a message's
// subscription metadata could not be resolved into a typed Condition value.
type ConditionError struct {
	Err error
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("failed to resolve eventsub subscription condition: %v", e.Err)
}

func (e *ConditionError) Unwrap() error { return e.Err }
