// Package eventsub provides typed parsing, dispatch, and verification for
// incoming Twitch EventSub webhook messages, as described in
// https://dev.twitch.tv/docs/eventsub/handling-webhook-events/
//
// The package maps each supported (subscription type, version) pair to a
// concrete Go payload struct via a single declarative catalog. An incoming
// message - either a raw JSON body or the headers+body of a full HTTP request
// - is routed through that catalog and decoded into an Event value that can
// be classified and consumed without any further type inspection:
//
//	if !eventsub.VerifyNotification(secret, req.Header, body) {
//	    // reject the request
//	}
//	event, err := eventsub.ParseHTTP(req.Header, body)
//	if err != nil {
//	    // reject the request
//	}
//	if v, ok := event.GetVerificationRequest(); ok {
//	    // echo v.Challenge to confirm the subscription
//	}
//	if event.IsNotification() {
//	    online := event.Payload.(*eventsub.StreamOnlineEvent)
//	    // ...
//	}
//
// All parsing functions are pure: they hold no state beyond the immutable
// catalog and may be called concurrently without synchronization.
package eventsub
