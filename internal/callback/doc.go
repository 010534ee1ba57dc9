// Package callback implements the HTTP server functionality required to handle incoming
// EventSub webhook requests from Twitch: each POST to /callback is verified against the
// shared webhook secret, parsed into a typed event via the eventsub package, and - if
// it's a notification - fanned out to the twitch-events exchange.
package callback
