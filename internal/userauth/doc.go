// Package userauth redirects the broadcaster to a Twitch-hosted OAuth challenge where
// they can grant our application access to their channel with all the user scopes that
// our required EventSub subscriptions call for.
//
// Calls to the EventSub API itself are authorized with an application access token,
// obtained from our app's client ID and client secret. Certain subscription types
// additionally require that the app has been authorized against the target channel
// with specific OAuth scopes: e.g. registering a 'channel.follow' callback for a
// channel fails with a 403 unless our app has been granted the
// 'moderator:read:followers' scope on that channel.
//
// To establish that grant, we send the channel owner through an authorization code
// grant flow at id.twitch.tv, as described here:
//
// - https://dev.twitch.tv/docs/authentication/getting-tokens-oauth/#authorization-code-grant-flow
//
// The flow terminates with a Twitch User Access Token carrying the requisite scopes.
// We never use that token: the side effect of the grant being recorded on the Twitch
// backend is all that matters for subscription registration to succeed.
package userauth
