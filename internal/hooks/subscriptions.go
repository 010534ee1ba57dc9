// Package hooks declares the set of EventSub webhook subscriptions that must
// be registered for this service to function, shared between the server and
// the local simulation CLI.
package hooks

import (
	"github.com/golden-vcr/eventsub"
)

// Subscriptions declares all of the Twitch EventSub webhook subscriptions
// that must be registered for our app to function
var Subscriptions = eventsub.RequiredSubscriptions{
	{
		Type:    eventsub.EventTypeChannelUpdate,
		Version: "2",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
	},
	{
		Type:    eventsub.EventTypeStreamOnline,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
	},
	{
		Type:    eventsub.EventTypeStreamOffline,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
	},
	{
		Type:    eventsub.EventTypeChannelHypeTrainBegin,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{
			"channel:read:hype_train",
		},
	},
	{
		Type:    eventsub.EventTypeChannelFollow,
		Version: "2",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
			ModeratorUserID:   "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{
			"moderator:read:followers",
		},
	},
	{
		Type:    eventsub.EventTypeChannelRaid,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			ToBroadcasterUserID: "{{.ChannelUserId}}",
		},
	},
	{
		Type:    eventsub.EventTypeChannelCheer,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{
			"bits:read",
		},
	},
	{
		Type:    eventsub.EventTypeChannelSubscribe,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{
			"channel:read:subscriptions",
		},
	},
	{
		Type:    eventsub.EventTypeChannelSubscriptionEnd,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{
			"channel:read:subscriptions",
		},
	},
	{
		Type:    eventsub.EventTypeChannelSubscriptionGift,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{
			"channel:read:subscriptions",
		},
	},
	{
		Type:    eventsub.EventTypeChannelSubscriptionMessage,
		Version: "1",
		TemplatedCondition: eventsub.Condition{
			BroadcasterUserID: "{{.ChannelUserId}}",
		},
		RequiredScopes: []string{
			"channel:read:subscriptions",
		},
	},
}
