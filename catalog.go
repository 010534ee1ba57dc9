package eventsub

import "fmt"

// EventType identifies one EventSub subscription type by its wire-level name.
// The set of constants below maps one-to-one onto the type strings Twitch
// sends; every constant has at least one entry in the catalog.
type EventType string

const (
	EventTypeChannelUpdate                 EventType = "channel.update"
	EventTypeChannelFollow                 EventType = "channel.follow"
	EventTypeChannelSubscribe              EventType = "channel.subscribe"
	EventTypeChannelSubscriptionEnd        EventType = "channel.subscription.end"
	EventTypeChannelSubscriptionGift       EventType = "channel.subscription.gift"
	EventTypeChannelSubscriptionMessage    EventType = "channel.subscription.message"
	EventTypeChannelCheer                  EventType = "channel.cheer"
	EventTypeChannelRaid                   EventType = "channel.raid"
	EventTypeChannelBan                    EventType = "channel.ban"
	EventTypeChannelUnban                  EventType = "channel.unban"
	EventTypeChannelPointsRewardAdd        EventType = "channel.channel_points_custom_reward.add"
	EventTypeChannelPointsRewardUpdate     EventType = "channel.channel_points_custom_reward.update"
	EventTypeChannelPointsRewardRemove     EventType = "channel.channel_points_custom_reward.remove"
	EventTypeChannelPointsRedemptionAdd    EventType = "channel.channel_points_custom_reward_redemption.add"
	EventTypeChannelPointsRedemptionUpdate EventType = "channel.channel_points_custom_reward_redemption.update"
	EventTypeChannelPollBegin              EventType = "channel.poll.begin"
	EventTypeChannelPollProgress           EventType = "channel.poll.progress"
	EventTypeChannelPollEnd                EventType = "channel.poll.end"
	EventTypeChannelPredictionBegin        EventType = "channel.prediction.begin"
	EventTypeChannelPredictionProgress     EventType = "channel.prediction.progress"
	EventTypeChannelPredictionLock         EventType = "channel.prediction.lock"
	EventTypeChannelPredictionEnd          EventType = "channel.prediction.end"
	EventTypeChannelGoalBegin              EventType = "channel.goal.begin"
	EventTypeChannelGoalProgress           EventType = "channel.goal.progress"
	EventTypeChannelGoalEnd                EventType = "channel.goal.end"
	EventTypeChannelHypeTrainBegin         EventType = "channel.hype_train.begin"
	EventTypeChannelHypeTrainProgress      EventType = "channel.hype_train.progress"
	EventTypeChannelHypeTrainEnd           EventType = "channel.hype_train.end"
	EventTypeStreamOnline                  EventType = "stream.online"
	EventTypeStreamOffline                 EventType = "stream.offline"
	EventTypeUserUpdate                    EventType = "user.update"
	EventTypeUserAuthorizationGrant        EventType = "user.authorization.grant"
	EventTypeUserAuthorizationRevoke       EventType = "user.authorization.revoke"
)

// catalogEntry binds one (type, version) pair to the parse function for its
// payload schema. The type and version fields are the routing key used by
// the dispatcher; parse decodes a full message body into an Event holding
// the entry's concrete payload struct.
type catalogEntry struct {
	eventType EventType
	version   string
	parse     func(kind MessageType, data []byte, cfg parseConfig) (*Event, error)
}

func newEntry[T EventPayload](eventType EventType, version string) catalogEntry {
	return catalogEntry{
		eventType: eventType,
		version:   version,
		parse: func(kind MessageType, data []byte, cfg parseConfig) (*Event, error) {
			return parsePayload[T](eventType, version, kind, data, cfg)
		},
	}
}

// catalog is the authoritative list of every supported (type, version) pair
// and its payload schema. The envelope parser's wire-string set and the
// dispatcher's routing table are both derived from this one table at init
// time; adding support for a new subscription type or version means adding
// exactly one entry here (plus the payload struct it references).
var catalog = []catalogEntry{
	newEntry[ChannelUpdateEvent](EventTypeChannelUpdate, "1"),
	newEntry[ChannelUpdateV2Event](EventTypeChannelUpdate, "2"),
	newEntry[ChannelFollowEvent](EventTypeChannelFollow, "1"),
	newEntry[ChannelFollowEvent](EventTypeChannelFollow, "2"),
	newEntry[ChannelSubscribeEvent](EventTypeChannelSubscribe, "1"),
	newEntry[ChannelSubscriptionEndEvent](EventTypeChannelSubscriptionEnd, "1"),
	newEntry[ChannelSubscriptionGiftEvent](EventTypeChannelSubscriptionGift, "1"),
	newEntry[ChannelSubscriptionMessageEvent](EventTypeChannelSubscriptionMessage, "1"),
	newEntry[ChannelCheerEvent](EventTypeChannelCheer, "1"),
	newEntry[ChannelRaidEvent](EventTypeChannelRaid, "1"),
	newEntry[ChannelBanEvent](EventTypeChannelBan, "1"),
	newEntry[ChannelUnbanEvent](EventTypeChannelUnban, "1"),
	newEntry[ChannelPointsRewardEvent](EventTypeChannelPointsRewardAdd, "1"),
	newEntry[ChannelPointsRewardEvent](EventTypeChannelPointsRewardUpdate, "1"),
	newEntry[ChannelPointsRewardEvent](EventTypeChannelPointsRewardRemove, "1"),
	newEntry[ChannelPointsRedemptionEvent](EventTypeChannelPointsRedemptionAdd, "1"),
	newEntry[ChannelPointsRedemptionEvent](EventTypeChannelPointsRedemptionUpdate, "1"),
	newEntry[ChannelPollBeginEvent](EventTypeChannelPollBegin, "1"),
	newEntry[ChannelPollProgressEvent](EventTypeChannelPollProgress, "1"),
	newEntry[ChannelPollEndEvent](EventTypeChannelPollEnd, "1"),
	newEntry[ChannelPredictionBeginEvent](EventTypeChannelPredictionBegin, "1"),
	newEntry[ChannelPredictionProgressEvent](EventTypeChannelPredictionProgress, "1"),
	newEntry[ChannelPredictionLockEvent](EventTypeChannelPredictionLock, "1"),
	newEntry[ChannelPredictionEndEvent](EventTypeChannelPredictionEnd, "1"),
	newEntry[ChannelGoalBeginEvent](EventTypeChannelGoalBegin, "1"),
	newEntry[ChannelGoalProgressEvent](EventTypeChannelGoalProgress, "1"),
	newEntry[ChannelGoalEndEvent](EventTypeChannelGoalEnd, "1"),
	newEntry[ChannelHypeTrainBeginEvent](EventTypeChannelHypeTrainBegin, "1"),
	newEntry[ChannelHypeTrainProgressEvent](EventTypeChannelHypeTrainProgress, "1"),
	newEntry[ChannelHypeTrainEndEvent](EventTypeChannelHypeTrainEnd, "1"),
	newEntry[StreamOnlineEvent](EventTypeStreamOnline, "1"),
	newEntry[StreamOfflineEvent](EventTypeStreamOffline, "1"),
	newEntry[UserUpdateEvent](EventTypeUserUpdate, "1"),
	newEntry[UserAuthorizationGrantEvent](EventTypeUserAuthorizationGrant, "1"),
	newEntry[UserAuthorizationRevokeEvent](EventTypeUserAuthorizationRevoke, "1"),
}

var (
	entriesByKey = make(map[string]*catalogEntry, len(catalog))
	knownTypes   = make(map[EventType]struct{}, len(catalog))
)

func init() {
	for i := range catalog {
		e := &catalog[i]
		key := routingKey(e.eventType, e.version)
		if _, exists := entriesByKey[key]; exists {
			panic(fmt.Sprintf("eventsub: duplicate catalog entry for type %q version %q", e.eventType, e.version))
		}
		entriesByKey[key] = e
		knownTypes[e.eventType] = struct{}{}
	}
}

func routingKey(eventType EventType, version string) string {
	return string(eventType) + "/" + version
}

// IsKnownType reports whether the given wire-level type string appears in the
// catalog for at least one version.
func IsKnownType(eventType string) bool {
	_, ok := knownTypes[EventType(eventType)]
	return ok
}
