package eventsub

// Condition is the filter structure that scopes an EventSub subscription to a
// particular channel, user, or reward. Different subscription types consume
// different subsets of these fields; unused fields are omitted when the
// condition is serialized, so a Condition can be compared directly against
// the condition blocks returned by the Twitch API.
type Condition struct {
	BroadcasterUserID     string `json:"broadcaster_user_id,omitempty"`
	FromBroadcasterUserID string `json:"from_broadcaster_user_id,omitempty"`
	ModeratorUserID       string `json:"moderator_user_id,omitempty"`
	ToBroadcasterUserID   string `json:"to_broadcaster_user_id,omitempty"`
	RewardID              string `json:"reward_id,omitempty"`
	ClientID              string `json:"client_id,omitempty"`
	ExtensionClientID     string `json:"extension_client_id,omitempty"`
	UserID                string `json:"user_id,omitempty"`
}
