package eventsub

import "time"

// ChannelUpdateEvent (version 1) is sent when a broadcaster updates their
// channel's category, title, mature flag, or broadcast language.
type ChannelUpdateEvent struct {
	BroadcasterUserID    string `json:"broadcaster_user_id"`
	BroadcasterUserLogin string `json:"broadcaster_user_login"`
	BroadcasterUserName  string `json:"broadcaster_user_name"`
	Title                string `json:"title"`
	Language             string `json:"language"`
	CategoryID           string `json:"category_id"`
	CategoryName         string `json:"category_name"`
	IsMature             bool   `json:"is_mature"`
}

// ChannelUpdateV2Event is the version-2 shape of channel.update: the mature
// flag is replaced by the channel's content classification labels.
type ChannelUpdateV2Event struct {
	BroadcasterUserID           string   `json:"broadcaster_user_id"`
	BroadcasterUserLogin        string   `json:"broadcaster_user_login"`
	BroadcasterUserName         string   `json:"broadcaster_user_name"`
	Title                       string   `json:"title"`
	Language                    string   `json:"language"`
	CategoryID                  string   `json:"category_id"`
	CategoryName                string   `json:"category_name"`
	ContentClassificationLabels []string `json:"content_classification_labels"`
}

// ChannelFollowEvent is sent when a specified channel receives a follow.
// Versions 1 and 2 share this shape; they differ only in the condition
// required to subscribe.
type ChannelFollowEvent struct {
	UserID               string    `json:"user_id"`
	UserLogin            string    `json:"user_login"`
	UserName             string    `json:"user_name"`
	BroadcasterUserID    string    `json:"broadcaster_user_id"`
	BroadcasterUserLogin string    `json:"broadcaster_user_login"`
	BroadcasterUserName  string    `json:"broadcaster_user_name"`
	FollowedAt           time.Time `json:"followed_at"`
}

// ChannelSubscribeEvent is sent when a channel receives a new subscriber.
// This does not include resubscribes.
type ChannelSubscribeEvent struct {
	UserID               string `json:"user_id"`
	UserLogin            string `json:"user_login"`
	UserName             string `json:"user_name"`
	BroadcasterUserID    string `json:"broadcaster_user_id"`
	BroadcasterUserLogin string `json:"broadcaster_user_login"`
	BroadcasterUserName  string `json:"broadcaster_user_name"`
	Tier                 string `json:"tier"`
	IsGift               bool   `json:"is_gift"`
}

// ChannelSubscriptionEndEvent is sent when a subscription to a channel
// expires.
type ChannelSubscriptionEndEvent struct {
	UserID               string `json:"user_id"`
	UserLogin            string `json:"user_login"`
	UserName             string `json:"user_name"`
	BroadcasterUserID    string `json:"broadcaster_user_id"`
	BroadcasterUserLogin string `json:"broadcaster_user_login"`
	BroadcasterUserName  string `json:"broadcaster_user_name"`
	Tier                 string `json:"tier"`
	IsGift               bool   `json:"is_gift"`
}

// ChannelSubscriptionGiftEvent is sent when a user gives one or more gifted
// subscriptions in a channel. User fields are empty when the gift was
// anonymous; CumulativeTotal is nil for anonymous gifters.
type ChannelSubscriptionGiftEvent struct {
	UserID               string `json:"user_id,omitempty"`
	UserLogin            string `json:"user_login,omitempty"`
	UserName             string `json:"user_name,omitempty"`
	BroadcasterUserID    string `json:"broadcaster_user_id"`
	BroadcasterUserLogin string `json:"broadcaster_user_login"`
	BroadcasterUserName  string `json:"broadcaster_user_name"`
	Total                int    `json:"total"`
	Tier                 string `json:"tier"`
	CumulativeTotal      *int   `json:"cumulative_total"`
	IsAnonymous          bool   `json:"is_anonymous"`
}

// SubscriptionMessageText is the resubscription chat message attached to a
// channel.subscription.message notification.
type SubscriptionMessageText struct {
	Text   string         `json:"text"`
	Emotes []MessageEmote `json:"emotes,omitempty"`
}

// MessageEmote locates one emote within a chat message by byte offsets.
type MessageEmote struct {
	Begin int    `json:"begin"`
	End   int    `json:"end"`
	ID    string `json:"id"`
}

// ChannelSubscriptionMessageEvent is sent when a user sends a resubscription
// chat message in a specific channel.
type ChannelSubscriptionMessageEvent struct {
	UserID               string                  `json:"user_id"`
	UserLogin            string                  `json:"user_login"`
	UserName             string                  `json:"user_name"`
	BroadcasterUserID    string                  `json:"broadcaster_user_id"`
	BroadcasterUserLogin string                  `json:"broadcaster_user_login"`
	BroadcasterUserName  string                  `json:"broadcaster_user_name"`
	Tier                 string                  `json:"tier"`
	Message              SubscriptionMessageText `json:"message"`
	CumulativeMonths     int                     `json:"cumulative_months"`
	StreakMonths         *int                    `json:"streak_months"`
	DurationMonths       int                     `json:"duration_months"`
}

// ChannelCheerEvent is sent when a user cheers on the specified channel.
type ChannelCheerEvent struct {
	IsAnonymous          bool   `json:"is_anonymous"`
	UserID               string `json:"user_id,omitempty"`
	UserLogin            string `json:"user_login,omitempty"`
	UserName             string `json:"user_name,omitempty"`
	BroadcasterUserID    string `json:"broadcaster_user_id"`
	BroadcasterUserLogin string `json:"broadcaster_user_login"`
	BroadcasterUserName  string `json:"broadcaster_user_name"`
	Message              string `json:"message"`
	Bits                 int    `json:"bits"`
}

// ChannelRaidEvent is sent when a broadcaster raids another broadcaster's
// channel.
type ChannelRaidEvent struct {
	FromBroadcasterUserID    string `json:"from_broadcaster_user_id"`
	FromBroadcasterUserLogin string `json:"from_broadcaster_user_login"`
	FromBroadcasterUserName  string `json:"from_broadcaster_user_name"`
	ToBroadcasterUserID      string `json:"to_broadcaster_user_id"`
	ToBroadcasterUserLogin   string `json:"to_broadcaster_user_login"`
	ToBroadcasterUserName    string `json:"to_broadcaster_user_name"`
	Viewers                  int    `json:"viewers"`
}

// ChannelBanEvent is sent when a viewer is banned or timed out in the
// specified channel. EndsAt is nil for a permanent ban.
type ChannelBanEvent struct {
	UserID               string     `json:"user_id"`
	UserLogin            string     `json:"user_login"`
	UserName             string     `json:"user_name"`
	BroadcasterUserID    string     `json:"broadcaster_user_id"`
	BroadcasterUserLogin string     `json:"broadcaster_user_login"`
	BroadcasterUserName  string     `json:"broadcaster_user_name"`
	ModeratorUserID      string     `json:"moderator_user_id"`
	ModeratorUserLogin   string     `json:"moderator_user_login"`
	ModeratorUserName    string     `json:"moderator_user_name"`
	Reason               string     `json:"reason"`
	BannedAt             time.Time  `json:"banned_at"`
	EndsAt               *time.Time `json:"ends_at"`
	IsPermanent          bool       `json:"is_permanent"`
}

// ChannelUnbanEvent is sent when a viewer is unbanned in the specified
// channel.
type ChannelUnbanEvent struct {
	UserID               string `json:"user_id"`
	UserLogin            string `json:"user_login"`
	UserName             string `json:"user_name"`
	BroadcasterUserID    string `json:"broadcaster_user_id"`
	BroadcasterUserLogin string `json:"broadcaster_user_login"`
	BroadcasterUserName  string `json:"broadcaster_user_name"`
	ModeratorUserID      string `json:"moderator_user_id"`
	ModeratorUserLogin   string `json:"moderator_user_login"`
	ModeratorUserName    string `json:"moderator_user_name"`
}

// RewardLimit is an optional per-stream or per-user redemption cap on a
// custom channel points reward.
type RewardLimit struct {
	IsEnabled bool `json:"is_enabled"`
	Value     int  `json:"value"`
}

// RewardCooldown is the optional global cooldown between redemptions of a
// custom channel points reward.
type RewardCooldown struct {
	IsEnabled bool `json:"is_enabled"`
	Seconds   int  `json:"seconds"`
}

// RewardImage is a set of image URLs at fixed scales.
type RewardImage struct {
	URL1x string `json:"url_1x"`
	URL2x string `json:"url_2x"`
	URL4x string `json:"url_4x"`
}

// ChannelPointsRewardEvent describes a custom channel points reward. The
// add, update, and remove subscription types all carry this shape.
type ChannelPointsRewardEvent struct {
	ID                                string         `json:"id"`
	BroadcasterUserID                 string         `json:"broadcaster_user_id"`
	BroadcasterUserLogin              string         `json:"broadcaster_user_login"`
	BroadcasterUserName               string         `json:"broadcaster_user_name"`
	IsEnabled                         bool           `json:"is_enabled"`
	IsPaused                          bool           `json:"is_paused"`
	IsInStock                         bool           `json:"is_in_stock"`
	Title                             string         `json:"title"`
	Cost                              int            `json:"cost"`
	Prompt                            string         `json:"prompt"`
	IsUserInputRequired               bool           `json:"is_user_input_required"`
	ShouldRedemptionsSkipRequestQueue bool           `json:"should_redemptions_skip_request_queue"`
	MaxPerStream                      RewardLimit    `json:"max_per_stream"`
	MaxPerUserPerStream               RewardLimit    `json:"max_per_user_per_stream"`
	BackgroundColor                   string         `json:"background_color"`
	Image                             *RewardImage   `json:"image"`
	DefaultImage                      *RewardImage   `json:"default_image"`
	GlobalCooldown                    RewardCooldown `json:"global_cooldown"`
	CooldownExpiresAt                 *time.Time     `json:"cooldown_expires_at"`
	RedemptionsRedeemedCurrentStream  *int           `json:"redemptions_redeemed_current_stream"`
}

// RedemptionReward is the summary of the reward attached to a redemption
// notification.
type RedemptionReward struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Cost   int    `json:"cost"`
	Prompt string `json:"prompt"`
}

// ChannelPointsRedemptionEvent describes a viewer's redemption of a custom
// channel points reward. The add and update subscription types share this
// shape; on update, Status reflects whether the redemption was fulfilled or
// canceled.
type ChannelPointsRedemptionEvent struct {
	ID                   string           `json:"id"`
	BroadcasterUserID    string           `json:"broadcaster_user_id"`
	BroadcasterUserLogin string           `json:"broadcaster_user_login"`
	BroadcasterUserName  string           `json:"broadcaster_user_name"`
	UserID               string           `json:"user_id"`
	UserLogin            string           `json:"user_login"`
	UserName             string           `json:"user_name"`
	UserInput            string           `json:"user_input"`
	Status               string           `json:"status"`
	Reward               RedemptionReward `json:"reward"`
	RedeemedAt           time.Time        `json:"redeemed_at"`
}

// PollChoice is one selectable choice in a poll.
type PollChoice struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	BitsVotes          int    `json:"bits_votes"`
	ChannelPointsVotes int    `json:"channel_points_votes"`
	Votes              int    `json:"votes"`
}

// PollVoting describes whether extra votes can be cast with bits or channel
// points, and at what price.
type PollVoting struct {
	IsEnabled     bool `json:"is_enabled"`
	AmountPerVote int  `json:"amount_per_vote"`
}

// ChannelPollBeginEvent is sent when a poll begins on the specified channel.
type ChannelPollBeginEvent struct {
	ID                   string       `json:"id"`
	BroadcasterUserID    string       `json:"broadcaster_user_id"`
	BroadcasterUserLogin string       `json:"broadcaster_user_login"`
	BroadcasterUserName  string       `json:"broadcaster_user_name"`
	Title                string       `json:"title"`
	Choices              []PollChoice `json:"choices"`
	BitsVoting           PollVoting   `json:"bits_voting"`
	ChannelPointsVoting  PollVoting   `json:"channel_points_voting"`
	StartedAt            time.Time    `json:"started_at"`
	EndsAt               time.Time    `json:"ends_at"`
}

// ChannelPollProgressEvent is sent when users respond to a poll on the
// specified channel.
type ChannelPollProgressEvent struct {
	ID                   string       `json:"id"`
	BroadcasterUserID    string       `json:"broadcaster_user_id"`
	BroadcasterUserLogin string       `json:"broadcaster_user_login"`
	BroadcasterUserName  string       `json:"broadcaster_user_name"`
	Title                string       `json:"title"`
	Choices              []PollChoice `json:"choices"`
	BitsVoting           PollVoting   `json:"bits_voting"`
	ChannelPointsVoting  PollVoting   `json:"channel_points_voting"`
	StartedAt            time.Time    `json:"started_at"`
	EndsAt               time.Time    `json:"ends_at"`
}

// ChannelPollEndEvent is sent when a poll ends on the specified channel.
type ChannelPollEndEvent struct {
	ID                   string       `json:"id"`
	BroadcasterUserID    string       `json:"broadcaster_user_id"`
	BroadcasterUserLogin string       `json:"broadcaster_user_login"`
	BroadcasterUserName  string       `json:"broadcaster_user_name"`
	Title                string       `json:"title"`
	Choices              []PollChoice `json:"choices"`
	BitsVoting           PollVoting   `json:"bits_voting"`
	ChannelPointsVoting  PollVoting   `json:"channel_points_voting"`
	Status               string       `json:"status"`
	StartedAt            time.Time    `json:"started_at"`
	EndedAt              time.Time    `json:"ended_at"`
}

// Predictor is one of the top participants in a prediction outcome.
// ChannelPointsWon is nil until the prediction has been resolved.
type Predictor struct {
	UserID            string `json:"user_id"`
	UserLogin         string `json:"user_login"`
	UserName          string `json:"user_name"`
	ChannelPointsWon  *int   `json:"channel_points_won"`
	ChannelPointsUsed int    `json:"channel_points_used"`
}

// PredictionOutcome is one side of a prediction.
type PredictionOutcome struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Color         string      `json:"color"`
	Users         int         `json:"users,omitempty"`
	ChannelPoints int         `json:"channel_points,omitempty"`
	TopPredictors []Predictor `json:"top_predictors,omitempty"`
}

// ChannelPredictionBeginEvent is sent when a prediction begins on the
// specified channel.
type ChannelPredictionBeginEvent struct {
	ID                   string              `json:"id"`
	BroadcasterUserID    string              `json:"broadcaster_user_id"`
	BroadcasterUserLogin string              `json:"broadcaster_user_login"`
	BroadcasterUserName  string              `json:"broadcaster_user_name"`
	Title                string              `json:"title"`
	Outcomes             []PredictionOutcome `json:"outcomes"`
	StartedAt            time.Time           `json:"started_at"`
	LocksAt              time.Time           `json:"locks_at"`
}

// ChannelPredictionProgressEvent is sent when users participate in a
// prediction on the specified channel.
type ChannelPredictionProgressEvent struct {
	ID                   string              `json:"id"`
	BroadcasterUserID    string              `json:"broadcaster_user_id"`
	BroadcasterUserLogin string              `json:"broadcaster_user_login"`
	BroadcasterUserName  string              `json:"broadcaster_user_name"`
	Title                string              `json:"title"`
	Outcomes             []PredictionOutcome `json:"outcomes"`
	StartedAt            time.Time           `json:"started_at"`
	LocksAt              time.Time           `json:"locks_at"`
}

// ChannelPredictionLockEvent is sent when a prediction is locked on the
// specified channel.
type ChannelPredictionLockEvent struct {
	ID                   string              `json:"id"`
	BroadcasterUserID    string              `json:"broadcaster_user_id"`
	BroadcasterUserLogin string              `json:"broadcaster_user_login"`
	BroadcasterUserName  string              `json:"broadcaster_user_name"`
	Title                string              `json:"title"`
	Outcomes             []PredictionOutcome `json:"outcomes"`
	StartedAt            time.Time           `json:"started_at"`
	LockedAt             time.Time           `json:"locked_at"`
}

// ChannelPredictionEndEvent is sent when a prediction ends on the specified
// channel.
type ChannelPredictionEndEvent struct {
	ID                   string              `json:"id"`
	BroadcasterUserID    string              `json:"broadcaster_user_id"`
	BroadcasterUserLogin string              `json:"broadcaster_user_login"`
	BroadcasterUserName  string              `json:"broadcaster_user_name"`
	Title                string              `json:"title"`
	WinningOutcomeID     string              `json:"winning_outcome_id"`
	Outcomes             []PredictionOutcome `json:"outcomes"`
	Status               string              `json:"status"`
	StartedAt            time.Time           `json:"started_at"`
	EndedAt              time.Time           `json:"ended_at"`
}

// ChannelGoalBeginEvent is sent when a creator goal begins on the specified
// channel.
type ChannelGoalBeginEvent struct {
	ID                   string    `json:"id"`
	BroadcasterUserID    string    `json:"broadcaster_user_id"`
	BroadcasterUserLogin string    `json:"broadcaster_user_login"`
	BroadcasterUserName  string    `json:"broadcaster_user_name"`
	Type                 string    `json:"type"`
	Description          string    `json:"description"`
	CurrentAmount        int       `json:"current_amount"`
	TargetAmount         int       `json:"target_amount"`
	StartedAt            time.Time `json:"started_at"`
}

// ChannelGoalProgressEvent is sent when a creator goal makes progress on the
// specified channel.
type ChannelGoalProgressEvent struct {
	ID                   string    `json:"id"`
	BroadcasterUserID    string    `json:"broadcaster_user_id"`
	BroadcasterUserLogin string    `json:"broadcaster_user_login"`
	BroadcasterUserName  string    `json:"broadcaster_user_name"`
	Type                 string    `json:"type"`
	Description          string    `json:"description"`
	CurrentAmount        int       `json:"current_amount"`
	TargetAmount         int       `json:"target_amount"`
	StartedAt            time.Time `json:"started_at"`
}

// ChannelGoalEndEvent is sent when a creator goal ends on the specified
// channel.
type ChannelGoalEndEvent struct {
	ID                   string    `json:"id"`
	BroadcasterUserID    string    `json:"broadcaster_user_id"`
	BroadcasterUserLogin string    `json:"broadcaster_user_login"`
	BroadcasterUserName  string    `json:"broadcaster_user_name"`
	Type                 string    `json:"type"`
	Description          string    `json:"description"`
	IsAchieved           bool      `json:"is_achieved"`
	CurrentAmount        int       `json:"current_amount"`
	TargetAmount         int       `json:"target_amount"`
	StartedAt            time.Time `json:"started_at"`
	EndedAt              time.Time `json:"ended_at"`
}

// HypeTrainContribution is one user's contribution to a hype train, either
// in bits or in subscriptions.
type HypeTrainContribution struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
	Type      string `json:"type"`
	Total     int    `json:"total"`
}

// ChannelHypeTrainBeginEvent is sent when a hype train begins on the
// specified channel.
type ChannelHypeTrainBeginEvent struct {
	ID                   string                  `json:"id"`
	BroadcasterUserID    string                  `json:"broadcaster_user_id"`
	BroadcasterUserLogin string                  `json:"broadcaster_user_login"`
	BroadcasterUserName  string                  `json:"broadcaster_user_name"`
	Level                int                     `json:"level"`
	Total                int                     `json:"total"`
	Progress             int                     `json:"progress"`
	Goal                 int                     `json:"goal"`
	TopContributions     []HypeTrainContribution `json:"top_contributions"`
	LastContribution     HypeTrainContribution   `json:"last_contribution"`
	StartedAt            time.Time               `json:"started_at"`
	ExpiresAt            time.Time               `json:"expires_at"`
}

// ChannelHypeTrainProgressEvent is sent when a hype train makes progress on
// the specified channel.
type ChannelHypeTrainProgressEvent struct {
	ID                   string                  `json:"id"`
	BroadcasterUserID    string                  `json:"broadcaster_user_id"`
	BroadcasterUserLogin string                  `json:"broadcaster_user_login"`
	BroadcasterUserName  string                  `json:"broadcaster_user_name"`
	Level                int                     `json:"level"`
	Total                int                     `json:"total"`
	Progress             int                     `json:"progress"`
	Goal                 int                     `json:"goal"`
	TopContributions     []HypeTrainContribution `json:"top_contributions"`
	LastContribution     HypeTrainContribution   `json:"last_contribution"`
	StartedAt            time.Time               `json:"started_at"`
	ExpiresAt            time.Time               `json:"expires_at"`
}

// ChannelHypeTrainEndEvent is sent when a hype train ends on the specified
// channel.
type ChannelHypeTrainEndEvent struct {
	ID                   string                  `json:"id"`
	BroadcasterUserID    string                  `json:"broadcaster_user_id"`
	BroadcasterUserLogin string                  `json:"broadcaster_user_login"`
	BroadcasterUserName  string                  `json:"broadcaster_user_name"`
	Level                int                     `json:"level"`
	Total                int                     `json:"total"`
	TopContributions     []HypeTrainContribution `json:"top_contributions"`
	StartedAt            time.Time               `json:"started_at"`
	EndedAt              time.Time               `json:"ended_at"`
	CooldownEndsAt       time.Time               `json:"cooldown_ends_at"`
}

func (ChannelUpdateEvent) eventPayload()              {}
func (ChannelUpdateV2Event) eventPayload()            {}
func (ChannelFollowEvent) eventPayload()              {}
func (ChannelSubscribeEvent) eventPayload()           {}
func (ChannelSubscriptionEndEvent) eventPayload()     {}
func (ChannelSubscriptionGiftEvent) eventPayload()    {}
func (ChannelSubscriptionMessageEvent) eventPayload() {}
func (ChannelCheerEvent) eventPayload()               {}
func (ChannelRaidEvent) eventPayload()                {}
func (ChannelBanEvent) eventPayload()                 {}
func (ChannelUnbanEvent) eventPayload()               {}
func (ChannelPointsRewardEvent) eventPayload()        {}
func (ChannelPointsRedemptionEvent) eventPayload()    {}
func (ChannelPollBeginEvent) eventPayload()           {}
func (ChannelPollProgressEvent) eventPayload()        {}
func (ChannelPollEndEvent) eventPayload()             {}
func (ChannelPredictionBeginEvent) eventPayload()     {}
func (ChannelPredictionProgressEvent) eventPayload()  {}
func (ChannelPredictionLockEvent) eventPayload()      {}
func (ChannelPredictionEndEvent) eventPayload()       {}
func (ChannelGoalBeginEvent) eventPayload()           {}
func (ChannelGoalProgressEvent) eventPayload()        {}
func (ChannelGoalEndEvent) eventPayload()             {}
func (ChannelHypeTrainBeginEvent) eventPayload()      {}
func (ChannelHypeTrainProgressEvent) eventPayload()   {}
func (ChannelHypeTrainEndEvent) eventPayload()        {}
