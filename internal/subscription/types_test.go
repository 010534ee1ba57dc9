package subscription

import (
	"testing"

	"github.com/nicklaw5/helix/v2"
	"github.com/stretchr/testify/assert"

	"github.com/golden-vcr/eventsub"
)

func Test_formatCondition(t *testing.T) {
	tests := []struct {
		name string
		cond *eventsub.Condition
		want map[string]string
	}{
		{
			"empty struct yields empty map",
			&eventsub.Condition{},
			map[string]string{},
		},
		{
			"broadcast_user_id is conveyed",
			&eventsub.Condition{
				BroadcasterUserID: "1337",
			},
			map[string]string{
				"broadcaster_user_id": "1337",
			},
		},
		{
			"multiple fields are conveyed",
			&eventsub.Condition{
				ModeratorUserID:       "1337",
				FromBroadcasterUserID: "1337",
				ClientID:              "foobar",
			},
			map[string]string{
				"moderator_user_id":        "1337",
				"from_broadcaster_user_id": "1337",
				"client_id":                "foobar",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatCondition(tt.cond)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_conditionToHelix(t *testing.T) {
	tests := []struct {
		name string
		cond *eventsub.Condition
		want helix.EventSubCondition
	}{
		{
			"empty struct yields empty struct",
			&eventsub.Condition{},
			helix.EventSubCondition{},
		},
		{
			"broadcast_user_id is conveyed",
			&eventsub.Condition{
				BroadcasterUserID: "1337",
			},
			helix.EventSubCondition{
				BroadcasterUserID: "1337",
			},
		},
		{
			"multiple fields are conveyed",
			&eventsub.Condition{
				ModeratorUserID:       "1337",
				FromBroadcasterUserID: "1337",
				ClientID:              "foobar",
			},
			helix.EventSubCondition{
				ModeratorUserID:       "1337",
				FromBroadcasterUserID: "1337",
				ClientID:              "foobar",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conditionToHelix(tt.cond)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_conditionFromHelix(t *testing.T) {
	got := conditionFromHelix(&helix.EventSubCondition{
		BroadcasterUserID: "1337",
		ModeratorUserID:   "1338",
	})
	assert.Equal(t, eventsub.Condition{
		BroadcasterUserID: "1337",
		ModeratorUserID:   "1338",
	}, got)
}
