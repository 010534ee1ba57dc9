package eventsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RequiredSubscriptionConditionParams_Format(t *testing.T) {
	params := &RequiredSubscriptionConditionParams{
		ChannelUserId: "1337",
	}
	got, err := params.Format(&Condition{
		UserID:   "{{.ChannelUserId}}",
		RewardID: "channel-{{.ChannelUserId}}-reward",
	})
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, &Condition{
		UserID:   "1337",
		RewardID: "channel-1337-reward",
	}, got)

	// The templated condition itself is left untouched
	templated := &Condition{BroadcasterUserID: "{{.ChannelUserId}}"}
	got, err = params.Format(templated)
	assert.NoError(t, err)
	assert.Equal(t, "1337", got.BroadcasterUserID)
	assert.Equal(t, "{{.ChannelUserId}}", templated.BroadcasterUserID)
}

func Test_RequiredSubscriptionConditionParams_Format_badTemplate(t *testing.T) {
	params := &RequiredSubscriptionConditionParams{
		ChannelUserId: "1337",
	}
	_, err := params.Format(&Condition{
		BroadcasterUserID: "{{.ChannelUserId",
	})
	assert.Error(t, err)
}

func Test_GetRequiredUserScopes(t *testing.T) {
	required := RequiredSubscriptions{
		{
			RequiredScopes: []string{
				"moderator:read:followers",
			},
		},
		{
			RequiredScopes: []string{
				"moderator:read:followers",
				"user:read:follows",
			},
		},
		{},
		{
			RequiredScopes: []string{
				"moderator:read:followers",
				"user:read:subscriptions",
			},
		},
	}
	got := required.GetRequiredUserScopes()
	assert.ElementsMatch(t, got, []string{
		"moderator:read:followers",
		"user:read:follows",
		"user:read:subscriptions",
	})
}
