package eventsub

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Event_SubscriptionRecord(t *testing.T) {
	t.Run("resolves the raw condition and echoes dispatch routing", func(t *testing.T) {
		createdAt := time.Date(2023, 10, 3, 17, 31, 0, 0, time.UTC)
		event := &Event{
			Type:        EventTypeChannelRaid,
			Version:     "1",
			MessageType: MessageTypeNotification,
			Subscription: Subscription{
				ID:     "s-1",
				Status: SubscriptionStatusEnabled,
				// The subscription block's own type string may drift from the
				// routing metadata; the record reflects what the message was
				// actually dispatched as
				Type:      "channel.raid",
				Version:   "1",
				Cost:      1,
				Condition: json.RawMessage(`{"to_broadcaster_user_id":"1337"}`),
				Transport: Transport{Method: "webhook", Callback: "https://my-cool-service.com/callback"},
				CreatedAt: createdAt,
			},
		}
		record, err := event.SubscriptionRecord()
		assert.NoError(t, err)
		assert.Equal(t, &SubscriptionRecord{
			ID:        "s-1",
			Status:    SubscriptionStatusEnabled,
			Cost:      1,
			Condition: Condition{ToBroadcasterUserID: "1337"},
			Transport: Transport{Method: "webhook", Callback: "https://my-cool-service.com/callback"},
			CreatedAt: createdAt,
			Type:      EventTypeChannelRaid,
			Version:   "1",
		}, record)
	})

	t.Run("empty condition yields a zero-valued Condition", func(t *testing.T) {
		event := &Event{
			Type:        EventTypeStreamOnline,
			Version:     "1",
			MessageType: MessageTypeRevocation,
			Subscription: Subscription{
				ID:     "s-2",
				Status: SubscriptionStatusAuthorizationRevoke,
			},
		}
		record, err := event.SubscriptionRecord()
		assert.NoError(t, err)
		assert.Equal(t, Condition{}, record.Condition)
	})

	t.Run("unresolvable condition yields ConditionError", func(t *testing.T) {
		event := &Event{
			Type:    EventTypeChannelCheer,
			Version: "1",
			Subscription: Subscription{
				Condition: json.RawMessage(`{"broadcaster_user_id":42}`),
			},
		}
		_, err := event.SubscriptionRecord()
		var conditionErr *ConditionError
		assert.ErrorAs(t, err, &conditionErr)
	})
}

func Test_Event_classification(t *testing.T) {
	tests := []struct {
		messageType         MessageType
		wantNotification    bool
		wantVerificationReq bool
		wantRevocation      bool
	}{
		{MessageTypeNotification, true, false, false},
		{MessageTypeVerification, false, true, false},
		{MessageTypeRevocation, false, false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.messageType), func(t *testing.T) {
			event := &Event{MessageType: tt.messageType}
			assert.Equal(t, tt.wantNotification, event.IsNotification())
			assert.Equal(t, tt.wantVerificationReq, event.IsVerificationRequest())
			assert.Equal(t, tt.wantRevocation, event.IsRevocation())
		})
	}
}
