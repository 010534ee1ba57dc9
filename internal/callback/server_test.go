package callback

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"

	"github.com/golden-vcr/eventsub"
)

func Test_Server_handlePostCallback(t *testing.T) {
	tests := []struct {
		name            string
		headers         map[string]string
		requestBody     string
		signatureIsOK   bool
		wantStatus      int
		wantBody        string
		wantHandledType eventsub.EventType
	}{
		{
			"if signature verification fails, returns 400",
			nil,
			"{}",
			false,
			400,
			"Signature verification failed",
			"",
		},
		{
			"if routing headers are missing, returns 400",
			nil,
			"{}",
			true,
			400,
			"malformed eventsub message: one or more required Twitch-Eventsub-* routing headers are missing",
			"",
		},
		{
			"unrecognized subscription type returns 400",
			map[string]string{
				eventsub.HeaderSubscriptionType:    "channel.fake",
				eventsub.HeaderSubscriptionVersion: "1",
				eventsub.HeaderMessageType:         "notification",
			},
			"{}",
			true,
			400,
			`unknown eventsub subscription type "channel.fake"`,
			"",
		},
		{
			"unsupported subscription version returns 400",
			map[string]string{
				eventsub.HeaderSubscriptionType:    "stream.online",
				eventsub.HeaderSubscriptionVersion: "99",
				eventsub.HeaderMessageType:         "notification",
			},
			"{}",
			true,
			400,
			`eventsub subscription type "stream.online" has no supported schema for version "99"`,
			"",
		},
		{
			"if challenge is set, echoes challenge with 200",
			map[string]string{
				eventsub.HeaderSubscriptionType:    "stream.online",
				eventsub.HeaderSubscriptionVersion: "1",
				eventsub.HeaderMessageType:         "webhook_callback_verification",
			},
			`{"subscription":{"id":"some-subscription","type":"stream.online","version":"1"},"challenge":"foobar12345"}`,
			true,
			200,
			"foobar12345",
			"",
		},
		{
			"revocation is acknowledged with 200 and no event is handled",
			map[string]string{
				eventsub.HeaderSubscriptionType:    "stream.online",
				eventsub.HeaderSubscriptionVersion: "1",
				eventsub.HeaderMessageType:         "revocation",
			},
			`{"subscription":{"id":"some-subscription","type":"stream.online","version":"1","status":"authorization_revoked"}}`,
			true,
			200,
			"",
			"",
		},
		{
			"valid event is recorded via handle func",
			map[string]string{
				eventsub.HeaderSubscriptionType:    "stream.online",
				eventsub.HeaderSubscriptionVersion: "1",
				eventsub.HeaderMessageType:         "notification",
			},
			`{"subscription":{"id":"some-subscription","type":"stream.online","version":"1"},"event":{"id":"1","broadcaster_user_id":"1337","broadcaster_user_login":"bigjoebob","broadcaster_user_name":"BigJoeBob","type":"live","started_at":"2023-11-01T12:00:00Z"}}`,
			true,
			200,
			"",
			eventsub.EventTypeStreamOnline,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handled *eventsub.Event
			s := &Server{
				verifyNotification: func(header http.Header, body []byte) bool {
					return tt.signatureIsOK
				},
				handleEvent: func(ctx context.Context, logger *slog.Logger, event *eventsub.Event) error {
					logger.Debug("Handled event", "eventType", event.Type)
					handled = event
					return nil
				},
			}
			req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(tt.requestBody))
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			res := httptest.NewRecorder()
			s.handlePostCallback(res, req)

			b, err := io.ReadAll(res.Body)
			assert.NoError(t, err)
			body := strings.TrimSuffix(string(b), "\n")
			assert.Equal(t, tt.wantStatus, res.Code)
			assert.Equal(t, tt.wantBody, body)

			if tt.wantHandledType == "" {
				assert.Nil(t, handled)
			} else {
				assert.NotNil(t, handled)
				assert.Equal(t, tt.wantHandledType, handled.Type)
				assert.True(t, handled.IsNotification())
			}
		})
	}
}

func Test_Server_handlePostCallback_payloadIsTyped(t *testing.T) {
	var handled *eventsub.Event
	s := &Server{
		verifyNotification: func(header http.Header, body []byte) bool { return true },
		handleEvent: func(ctx context.Context, logger *slog.Logger, event *eventsub.Event) error {
			handled = event
			return nil
		},
	}
	body := `{"subscription":{"id":"s","type":"channel.cheer","version":"1"},"event":{"is_anonymous":false,"user_id":"1337","user_login":"bigjoebob","user_name":"BigJoeBob","broadcaster_user_id":"99","broadcaster_user_login":"channel","broadcaster_user_name":"Channel","message":"woo","bits":200}}`
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	req.Header.Set(eventsub.HeaderSubscriptionType, "channel.cheer")
	req.Header.Set(eventsub.HeaderSubscriptionVersion, "1")
	req.Header.Set(eventsub.HeaderMessageType, "notification")
	res := httptest.NewRecorder()
	s.handlePostCallback(res, req)

	assert.Equal(t, 200, res.Code)
	assert.NotNil(t, handled)
	cheer, ok := handled.Payload.(*eventsub.ChannelCheerEvent)
	assert.True(t, ok)
	assert.Equal(t, 200, cheer.Bits)
	assert.Equal(t, "BigJoeBob", cheer.UserName)
}
