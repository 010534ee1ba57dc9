package callback

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/golden-vcr/server-common/entry"
	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"

	"github.com/golden-vcr/eventsub"
)

type VerifyNotificationFunc func(header http.Header, body []byte) bool
type HandleEventFunc func(ctx context.Context, logger *slog.Logger, event *eventsub.Event) error

// Producer sends serialized notification data to a message queue for
// consumption by downstream services.
type Producer interface {
	Send(ctx context.Context, data []byte) error
}

// NotificationMessage is the JSON shape published to the queue for each
// notification we accept from Twitch.
type NotificationMessage struct {
	Type    eventsub.EventType    `json:"type"`
	Version string                `json:"version"`
	Event   eventsub.EventPayload `json:"event"`
}

type Server struct {
	verifyNotification VerifyNotificationFunc
	handleEvent        HandleEventFunc
	parseOpts          []eventsub.ParseOption
}

func NewServer(twitchWebhookSecret string, producer Producer, parseOpts ...eventsub.ParseOption) *Server {
	return &Server{
		verifyNotification: func(header http.Header, body []byte) bool {
			return eventsub.VerifyNotification(twitchWebhookSecret, header, body)
		},
		handleEvent: func(ctx context.Context, logger *slog.Logger, event *eventsub.Event) error {
			data, err := json.Marshal(NotificationMessage{
				Type:    event.Type,
				Version: event.Version,
				Event:   event.Payload,
			})
			if err != nil {
				return err
			}
			logger.Debug("Producing notification message", "data", string(data))
			return producer.Send(ctx, data)
		},
		parseOpts: parseOpts,
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.Path("/callback").Methods("POST").HandlerFunc(s.handlePostCallback)
}

func (s *Server) handlePostCallback(res http.ResponseWriter, req *http.Request) {
	logger := entry.Log(req)

	// Pre-emptively read the request body so we can verify its signature
	body, err := io.ReadAll(req.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	defer req.Body.Close()

	// Verify that this event comes from Twitch: abort if phony
	if !s.verifyNotification(req.Header, body) {
		logger.Error("Failed to verify signature")
		http.Error(res, "Signature verification failed", http.StatusBadRequest)
		return
	}

	// Route the message through the catalog and decode the payload into its
	// typed form, trusting the Twitch-Eventsub-* headers for routing
	event, err := eventsub.ParseHTTP(req.Header, body, s.parseOpts...)
	if err != nil {
		// All parse failures are rejected the same way, but unknown and
		// unimplemented events get their own log lines since they indicate
		// the catalog may be out of date with the Twitch API
		var unknownErr *eventsub.UnknownEventTypeError
		var unimplementedErr *eventsub.UnimplementedEventError
		if errors.As(err, &unknownErr) {
			logger.Error("Received event with unrecognized subscription type", "subscriptionType", unknownErr.Type)
		} else if errors.As(err, &unimplementedErr) {
			logger.Error("Received event with unsupported subscription version",
				"subscriptionType", unimplementedErr.Type,
				"subscriptionVersion", unimplementedErr.Version,
			)
		} else {
			logger.Error("Failed to parse EventSub message", "error", err)
		}
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	// If this is a verification handshake, Twitch is sending us an initial
	// request to confirm registration of this event callback: responding with
	// the same challenge value will enable the event subscription. This
	// occurs after parsing so that we won't allow subscriptions to be created
	// until we fully support the relevant event type.
	if v, ok := event.GetVerificationRequest(); ok {
		logger.Info("Responding to challenge", "challenge", v.Challenge)
		res.Write([]byte(v.Challenge))
		return
	}

	// If Twitch has revoked our subscription, there's nothing to do but
	// acknowledge: the subscription management endpoints can be used to
	// re-register it
	if event.IsRevocation() {
		logger.Info("EventSub subscription was revoked",
			"subscriptionId", event.Subscription.ID,
			"subscriptionType", event.Type,
			"subscriptionStatus", event.Subscription.Status,
		)
		res.WriteHeader(http.StatusOK)
		return
	}

	// Attempt to handle the event, using our HandleEventFunc: this should be
	// relatively lightweight, since we're doing it synchronously in the
	// callback handler and waiting to respond to Twitch until finished
	logger = logger.With(
		"subscriptionId", event.Subscription.ID,
		"subscriptionType", event.Type,
		"subscriptionVersion", event.Version,
	)
	if err := s.handleEvent(req.Context(), logger, event); err != nil {
		logger.Error("Failed to handle event", "error", err)
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	// If successful, write a 200 response and we're done
	logger.Info("Handled event")
	res.WriteHeader(http.StatusOK)
}
