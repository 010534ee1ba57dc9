package main

import (
	"encoding/json"
	"flag"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/golden-vcr/eventsub"
)

func initOnlineCommand(cmd *flag.FlagSet) {
}

func runOnlineCommand(channelName, channelUserId string) (eventsub.EventType, json.RawMessage) {
	ev, err := json.Marshal(eventsub.StreamOnlineEvent{
		ID:                   uuid.NewString(),
		BroadcasterUserID:    channelUserId,
		BroadcasterUserLogin: strings.ToLower(channelName),
		BroadcasterUserName:  channelName,
		Type:                 "live",
		StartedAt:            time.Now(),
	})
	if err != nil {
		panic(err)
	}
	return eventsub.EventTypeStreamOnline, ev
}
