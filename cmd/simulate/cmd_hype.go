package main

import (
	"encoding/json"
	"flag"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/golden-vcr/eventsub"
)

func initHypeCommand(cmd *flag.FlagSet) {
}

func runHypeCommand(channelName, channelUserId string) (eventsub.EventType, json.RawMessage) {
	ev, err := json.Marshal(eventsub.ChannelHypeTrainBeginEvent{
		ID:                   uuid.NewString(),
		BroadcasterUserID:    channelUserId,
		BroadcasterUserLogin: strings.ToLower(channelName),
		BroadcasterUserName:  channelName,
		Level:                1,
		Total:                137,
		Progress:             137,
		Goal:                 500,
		StartedAt:            time.Now(),
		ExpiresAt:            time.Now().Add(5 * time.Minute),
	})
	if err != nil {
		panic(err)
	}
	return eventsub.EventTypeChannelHypeTrainBegin, ev
}
