package main

import (
	"encoding/json"
	"flag"
	"strings"

	"github.com/golden-vcr/eventsub"
)

func initOfflineCommand(cmd *flag.FlagSet) {
}

func runOfflineCommand(channelName, channelUserId string) (eventsub.EventType, json.RawMessage) {
	ev, err := json.Marshal(eventsub.StreamOfflineEvent{
		BroadcasterUserID:    channelUserId,
		BroadcasterUserLogin: strings.ToLower(channelName),
		BroadcasterUserName:  channelName,
	})
	if err != nil {
		panic(err)
	}
	return eventsub.EventTypeStreamOffline, ev
}
