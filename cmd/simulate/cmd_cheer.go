package main

import (
	"encoding/json"
	"flag"
	"strings"

	"github.com/golden-vcr/eventsub"
)

var cheerUsername string
var cheerUserId string
var cheerNumBits int
var cheerMessage string

func initCheerCommand(cmd *flag.FlagSet) {
	cmd.StringVar(&cheerUsername, "username", "BigJoeBob", "Twitch Display Name indicating who has cheered in the channel")
	cmd.StringVar(&cheerUserId, "user-id", "1337", "Twitch User ID of the user that cheered")
	cmd.IntVar(&cheerNumBits, "num-bits", 200, "Number of bits cheered")
	cmd.StringVar(&cheerMessage, "message", "", "Text of cheer message")
}

func runCheerCommand(channelName, channelUserId string) (eventsub.EventType, json.RawMessage) {
	ev, err := json.Marshal(eventsub.ChannelCheerEvent{
		UserID:               cheerUserId,
		UserLogin:            strings.ToLower(cheerUsername),
		UserName:             cheerUsername,
		BroadcasterUserID:    channelUserId,
		BroadcasterUserLogin: strings.ToLower(channelName),
		BroadcasterUserName:  channelName,
		Message:              cheerMessage,
		Bits:                 cheerNumBits,
	})
	if err != nil {
		panic(err)
	}
	return eventsub.EventTypeChannelCheer, ev
}
