package messages

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

type OpType string

const (
	// OpReload asks subscribers of a topic to re-fetch the whole data set
	OpReload OpType = "reload"
	// OpNotification carries a newly created notification
	OpNotification OpType = "notification"
)

const (
	TopicFriends       = "friends"
	TopicChat          = "chat"
	TopicNotifications = "notifications"
)

// ChannelPrefix namespaces every pub/sub channel of the service
const ChannelPrefix = "solamate:"

// Event is the payload published on a topic channel
type Event struct {
	Op        OpType
	Topic     string
	Timestamp int64
	Signature string
	Data      jsoniter.RawMessage `json:",omitempty"`
}

func construct_event(op OpType, topic string, timestamp int64, signature string, data jsoniter.RawMessage) Event {
	return Event{
		Op:        op,
		Topic:     topic,
		Timestamp: timestamp,
		Signature: signature,
		Data:      data,
	}
}

// FriendsTopic is the topic of a wallet's friendships
func FriendsTopic(wallet string) string {
	return TopicFriends + ":" + wallet
}

// ChatTopic is the topic of a chat room's messages
func ChatTopic(room string) string {
	return TopicChat + ":" + room
}

// NotificationsTopic is the topic of a wallet's notifications
func NotificationsTopic(wallet string) string {
	return TopicNotifications + ":" + wallet
}

// SplitTopic returns the kind and key of a topic
func SplitTopic(topic string) (kind string, key string, ok bool) {
	return strings.Cut(topic, ":")
}

//////////////////////////////////////// EVENT DATA ////////////////////////////////////////

type reload_data struct {
	Account string
	Slot    uint64
}
