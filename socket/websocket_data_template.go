package socket

import (
	"solamate_server/schemas"
)

type op_type string

type ws_message struct {
	Op   op_type
	Data interface{}
}

func construct_ws_message(op op_type, data interface{}) ws_message {
	return ws_message{
		Op:   op,
		Data: data,
	}
}

//////////////////////////////////////// WEBSCOKET SERVER OPS ////////////////////////////////////////

const (
	OpConnected    op_type = "connected"
	OpPong         op_type = "pong"
	OpSubscribed   op_type = "subscribed"
	OpFriends      op_type = "friends"
	OpMessages     op_type = "messages"
	OpNotification op_type = "notification"
	OpError        op_type = "error"
)

type connected_data struct {
	WSID   string
	Wallet string
}

type subscribed_data struct {
	Topic string
}

type error_data struct {
	Message string
}

type friends_data struct {
	Topic string
	schemas.FriendsResponse
}

type messages_data struct {
	Topic string
	schemas.ChatMessagesResponse
}

//////////////////////////////////////// WEBSCOKET CLIENT OPS ////////////////////////////////////////

const (
	OpPing             op_type = "ping"
	OpActivity         op_type = "activity"
	OpSubscribeFriends op_type = "subscribe_friends"
	OpSubscribeChat    op_type = "subscribe_chat"
	OpUnsubscribe      op_type = "unsubscribe"
)

// subscribe_chat_data names the other participant; ChatRoom is optional and
// must match the derived room when given
type subscribe_chat_data struct {
	ChatRoom string
	Peer     string
}

type unsubscribe_data struct {
	Topic string
}
