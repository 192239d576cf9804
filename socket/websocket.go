package socket

import (
	"time"

	"solamate_server/chain"
	"solamate_server/errors"
	"solamate_server/messages"

	"github.com/gagliardetto/solana-go"
	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func write_message(c *client, code op_type, data interface{}) {

	b, err := jsoniter.Marshal(construct_ws_message(code, data))
	if err != nil {
		zap.L().Error("jsoniter_marshal", zap.String("op", string(code)), zap.Error(err))
		return
	}

	if !c.enqueue(b) {
		zap.L().Debug("dropped frame", zap.String("wsid", c.WSID), zap.String("op", string(code)))
	}
}

func write_raw(c *client, code op_type, data jsoniter.RawMessage) {
	write_message(c, code, data)
}

func write_pump(ws *websocket.Conn, c *client) {
	for b := range c.send {
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			errors.HandleWebsocketError(ws, "websocket_write", err.Error())
			ws.Close()
			for range c.send {
			}
			return
		}
	}
}

// Stream serves one authenticated websocket connection. The wallet is set
// in locals by the stream authentication middleware.
func (h *Hub) Stream(ws *websocket.Conn) {

	wallet, _ := ws.Locals("wallet").(string)

	c, err := h.register(wallet)
	if err != nil {
		errors.HandleWebsocketError(ws, "create_connection", err.Error())
		ws.Close()
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		write_pump(ws, c)
	}()

	write_message(c, OpConnected, connected_data{
		WSID:   c.WSID,
		Wallet: wallet,
	})

	var (
		mt int
		b  []byte
	)
	for {
		if err = ws.SetReadDeadline(time.Now().Add(MAX_WS_CONNECTION_TIME)); err != nil {
			errors.HandleWebsocketError(ws, "websocket_read_deadline", err.Error())
			break
		}

		if mt, b, err = ws.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				errors.HandleWebsocketError(ws, "websocket_read", err.Error())
			}
			break
		}
		if mt == websocket.BinaryMessage {
			errors.HandleWebsocketError(ws, "websocket_read", "binary message")
			break
		}

		c.idle.Touch()
		h.handle_op(c, b)
	}

	h.unregister(c)
	<-done
	ws.Close()
}

func (h *Hub) handle_op(c *client, b []byte) {

	switch op_type(jsoniter.Get(b, "Op").ToString()) {
	case OpPing:
		write_message(c, OpPong, nil)
	case OpActivity:
	case OpSubscribeFriends:
		h.subscribe(c, messages.FriendsTopic(c.wallet))
	case OpSubscribeChat:
		data := new(subscribe_chat_data)
		jsoniter.Get(b, "Data").ToVal(data)
		room, problem := h.chat_room(c, data)
		if problem != "" {
			write_message(c, OpError, error_data{Message: problem})
			return
		}
		h.subscribe(c, messages.ChatTopic(room))
	case OpUnsubscribe:
		data := new(unsubscribe_data)
		jsoniter.Get(b, "Data").ToVal(data)
		if data.Topic == messages.NotificationsTopic(c.wallet) {
			return
		}
		h.leave(c, data.Topic)
	default:
		write_message(c, OpError, error_data{Message: "Unrecognized op"})
	}
}

// chat_room derives the room shared by the connection's wallet and the
// peer, so a connection can only follow rooms it takes part in
func (h *Hub) chat_room(c *client, data *subscribe_chat_data) (string, string) {
	wallet, err := solana.PublicKeyFromBase58(c.wallet)
	if err != nil {
		return "", "Invalid wallet"
	}
	peer, err := solana.PublicKeyFromBase58(data.Peer)
	if err != nil {
		return "", "Invalid peer"
	}
	room, err := chain.NewDeriver(h.cfg.ProgramID).ChatRoomPDA(wallet, peer)
	if err != nil {
		return "", "Invalid chat room"
	}
	if data.ChatRoom != "" && data.ChatRoom != room.String() {
		return "", "Not a participant of this chat room"
	}
	return room.String(), ""
}

// subscribe joins topic and pushes its initial full data set
func (h *Hub) subscribe(c *client, topic string) {
	h.join(c, topic)
	write_message(c, OpSubscribed, subscribed_data{Topic: topic})
	go h.push(c, topic)
}
