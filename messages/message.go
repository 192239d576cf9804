package messages

import (
	"context"
	"strings"
	"time"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Bus publishes and receives topic events over redis pub/sub so every server
// instance can reach its own websocket connections
type Bus struct {
	client *redis.Client
	now    func() time.Time
}

func NewBus(client *redis.Client) *Bus {
	return &Bus{client: client, now: time.Now}
}

func (b *Bus) send_payload(ctx context.Context, op OpType, topic string, signature string, i interface{}) error {
	if signature == "" {
		var err error
		signature, err = nanoid.GenerateString(VALID_NANOID_CHAR, 10)
		if err != nil {
			return err
		}
	}

	var data jsoniter.RawMessage
	if i != nil {
		raw, err := jsoniter.Marshal(i)
		if err != nil {
			return err
		}
		data = raw
	}

	json_string, err := jsoniter.Marshal(construct_event(op, topic, b.now().UnixMilli(), signature, data))
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, ChannelPrefix+topic, json_string).Err()
}

// Subscribe delivers every event of the service to handle until ctx ends
func (b *Bus) Subscribe(ctx context.Context, handle func(Event)) error {
	ps := b.client.PSubscribe(ctx, ChannelPrefix+"*")
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return err
	}

	go func() {
		defer ps.Close()
		ch := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := jsoniter.UnmarshalFromString(msg.Payload, &ev); err != nil {
					zap.L().Warn("bad event payload", zap.String("channel", msg.Channel), zap.Error(err))
					continue
				}
				if ev.Topic == "" {
					ev.Topic = strings.TrimPrefix(msg.Channel, ChannelPrefix)
				}
				handle(ev)
			}
		}
	}()
	return nil
}
