package messages

import (
	"context"
	"strconv"
)

// Reload announces that the accounts behind topic changed. Events caused by
// the same account write share a signature so receivers can drop duplicates
// published by other instances.
func (b *Bus) Reload(ctx context.Context, topic string, account string, slot uint64) error {
	signature := ""
	if account != "" {
		signature = account + ":" + strconv.FormatUint(slot, 10)
	}
	return b.send_payload(ctx, OpReload, topic, signature, reload_data{
		Account: account,
		Slot:    slot,
	})
}

// Notify pushes a notification to the wallet's connections
func (b *Bus) Notify(ctx context.Context, wallet string, notification interface{}) error {
	return b.send_payload(ctx, OpNotification, NotificationsTopic(wallet), "", notification)
}
