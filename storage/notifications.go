package storage

import (
	"context"
	"sort"
	"time"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/gocql/gocql"
	jsoniter "github.com/json-iterator/go"
)

// VALID_NANOID_CHAR is the alphabet of generated notification ids
const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Notification is an in-app notice addressed to one wallet
type Notification struct {
	ID            string
	WalletAddress string
	Type          string
	Title         string
	Message       string
	Data          map[string]interface{}
	Read          bool
	CreatedAt     time.Time
}

// NotificationRepo stores notifications partitioned by wallet
type NotificationRepo struct {
	session *gocql.Session
	now     func() time.Time
}

func NewNotificationRepo(session *gocql.Session) *NotificationRepo {
	return &NotificationRepo{session: session, now: time.Now}
}

// List returns the notifications of wallet, newest first
func (r *NotificationRepo) List(ctx context.Context, wallet string, unreadOnly bool) ([]Notification, error) {
	iter := r.session.Query(`
		SELECT notification_id, type, title, message, data, read, created FROM notifications WHERE wallet_address = ?;`,
		wallet,
	).WithContext(ctx).Iter()

	var (
		n    Notification
		data string
		out  = make([]Notification, 0)
	)
	for iter.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &data, &n.Read, &n.CreatedAt) {
		n.WalletAddress = wallet
		n.Data = nil
		if data != "" {
			_ = jsoniter.UnmarshalFromString(data, &n.Data)
		}
		out = append(out, n)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return FilterNotifications(out, unreadOnly), nil
}

// FilterNotifications drops read entries when unreadOnly is set and sorts the
// rest newest first
func FilterNotifications(ns []Notification, unreadOnly bool) []Notification {
	out := ns[:0]
	for _, n := range ns {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Create assigns an id and timestamp to n and stores it
func (r *NotificationRepo) Create(ctx context.Context, n *Notification) error {
	id, err := nanoid.GenerateString(VALID_NANOID_CHAR, 20)
	if err != nil {
		return err
	}
	data, err := jsoniter.MarshalToString(n.Data)
	if err != nil {
		return err
	}

	n.ID = id
	n.Read = false
	n.CreatedAt = r.now().UTC()

	batch := r.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`
		INSERT INTO notifications (wallet_address, notification_id, type, title, message, data, read, created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		n.WalletAddress, n.ID, n.Type, n.Title, n.Message, data, n.Read, n.CreatedAt,
	)
	batch.Query(`
		INSERT INTO notifications_by_id (notification_id, wallet_address) VALUES (?, ?);`,
		n.ID, n.WalletAddress,
	)
	return r.session.ExecuteBatch(batch)
}

func (r *NotificationRepo) owner(ctx context.Context, id string) (string, error) {
	var wallet string
	err := r.session.Query(`
		SELECT wallet_address FROM notifications_by_id WHERE notification_id = ? LIMIT 1;`,
		id,
	).WithContext(ctx).Scan(&wallet)
	if err == gocql.ErrNotFound {
		return "", ErrNotFound
	}
	return wallet, err
}

// MarkRead flags notification id as read and returns its wallet
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) (string, error) {
	wallet, err := r.owner(ctx, id)
	if err != nil {
		return "", err
	}
	return wallet, r.session.Query(`
		UPDATE notifications SET read = ? WHERE wallet_address = ? AND notification_id = ?;`,
		true, wallet, id,
	).WithContext(ctx).Exec()
}

// Delete removes notification id
func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	wallet, err := r.owner(ctx, id)
	if err != nil {
		return err
	}

	batch := r.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`DELETE FROM notifications WHERE wallet_address = ? AND notification_id = ?;`, wallet, id)
	batch.Query(`DELETE FROM notifications_by_id WHERE notification_id = ?;`, id)
	return r.session.ExecuteBatch(batch)
}

// DeleteAll removes every notification of wallet and returns how many there were
func (r *NotificationRepo) DeleteAll(ctx context.Context, wallet string) (int, error) {
	iter := r.session.Query(`
		SELECT notification_id FROM notifications WHERE wallet_address = ?;`,
		wallet,
	).WithContext(ctx).Iter()

	var (
		id  string
		ids []string
	)
	for iter.Scan(&id) {
		ids = append(ids, id)
	}
	if err := iter.Close(); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	batch := r.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`DELETE FROM notifications WHERE wallet_address = ?;`, wallet)
	for _, id := range ids {
		batch.Query(`DELETE FROM notifications_by_id WHERE notification_id = ?;`, id)
	}
	return len(ids), r.session.ExecuteBatch(batch)
}
