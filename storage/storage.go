// Package storage holds the ScyllaDB repositories and MinIO object stores.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/gocql/gocql"
)

var (
	ErrNotFound      = errors.New("storage: not found")
	ErrUsernameTaken = errors.New("Username already taken.")
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS %s.profiles (
		wallet_address text,
		username text,
		display_name text,
		avatar text,
		has_avatar boolean,
		created timestamp,
		updated timestamp,
		PRIMARY KEY (wallet_address))
	WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`,

	`CREATE TABLE IF NOT EXISTS %s.usernames (
		username text,
		wallet_address text,
		claimed timestamp,
		PRIMARY KEY (username))
	WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`,

	`CREATE TABLE IF NOT EXISTS %s.notifications (
		wallet_address text,
		notification_id text,
		type text,
		title text,
		message text,
		data text,
		read boolean,
		created timestamp,
		PRIMARY KEY (wallet_address, notification_id))
	WITH compaction = { 'class' :  'SizeTieredCompactionStrategy'  };`,

	`CREATE TABLE IF NOT EXISTS %s.notifications_by_id (
		notification_id text,
		wallet_address text,
		PRIMARY KEY (notification_id))
	WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`,
}

// CreateSchema creates every table the repositories use
func CreateSchema(ctx context.Context, session *gocql.Session, keyspace string) error {
	for _, stmt := range schema {
		if err := session.Query(fmt.Sprintf(stmt, keyspace)).WithContext(ctx).Exec(); err != nil {
			return err
		}
	}
	return nil
}
