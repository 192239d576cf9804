package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alice", NormalizeUsername("  Alice "))
	assert.Equal(t, "bob_42", NormalizeUsername("BOB_42"))
}

func TestMatchProfiles(t *testing.T) {
	profiles := []Profile{
		{WalletAddress: "w1", Username: "alice", DisplayName: "Alice Liddell"},
		{WalletAddress: "w2", Username: "bob", DisplayName: "Bobby Tables"},
		{WalletAddress: "w3", Username: "carol", DisplayName: "Carol ALICEson"},
	}

	tests := []struct {
		name    string
		query   string
		exclude string
		limit   int
		want    []string
	}{
		{name: "Username", query: "bob", want: []string{"w2"}},
		{name: "DisplayNameCaseInsensitive", query: "ALICE", want: []string{"w1", "w3"}},
		{name: "Exclude", query: "alice", exclude: "w1", want: []string{"w3"}},
		{name: "Limit", query: "", limit: 2, want: []string{"w1", "w2"}},
		{name: "NoMatch", query: "zed", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchProfiles(profiles, tt.query, tt.exclude, tt.limit)
			wallets := make([]string, 0, len(got))
			for _, p := range got {
				wallets = append(wallets, p.WalletAddress)
			}
			assert.Equal(t, tt.want, wallets)
		})
	}
}

func TestFilterNotifications(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ns := []Notification{
		{ID: "a", CreatedAt: base, Read: true},
		{ID: "b", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "c", CreatedAt: base.Add(time.Hour)},
	}

	all := FilterNotifications(append([]Notification(nil), ns...), false)
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "c", all[1].ID)
	assert.Equal(t, "a", all[2].ID)

	unread := FilterNotifications(append([]Notification(nil), ns...), true)
	require.Len(t, unread, 2)
	assert.Equal(t, "b", unread[0].ID)
}
